// config.go — run configuration and the optional YAML settings file.
package brainfuck

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes a single run. It is immutable for the duration of the
// run: DataSize decides the tape allocation in New, and the three check
// toggles gate the corresponding boundary conditions in Run. A disabled
// check is not evaluated at all.
type Config struct {
	// DataSize is the tape length in cells. Must be positive.
	DataSize uint32

	// BoundsCheck keeps the data cursor inside [0, DataSize) and halts
	// with ErrIndexAbove/ErrIndexBelow on violation.
	BoundsCheck bool

	// WrapCheck halts with ErrWrapOver/ErrWrapUnder instead of letting a
	// cell wrap past its 8-bit limits.
	WrapCheck bool

	// SyntaxCheck halts with ErrUnknownInstruction on any byte that is
	// neither an instruction nor a line break. Off, such bytes are inert
	// comment characters.
	SyntaxCheck bool

	// PrecomputedJumps resolves brackets through a table built once by
	// CompileJumps instead of rescanning the code. Unbalanced brackets
	// are then reported by New, before the run starts.
	PrecomputedJumps bool
}

// DefaultConfig returns the interpreter defaults: a 30000-cell tape with
// every check disabled.
func DefaultConfig() Config {
	return Config{DataSize: DefaultDataSize}
}

func (c Config) validate() error {
	if c.DataSize == 0 {
		return fmt.Errorf("data size must be a positive integer")
	}
	return nil
}

// -----------------------------
// Settings file
// -----------------------------

// FileConfig mirrors the keys of the optional YAML settings file. Every
// field is a pointer so an absent key is distinguishable from an explicit
// value; Apply only touches fields that were present.
type FileConfig struct {
	DataSize    *uint32 `yaml:"data-size"`
	BoundsCheck *bool   `yaml:"bounds-check"`
	WrapCheck   *bool   `yaml:"wrap-check"`
	SyntaxCheck *bool   `yaml:"syntax-check"`
	Quiet       *bool   `yaml:"quiet"`
}

// LoadFileConfig reads and decodes a YAML settings file. Unknown keys are
// rejected, as is a non-positive data-size.
func LoadFileConfig(path string) (*FileConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var fc FileConfig
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if fc.DataSize != nil && *fc.DataSize == 0 {
		return nil, fmt.Errorf("%s: data-size must be a positive integer", path)
	}
	return &fc, nil
}

// Apply copies the file's present values onto cfg and returns it. The
// caller layers explicit command-line flags on top afterwards.
func (fc *FileConfig) Apply(cfg Config) Config {
	if fc == nil {
		return cfg
	}
	if fc.DataSize != nil {
		cfg.DataSize = *fc.DataSize
	}
	if fc.BoundsCheck != nil {
		cfg.BoundsCheck = *fc.BoundsCheck
	}
	if fc.WrapCheck != nil {
		cfg.WrapCheck = *fc.WrapCheck
	}
	if fc.SyntaxCheck != nil {
		cfg.SyntaxCheck = *fc.SyntaxCheck
	}
	return cfg
}
