package brainfuck

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bf.yml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.DataSize != 30000 {
		t.Fatalf("want default data size 30000, got %d", cfg.DataSize)
	}
	if cfg.BoundsCheck || cfg.WrapCheck || cfg.SyntaxCheck || cfg.PrecomputedJumps {
		t.Fatalf("want all checks off by default, got %+v", cfg)
	}
}

func TestLoadFileConfig(t *testing.T) {
	path := writeTempConfig(t, "data-size: 512\nbounds-check: true\nwrap-check: false\n")
	fc, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("LoadFileConfig: %v", err)
	}

	cfg := fc.Apply(DefaultConfig())
	if cfg.DataSize != 512 {
		t.Fatalf("want data size 512, got %d", cfg.DataSize)
	}
	if !cfg.BoundsCheck {
		t.Fatal("want bounds check on")
	}
	if cfg.WrapCheck {
		t.Fatal("want wrap check off")
	}
	if cfg.SyntaxCheck {
		t.Fatal("absent key must not change the default")
	}
	if fc.Quiet != nil {
		t.Fatal("absent quiet key must stay nil")
	}
}

func TestLoadFileConfigRejectsUnknownKeys(t *testing.T) {
	path := writeTempConfig(t, "data-size: 512\ntape-size: 9\n")
	if _, err := LoadFileConfig(path); err == nil {
		t.Fatal("want error for unknown key, got nil")
	}
}

func TestLoadFileConfigRejectsZeroDataSize(t *testing.T) {
	path := writeTempConfig(t, "data-size: 0\n")
	if _, err := LoadFileConfig(path); err == nil {
		t.Fatal("want error for zero data-size, got nil")
	}
}

func TestLoadFileConfigMissingFile(t *testing.T) {
	if _, err := LoadFileConfig(filepath.Join(t.TempDir(), "absent.yml")); err == nil {
		t.Fatal("want error for missing file, got nil")
	}
}

func TestApplyNilFileConfig(t *testing.T) {
	var fc *FileConfig
	cfg := fc.Apply(DefaultConfig())
	if cfg != DefaultConfig() {
		t.Fatalf("nil file config must be a no-op, got %+v", cfg)
	}
}
