package blob

import (
	"strings"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(newMemFS(), "rc")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	fsys := newMemFS()
	fsys.files["rc"] = []byte(`{"prompt": "> "}`)

	cfg, err := LoadConfig(fsys, "rc")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Prompt != "> " {
		t.Errorf("Prompt = %q, want %q", cfg.Prompt, "> ")
	}
	// Absent keys keep their defaults.
	if cfg.VerboseHelp != DefaultConfig().VerboseHelp {
		t.Errorf("VerboseHelp = %v, want default", cfg.VerboseHelp)
	}
}

func TestLoadConfigAllKeys(t *testing.T) {
	fsys := newMemFS()
	fsys.files["rc"] = []byte(`{"prompt": "ed? ", "verbose_help": false, "unknown": 1}`)

	cfg, err := LoadConfig(fsys, "rc")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Prompt != "ed? " {
		t.Errorf("Prompt = %q, want %q", cfg.Prompt, "ed? ")
	}
	if cfg.VerboseHelp {
		t.Error("VerboseHelp should be false")
	}
}

func TestLoadConfigInvalidJSON(t *testing.T) {
	fsys := newMemFS()
	fsys.files["rc"] = []byte(`{"prompt": `)

	if _, err := LoadConfig(fsys, "rc"); err == nil {
		t.Error("invalid JSON should fail")
	}
}

func TestWriteDefaultConfigRoundTrip(t *testing.T) {
	fsys := newMemFS()

	if err := WriteDefaultConfig(fsys, "rc"); err != nil {
		t.Fatalf("WriteDefaultConfig failed: %v", err)
	}
	data, ok := fsys.files["rc"]
	if !ok {
		t.Fatal("rc file not written")
	}
	if !strings.HasSuffix(string(data), "\n") {
		t.Error("rc file should end with a newline")
	}

	cfg, err := LoadConfig(fsys, "rc")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("cfg = %+v, want %+v", cfg, DefaultConfig())
	}
}
