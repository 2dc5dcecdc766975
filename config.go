package blob

import (
	"fmt"
	"io"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// DefaultPrompt is the prompt printed before each command line.
const DefaultPrompt = ": "

// Config holds the session settings read from an rc file.
type Config struct {
	// Prompt is printed before each command line when input is a terminal.
	Prompt string

	// VerboseHelp selects the extended 'h' output with the command
	// chaining example.
	VerboseHelp bool
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{Prompt: DefaultPrompt, VerboseHelp: true}
}

// LoadConfig reads a JSON rc file and overlays it on DefaultConfig. A
// missing file yields the defaults. Unknown keys are ignored; absent keys
// keep their defaults.
func LoadConfig(fsys FileSystemInterface, name string) (Config, error) {
	cfg := DefaultConfig()

	rc, err := fsys.OpenRead(name)
	if err != nil {
		if isNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("open %s: %w", name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return cfg, fmt.Errorf("read %s: %w", name, err)
	}
	if !gjson.ValidBytes(data) {
		return cfg, fmt.Errorf("parse %s: not valid JSON", name)
	}

	if v := gjson.GetBytes(data, "prompt"); v.Exists() {
		cfg.Prompt = v.String()
	}
	if v := gjson.GetBytes(data, "verbose_help"); v.Exists() {
		cfg.VerboseHelp = v.Bool()
	}
	return cfg, nil
}

// WriteDefaultConfig materializes an rc file holding the defaults, for users
// who want a template to edit.
func WriteDefaultConfig(fsys FileSystemInterface, name string) error {
	cfg := DefaultConfig()

	data := []byte("{}")
	data, err := sjson.SetBytes(data, "prompt", cfg.Prompt)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	data, err = sjson.SetBytes(data, "verbose_help", cfg.VerboseHelp)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}

	wc, err := fsys.OpenWrite(name)
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	if _, err := wc.Write(append(data, '\n')); err != nil {
		wc.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	return wc.Close()
}
