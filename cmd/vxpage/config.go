package main

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"git.sr.ht/~rockorager/vxpage/log"
)

// Config is the configuration file of vxpage. Flags override its values
type Config struct {
	// Size of a page, in cells. Zero uses the size of the terminal
	Width  int `toml:"width"`
	Height int `toml:"height"`
	// Rows between paragraphs
	Spacing int `toml:"spacing"`
	// Vertical alignment of the paragraphs of a page: start, center or end
	Align string `toml:"align"`
	// Multiplier of the space below which key-value pairs move to the next
	// page
	KeepTogether int `toml:"keep_together"`
	// unicode, nozwj or wcwidth
	WidthMethod string `toml:"width_method"`
	// Frame drawn around each page: rounded, square, ascii or empty
	Border string `toml:"border"`
	// Draw a page indicator in the last column
	Scrollbar bool `toml:"scrollbar"`
	// Factor by which png and sixel output is scaled
	Scale    int    `toml:"scale"`
	LogLevel string `toml:"log_level"`

	// Logs are written as text to this file instead of stderr
	LogFile string `toml:"log_file"`

	Checklist ChecklistConfig `toml:"checklist"`
}

type ChecklistConfig struct {
	// Index of the current task. Negative values disable the checklist
	Current     int    `toml:"current"`
	DoneIcon    string `toml:"done_icon"`
	CurrentIcon string `toml:"current_icon"`
	// Number tasks which are not done
	Numerals bool `toml:"numerals"`
}

func defaultConfig() Config {
	return Config{
		Align:        "start",
		KeepTogether: 1,
		WidthMethod:  "unicode",
		Scrollbar:    true,
		Scale:        1,
		LogLevel:     "warn",
		Checklist: ChecklistConfig{
			Current:     -1,
			DoneIcon:    "✓",
			CurrentIcon: "▸",
		},
	}
}

// loadConfig reads the file at path over the defaults
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		log.Warn("config %s: unknown key %s", path, key)
	}
	return cfg, nil
}
