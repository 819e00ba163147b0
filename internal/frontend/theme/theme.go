// Package theme provides YAML-loadable color themes for the Telnet
// frontend, replacing per-client styling with a server-side palette.
package theme

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/twodice/internal/frontend/telnet"
)

// Theme maps UI roles to ANSI color codes.
//
// Precondition: every field holds a valid ANSI escape sequence after Load.
type Theme struct {
	// Title styles screen headings.
	Title string
	// Prompt styles input prompts.
	Prompt string
	// Info styles informational messages.
	Info string
	// Error styles validation and failure messages.
	Error string
	// Accent styles player names and roll results.
	Accent string
	// Bar styles histogram bars.
	Bar string
}

// themeFile is the wire form of a theme: role → color name.
type themeFile struct {
	Title  string `yaml:"title"`
	Prompt string `yaml:"prompt"`
	Info   string `yaml:"info"`
	Error  string `yaml:"error"`
	Accent string `yaml:"accent"`
	Bar    string `yaml:"bar"`
}

// colorsByName maps theme file color names to ANSI codes.
var colorsByName = map[string]string{
	"black":          telnet.Black,
	"red":            telnet.Red,
	"green":          telnet.Green,
	"yellow":         telnet.Yellow,
	"blue":           telnet.Blue,
	"magenta":        telnet.Magenta,
	"cyan":           telnet.Cyan,
	"white":          telnet.White,
	"bright-black":   telnet.BrightBlack,
	"bright-red":     telnet.BrightRed,
	"bright-green":   telnet.BrightGreen,
	"bright-yellow":  telnet.BrightYellow,
	"bright-blue":    telnet.BrightBlue,
	"bright-magenta": telnet.BrightMagenta,
	"bright-cyan":    telnet.BrightCyan,
	"bright-white":   telnet.BrightWhite,
}

// Default returns the built-in theme used when no theme file is configured.
func Default() Theme {
	return Theme{
		Title:  telnet.BrightCyan,
		Prompt: telnet.BrightWhite,
		Info:   telnet.Cyan,
		Error:  telnet.Red,
		Accent: telnet.BrightYellow,
		Bar:    telnet.BrightBlue,
	}
}

// Load reads a theme from the YAML file at path. Roles omitted from the
// file keep their Default value; unknown color names are an error.
//
// Precondition: path must be a readable YAML file.
// Postcondition: Returns a fully populated Theme or a non-nil error.
func Load(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("reading theme file %s: %w", path, err)
	}

	var tf themeFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return Theme{}, fmt.Errorf("parsing theme file %s: %w", path, err)
	}

	t := Default()
	for _, role := range []struct {
		name  string
		value string
		dst   *string
	}{
		{"title", tf.Title, &t.Title},
		{"prompt", tf.Prompt, &t.Prompt},
		{"info", tf.Info, &t.Info},
		{"error", tf.Error, &t.Error},
		{"accent", tf.Accent, &t.Accent},
		{"bar", tf.Bar, &t.Bar},
	} {
		if role.value == "" {
			continue
		}
		code, ok := colorsByName[role.value]
		if !ok {
			return Theme{}, fmt.Errorf("theme %s: unknown color %q for role %q", path, role.value, role.name)
		}
		*role.dst = code
	}
	return t, nil
}
