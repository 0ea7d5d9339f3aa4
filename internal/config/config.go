// internal/config/config.go
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/ini.v1"

	"fastachar/internal/fasta"
)

const (
	sectionDefaults = "DEFAULTS"
	sectionRegex    = "REGEX"
)

// Config is the per-user settings file: a working directory used to resolve
// relative input paths and the default header-parsing regexes.
type Config struct {
	WorkingDirectory string
	HeaderFormat     string
	IDRegex          string
	SpeciesRegex     string

	path string
}

// DefaultPath is ~/.config/fastachar/fastacharrc (~/.fastachar/fastachar.ini on Windows).
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	if runtime.GOOS == "windows" {
		return filepath.Join(home, ".fastachar", "fastachar.ini"), nil
	}
	return filepath.Join(home, ".config", "fastachar", "fastacharrc"), nil
}

// Defaults returns the built-in settings bound to path.
func Defaults(path string) *Config {
	wd, err := os.UserHomeDir()
	if err != nil {
		wd, _ = os.Getwd()
	}
	return &Config{
		WorkingDirectory: wd,
		HeaderFormat:     fasta.DefaultTemplate,
		IDRegex:          fasta.DefaultIDRegex,
		SpeciesRegex:     fasta.DefaultSpeciesRegex,
		path:             path,
	}
}

var loadOpts = ini.LoadOptions{
	IgnoreInlineComment: true, // regexes may contain '#' or ';'
	IgnoreContinuation:  true,
}

// Load reads path. A missing file yields the defaults; missing keys fall
// back individually. A working directory that no longer exists is reset.
func Load(path string) (*Config, error) {
	c := Defaults(path)
	f, err := ini.LoadSources(loadOpts, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return c, nil
		}
		return c, err
	}
	d := f.Section(sectionDefaults)
	if wd := d.Key("working_directory").String(); wd != "" {
		if st, err := os.Stat(wd); err == nil && st.IsDir() {
			c.WorkingDirectory = wd
		}
	}
	r := f.Section(sectionRegex)
	c.HeaderFormat = r.Key("header_format").MustString(c.HeaderFormat)
	c.IDRegex = r.Key("id").MustString(c.IDRegex)
	c.SpeciesRegex = r.Key("species").MustString(c.SpeciesRegex)
	return c, nil
}

// Path is the file Load read from and Save writes to.
func (c *Config) Path() string { return c.path }

// Save writes the settings back, creating the parent directory.
func (c *Config) Save() error {
	if c.path == "" {
		return errors.New("config: no path to save to")
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return err
	}
	f := ini.Empty(loadOpts)
	f.Section(sectionDefaults).Key("working_directory").SetValue(c.WorkingDirectory)
	r := f.Section(sectionRegex)
	r.Key("header_format").SetValue(c.HeaderFormat)
	r.Key("id").SetValue(c.IDRegex)
	r.Key("species").SetValue(c.SpeciesRegex)
	return f.SaveTo(c.path)
}

// Resolve returns path unchanged when it is absolute, "-" or exists relative
// to the current directory; otherwise it is joined to the working directory.
func (c *Config) Resolve(path string) string {
	if path == "" || path == "-" || filepath.IsAbs(path) {
		return path
	}
	if _, err := os.Stat(path); err == nil {
		return path
	}
	if c.WorkingDirectory == "" {
		return path
	}
	return filepath.Join(c.WorkingDirectory, path)
}

// Header compiles the configured header regexes.
func (c *Config) Header() (*fasta.HeaderFormat, error) {
	return fasta.NewHeaderFormat(c.HeaderFormat, c.IDRegex, c.SpeciesRegex)
}
