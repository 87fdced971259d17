// Package config loads scaffolding preferences from flags, an optional TOML file and defaults.
package config

import "github.com/conn-castle/create-next-stack/internal/templates"

// DefaultImportAlias is the alias written into tsconfig paths when none is configured.
const DefaultImportAlias = "@/*"

// Preferences is the feature selection for one project.
// It is assembled once before any file is written and never mutated afterwards.
type Preferences struct {
	Template       string   `toml:"template"`
	Mode           string   `toml:"mode"`
	Tailwind       bool     `toml:"tailwind"`
	ESLint         bool     `toml:"eslint"`
	SrcDir         bool     `toml:"src_dir"`
	ImportAlias    string   `toml:"import_alias"`
	SWR            bool     `toml:"swr"`
	Components     []string `toml:"components"`
	PackageManager string   `toml:"package_manager"`
	NextVersion    string   `toml:"next_version"`
	DisableGit     bool     `toml:"disable_git"`
}

// Defaults returns the preferences used when neither a file nor a flag says otherwise.
func Defaults() Preferences {
	return Preferences{
		Template:    templates.DefaultTemplate,
		Mode:        templates.ModeTS,
		Tailwind:    true,
		ESLint:      true,
		ImportAlias: DefaultImportAlias,
		SWR:         true,
	}
}

// Typed reports whether the project uses the typed language mode.
func (p Preferences) Typed() bool {
	return p.Mode == templates.ModeTS
}

// Clone returns a copy that does not share the Components slice.
func (p Preferences) Clone() Preferences {
	out := p
	if p.Components != nil {
		out.Components = append([]string(nil), p.Components...)
	}
	return out
}
