// Package manifest builds the package.json written into a new project.
package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/fatih/color"

	"github.com/conn-castle/create-next-stack/internal/config"
	"github.com/conn-castle/create-next-stack/internal/messages"
)

// FileName is the manifest file written at the project root.
const FileName = "package.json"

// EnvVersionOverride replaces the pinned Next.js dependency for reproducible test runs.
const EnvVersionOverride = "NEXT_PRIVATE_TEST_VERSION"

// Manifest is the generated project descriptor.
type Manifest struct {
	Name            string
	Version         string
	Private         bool
	Scripts         Table
	Dependencies    Table
	DevDependencies Table
}

// fragment is the manifest contribution of one feature flag.
type fragment struct {
	name            string
	enabled         func(config.Preferences) bool
	dependencies    func(version string) []Entry
	devDependencies func(version string) []Entry
}

// fragments are merged in this order after the base tables.
var fragments = []fragment{
	{
		name:    "typescript",
		enabled: config.Preferences.Typed,
		devDependencies: func(string) []Entry {
			return []Entry{
				{"typescript", "^5"},
				{"@types/node", "^20"},
				{"@types/react", "^18"},
				{"@types/react-dom", "^18"},
			}
		},
	},
	{
		name:    "tailwind",
		enabled: func(p config.Preferences) bool { return p.Tailwind },
		devDependencies: func(string) []Entry {
			return []Entry{
				{"autoprefixer", "^10"},
				{"postcss", "^8"},
				{"tailwindcss", "^3"},
			}
		},
	},
	{
		name:    "eslint",
		enabled: func(p config.Preferences) bool { return p.ESLint },
		devDependencies: func(version string) []Entry {
			return []Entry{
				{"eslint", "^8"},
				{"eslint-config-next", version},
			}
		},
	},
	{
		name:    "swr",
		enabled: func(p config.Preferences) bool { return p.SWR },
		dependencies: func(string) []Entry {
			return []Entry{{"swr", "^2"}}
		},
	},
}

// Build assembles the manifest for appName at the resolved Next.js version.
// lookupEnv is consulted for EnvVersionOverride; nil means os.LookupEnv.
func Build(appName string, version string, prefs config.Preferences, lookupEnv func(string) (string, bool)) Manifest {
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}
	nextVersion := version
	if override, ok := lookupEnv(EnvVersionOverride); ok {
		nextVersion = override
	}
	m := Manifest{
		Name:    appName,
		Version: "1.0.0",
		Private: true,
		Scripts: Table{
			{"dev", "next dev"},
			{"build", "next build"},
			{"start", "next start"},
			{"lint", "next lint"},
		},
		Dependencies: Table{
			{"react", "^18"},
			{"react-dom", "^18"},
			{"next", nextVersion},
		},
	}
	for _, f := range fragments {
		if !f.enabled(prefs) {
			continue
		}
		if f.dependencies != nil {
			m.Dependencies.Merge(f.dependencies(version))
		}
		if f.devDependencies != nil {
			m.DevDependencies.Merge(f.devDependencies(version))
		}
	}
	return m
}

// MarshalJSON encodes the manifest with a fixed key order.
// devDependencies is omitted when empty.
func (m Manifest) MarshalJSON() ([]byte, error) {
	type field struct {
		key   string
		value any
	}
	fields := []field{
		{"name", m.Name},
		{"version", m.Version},
		{"private", m.Private},
		{"scripts", m.Scripts},
		{"dependencies", m.Dependencies},
	}
	if len(m.DevDependencies) > 0 {
		fields = append(fields, field{"devDependencies", m.DevDependencies})
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeString(&buf, f.key); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(f.value); err != nil {
			return nil, err
		}
		buf.Truncate(buf.Len() - 1)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Encode returns the manifest as two-space indented JSON ending in the platform newline.
func Encode(m Manifest) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return nil, fmt.Errorf(messages.ManifestEncodeFailedFmt, err)
	}
	out := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))
	return append(out, eol()...), nil
}

func eol() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// Writer is the filesystem surface Write needs.
type Writer interface {
	WriteFile(name string, data []byte, perm os.FileMode) error
}

// Write encodes m and writes it once to root/package.json.
func Write(sys Writer, root string, m Manifest) error {
	data, err := Encode(m)
	if err != nil {
		return err
	}
	path := filepath.Join(root, FileName)
	if err := sys.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf(messages.ManifestWriteFailedFmt, path, err)
	}
	return nil
}

// Summary prints the dependency names that are about to be installed.
func Summary(w io.Writer, m Manifest) {
	cyan := color.New(color.FgCyan).SprintFunc()
	_, _ = fmt.Fprintln(w, messages.ManifestDepsHeader)
	for _, name := range m.Dependencies.Names() {
		_, _ = fmt.Fprintf(w, messages.ManifestDepLineFmt, cyan(name))
	}
	if len(m.DevDependencies) == 0 {
		return
	}
	_, _ = fmt.Fprintln(w, messages.ManifestDevDepsHeader)
	for _, name := range m.DevDependencies.Names() {
		_, _ = fmt.Fprintf(w, messages.ManifestDepLineFmt, cyan(name))
	}
}
