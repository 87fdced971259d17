package materialize

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/create-next-stack/internal/config"
)

func templateTree() fstest.MapFS {
	return fstest.MapFS{
		"gitignore":          {Data: []byte("/node_modules\n")},
		"eslintrc.json":      {Data: []byte(`{"extends": "next/core-web-vitals"}`)},
		"README-template.md": {Data: []byte("# readme\n")},
		"tailwind.config.ts": {Data: []byte("content: ['./app/**/*.{js,ts,jsx,tsx,mdx}', './components/**/*.{js,ts,jsx,tsx,mdx}']\n")},
		"postcss.config.js":  {Data: []byte("module.exports = {}\n")},
		"tsconfig.json":      {Data: []byte(`{"paths": {"@/*": ["./*"]}}`)},
		"components.json":    {Data: []byte(`{"css": "app/globals.css", "utils": "@/lib/utils"}`)},
		"app/page.tsx":       {Data: []byte("import { cn } from '@/lib/utils'\n")},
		"app/globals.css":    {Data: []byte("@tailwind base;\n")},
		"lib/utils.ts":       {Data: []byte("export const cn = () => ''\n")},
		"public/next.svg":    {Data: []byte("<svg/>")},
		"nested/gitignore":   {Data: []byte("*.log\n")},
	}
}

func readFile(t *testing.T, root string, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(data)
}

func TestCopyAllFeatures(t *testing.T) {
	root := t.TempDir()
	result, err := Copy(templateTree(), root, NewPlan(config.Defaults()), CopyOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"README.md",
		"app/globals.css",
		"app/page.tsx",
		"components.json",
		".eslintrc.json",
		".gitignore",
		"lib/utils.ts",
		"nested/.gitignore",
		"postcss.config.js",
		"public/next.svg",
		"tailwind.config.ts",
		"tsconfig.json",
	}, result.Files)
	assert.Equal(t, "/node_modules\n", readFile(t, root, ".gitignore"))
	assert.Equal(t, "# readme\n", readFile(t, root, "README.md"))
	assert.Equal(t, "*.log\n", readFile(t, root, "nested/.gitignore"))
	assert.NoFileExists(t, filepath.Join(root, "gitignore"))
	assert.NoFileExists(t, filepath.Join(root, "README-template.md"))
}

func TestCopyExcludesDisabledFeatures(t *testing.T) {
	root := t.TempDir()
	prefs := config.Defaults()
	prefs.ESLint = false
	prefs.Tailwind = false

	result, err := Copy(templateTree(), root, NewPlan(prefs), CopyOptions{})
	require.NoError(t, err)
	assert.NotContains(t, result.Files, ".eslintrc.json")
	assert.NotContains(t, result.Files, "tailwind.config.ts")
	assert.NotContains(t, result.Files, "postcss.config.js")
	assert.NoFileExists(t, filepath.Join(root, ".eslintrc.json"))
	assert.NoFileExists(t, filepath.Join(root, "tailwind.config.ts"))
	assert.FileExists(t, filepath.Join(root, "components.json"))
	assert.FileExists(t, filepath.Join(root, "app", "page.tsx"))
}

func TestCopySrcDir(t *testing.T) {
	root := t.TempDir()
	result, err := Copy(templateTree(), root, NewPlan(config.Defaults()), CopyOptions{SrcDir: true})
	require.NoError(t, err)
	assert.Contains(t, result.Files, "src/app/page.tsx")
	assert.Contains(t, result.Files, "src/lib/utils.ts")
	assert.Contains(t, result.Files, "public/next.svg")
	assert.FileExists(t, filepath.Join(root, "src", "app", "globals.css"))
	assert.NoDirExists(t, filepath.Join(root, "app"))
}

type failingSystem struct {
	RealSystem
	failOn string
	writes []string
}

func (f *failingSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	if filepath.Base(name) == f.failOn {
		return errors.New("disk full")
	}
	f.writes = append(f.writes, filepath.Base(name))
	return f.RealSystem.WriteFile(name, data, perm)
}

func TestCopyPropagatesWriteFailureWithoutRollback(t *testing.T) {
	root := t.TempDir()
	sys := &failingSystem{failOn: "components.json"}

	result, err := Copy(templateTree(), root, NewPlan(config.Defaults()), CopyOptions{System: sys})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, []string{"README.md", "app/globals.css", "app/page.tsx"}, result.Files)
	assert.FileExists(t, filepath.Join(root, "README.md"))
}

func TestRunEmbeddedTemplate(t *testing.T) {
	root := t.TempDir()
	var out bytes.Buffer
	result, err := Run(Request{Root: root, Preferences: config.Defaults(), System: RealSystem{}, Out: &out})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Initializing project with template:")
	assert.Contains(t, result.Files, ".gitignore")
	assert.Contains(t, result.Files, "README.md")
	assert.Contains(t, result.Files, ".eslintrc.json")
	assert.FileExists(t, filepath.Join(root, "tsconfig.json"))
	assert.FileExists(t, filepath.Join(root, "app", "layout.tsx"))
}

func TestRunUnknownTemplate(t *testing.T) {
	prefs := config.Defaults()
	prefs.Template = "missing"
	_, err := Run(Request{Root: t.TempDir(), Preferences: prefs})
	require.Error(t, err)
}
