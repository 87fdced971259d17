package materialize

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/conn-castle/create-next-stack/internal/config"
	"github.com/conn-castle/create-next-stack/internal/messages"
)

const (
	defaultAliasKey   = `"@/*":`
	defaultAliasPaths = `"@/*": ["./*"]`
	srcAliasPaths     = `"@/*": ["./src/*"]`
)

// tailwindContentGlob matches content globs such as './app/**/*.{js,ts,jsx,tsx,mdx}'.
var tailwindContentGlob = regexp.MustCompile(`\./(\w+)/\*\*/\*\.\{js,ts,jsx,tsx,mdx\}`)

// aliasSourceExts are the file types whose "@/" imports follow a custom alias.
var aliasSourceExts = []string{".js", ".jsx", ".mjs", ".ts", ".tsx"}

// ApplyLayout rewrites copied files for the src-dir layout and a custom import alias.
// It only touches files listed in copied.
func ApplyLayout(sys System, root string, prefs config.Preferences, copied Result) error {
	if sys == nil {
		sys = RealSystem{}
	}
	typedConfig := "jsconfig.json"
	if prefs.Typed() {
		typedConfig = "tsconfig.json"
	}
	alias := strings.TrimSpace(prefs.ImportAlias)
	if alias == "" {
		alias = config.DefaultImportAlias
	}
	customAlias := alias != config.DefaultImportAlias

	for _, rel := range copied.Files {
		var rewrite func(string) string
		switch {
		case rel == typedConfig:
			rewrite = func(s string) string {
				if prefs.SrcDir {
					s = strings.ReplaceAll(s, defaultAliasPaths, srcAliasPaths)
				}
				return strings.ReplaceAll(s, defaultAliasKey, fmt.Sprintf("%q:", alias))
			}
		case prefs.SrcDir && strings.HasPrefix(rel, "tailwind.config."):
			rewrite = func(s string) string {
				return tailwindContentGlob.ReplaceAllString(s, "./src/$1/**/*.{js,ts,jsx,tsx,mdx}")
			}
		case rel == "components.json":
			rewrite = func(s string) string {
				if prefs.SrcDir {
					s = strings.ReplaceAll(s, `"app/globals.css"`, `"src/app/globals.css"`)
				}
				if customAlias {
					s = replaceAliasPrefix(s, alias)
				}
				return s
			}
		case customAlias && slices.Contains(aliasSourceExts, path.Ext(rel)):
			rewrite = func(s string) string { return replaceAliasPrefix(s, alias) }
		default:
			continue
		}
		if err := rewriteFile(sys, filepath.Join(root, filepath.FromSlash(rel)), rewrite); err != nil {
			return err
		}
	}
	return nil
}

func replaceAliasPrefix(s string, alias string) string {
	prefix := config.AliasPrefix(alias)
	return strings.NewReplacer(`"@/`, `"`+prefix, `'@/`, `'`+prefix).Replace(s)
}

func rewriteFile(sys System, name string, rewrite func(string) string) error {
	data, err := sys.ReadFile(name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf(messages.MaterializeReadConfigFmt, name, err)
	}
	updated := rewrite(string(data))
	if updated == string(data) {
		return nil
	}
	if err := sys.WriteFile(name, []byte(updated), filePerm); err != nil {
		return fmt.Errorf(messages.MaterializeWriteFailedFmt, name, err)
	}
	return nil
}
