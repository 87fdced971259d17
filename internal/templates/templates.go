// Package templates holds the starter project trees compiled into the binary.
// Trees are keyed by template name and language mode, e.g. app-tw/ts.
package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/conn-castle/create-next-stack/internal/messages"
)

// Default template identifiers.
const (
	DefaultTemplate = "app-tw"
	ModeTS          = "ts"
)

//go:embed app-tw
var templateFS embed.FS

// FS returns the tree for template and mode rooted at its top directory.
func FS(template string, mode string) (fs.FS, error) {
	dir := path.Join(template, mode)
	info, err := fs.Stat(templateFS, dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf(messages.MaterializeUnknownTemplateFmt, template, mode, strings.Join(Names(), ", "))
	}
	return fs.Sub(templateFS, dir)
}

// Names lists the embedded template identifiers.
func Names() []string {
	entries, err := templateFS.ReadDir(".")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names
}
