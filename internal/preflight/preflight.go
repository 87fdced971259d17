// Package preflight checks that a target directory can receive a new project.
package preflight

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/conn-castle/create-next-stack/internal/messages"
)

// ignorable names may already exist in a target directory without blocking creation.
var ignorable = map[string]struct{}{
	".DS_Store":      {},
	".git":           {},
	".gitattributes": {},
	".gitignore":     {},
	".gitlab-ci.yml": {},
	".hg":            {},
	".hgcheck":       {},
	".hgignore":      {},
	".idea":          {},
	".npmignore":     {},
	".travis.yml":    {},
	"LICENSE":        {},
	"Thumbs.db":      {},
	"docs":           {},
	"mkdocs.yml":     {},
	"npm-debug.log":  {},
	"yarn-debug.log": {},
	"yarn-error.log": {},
	"yarnrc.yml":     {},
	".yarn":          {},
}

var readDir = os.ReadDir

// Conflict is an existing entry that blocks project creation.
type Conflict struct {
	Name string
	Dir  bool
}

// Result is the outcome of an emptiness check.
type Result struct {
	Root      string
	Conflicts []Conflict
}

// Empty reports whether no conflicting entries were found.
func (r Result) Empty() bool {
	return len(r.Conflicts) == 0
}

// IsWriteable reports whether the process can create entries under dir.
func IsWriteable(dir string) bool {
	return checkWriteable(dir) == nil
}

// CheckEmpty lists the entries of root that are not ignorable.
// A root that does not exist is empty.
func CheckEmpty(root string) (Result, error) {
	result := Result{Root: root}
	entries, err := readDir(root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return result, nil
		}
		return result, fmt.Errorf(messages.PreflightReadDirFailedFmt, root, err)
	}
	for _, entry := range entries {
		name := entry.Name()
		if isIgnorable(name) {
			continue
		}
		result.Conflicts = append(result.Conflicts, Conflict{Name: name, Dir: entry.IsDir()})
	}
	sort.Slice(result.Conflicts, func(i, j int) bool {
		return result.Conflicts[i].Name < result.Conflicts[j].Name
	})
	return result, nil
}

// isIgnorable covers the fixed list plus IntelliJ module files.
func isIgnorable(name string) bool {
	if _, ok := ignorable[name]; ok {
		return true
	}
	return strings.HasSuffix(name, ".iml")
}

// ReportConflicts prints the conflicting entries of r for appName.
func ReportConflicts(w io.Writer, appName string, r Result) {
	if r.Empty() {
		return
	}
	green := color.New(color.FgGreen).SprintFunc()
	blue := color.New(color.FgBlue).SprintFunc()
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintf(w, messages.PreflightConflictHeaderFmt, green(appName))
	_, _ = fmt.Fprintln(w)
	for _, c := range r.Conflicts {
		name := c.Name
		if c.Dir {
			name = blue(c.Name) + "/"
		}
		_, _ = fmt.Fprintf(w, messages.PreflightConflictLineFmt, name)
	}
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, messages.PreflightConflictFooter)
	_, _ = fmt.Fprintln(w)
}
