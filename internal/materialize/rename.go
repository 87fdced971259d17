package materialize

import (
	"path"
	"slices"
	"strings"
)

// renames maps template file names to the names they get in the project.
// Template trees cannot carry dotfiles through the embedded filesystem.
var renames = map[string]string{
	"gitignore":          ".gitignore",
	"eslintrc.json":      ".eslintrc.json",
	"README-template.md": "README.md",
}

// srcDirNames are the top-level template directories moved under src/ with the src-dir layout.
var srcDirNames = []string{"app", "pages", "styles", "lib"}

// Rename maps a base file name to its destination name.
func Rename(name string) string {
	if renamed, ok := renames[name]; ok {
		return renamed
	}
	return name
}

// destPath returns the slash-separated destination path for a template-relative path.
func destPath(rel string, srcDir bool) string {
	dir, base := path.Split(rel)
	out := path.Join(dir, Rename(base))
	if srcDir && inSrcDir(rel) {
		out = path.Join("src", out)
	}
	return out
}

func inSrcDir(rel string) bool {
	top, rest, found := strings.Cut(rel, "/")
	return found && rest != "" && slices.Contains(srcDirNames, top)
}
