// Package materialize copies a named template tree into a new project directory.
package materialize

import (
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/conn-castle/create-next-stack/internal/config"
	"github.com/conn-castle/create-next-stack/internal/messages"
	"github.com/conn-castle/create-next-stack/internal/templates"
)

const (
	dirPerm  fs.FileMode = 0o755
	filePerm fs.FileMode = 0o644
)

// Result lists the files written, as slash-separated paths relative to the project root.
type Result struct {
	Files []string
}

// Request describes one materialization.
type Request struct {
	Root        string
	Preferences config.Preferences
	System      System
	Out         io.Writer
	// Source overrides the embedded template tree; tests use fstest.MapFS.
	Source fs.FS
}

// Run copies the selected template into req.Root and rewrites the project layout.
// Failures are returned as-is; files written before the failure are left in place.
func Run(req Request) (Result, error) {
	prefs := req.Preferences
	src := req.Source
	if src == nil {
		tree, err := templates.FS(prefs.Template, prefs.Mode)
		if err != nil {
			return Result{}, err
		}
		src = tree
	}
	if req.Out != nil {
		bold := color.New(color.Bold).SprintFunc()
		_, _ = fmt.Fprintf(req.Out, messages.MaterializeTemplateFmt, bold(prefs.Template))
	}
	result, err := Copy(src, req.Root, NewPlan(prefs), CopyOptions{System: req.System, SrcDir: prefs.SrcDir})
	if err != nil {
		return result, err
	}
	if err := ApplyLayout(req.System, req.Root, prefs, result); err != nil {
		return result, err
	}
	return result, nil
}

// CopyOptions controls Copy.
type CopyOptions struct {
	System System
	SrcDir bool
}

// Copy walks src in lexical order and writes every file the plan allows under dest.
// Directory structure relative to the template root is preserved; file names go through Rename.
func Copy(src fs.FS, dest string, plan Plan, opts CopyOptions) (Result, error) {
	sys := opts.System
	if sys == nil {
		sys = RealSystem{}
	}
	m, err := plan.compile()
	if err != nil {
		return Result{}, err
	}
	var result Result
	err = fs.WalkDir(src, ".", func(rel string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return fmt.Errorf(messages.MaterializeWalkFailedFmt, rel, walkErr)
		}
		if d.IsDir() || !m.allows(rel) {
			return nil
		}
		data, err := fs.ReadFile(src, rel)
		if err != nil {
			return fmt.Errorf(messages.MaterializeReadFailedFmt, rel, err)
		}
		out := destPath(rel, opts.SrcDir)
		target := filepath.Join(dest, filepath.FromSlash(out))
		if err := sys.MkdirAll(filepath.Dir(target), dirPerm); err != nil {
			return fmt.Errorf(messages.MaterializeCreateDirFailedFmt, target, err)
		}
		if err := sys.WriteFile(target, data, filePerm); err != nil {
			return fmt.Errorf(messages.MaterializeWriteFailedFmt, target, err)
		}
		result.Files = append(result.Files, out)
		return nil
	})
	return result, err
}
