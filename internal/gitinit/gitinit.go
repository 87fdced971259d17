// Package gitinit creates the initial git repository of a new project.
package gitinit

import (
	"context"
	"os"
	"path/filepath"

	"github.com/conn-castle/create-next-stack/internal/execx"
)

// CommitMessage is the message of the initial commit.
const CommitMessage = "Initial commit from Create Next Stack"

// TryInit initializes a repository in root and commits the generated files.
// It returns false without an error whenever git is unavailable, root already lives
// inside a git or mercurial repository, or any git command fails. A .git directory
// created before a failure is removed.
func TryInit(ctx context.Context, runner execx.Runner, root string) bool {
	run := func(name string, args ...string) bool {
		result, err := runner.Run(ctx, name, args, execx.RunOpts{Dir: root})
		return err == nil && result.ExitCode == 0
	}

	if !run("git", "--version") {
		return false
	}
	if run("git", "rev-parse", "--is-inside-work-tree") || run("hg", "--cwd", ".", "root") {
		return false
	}
	if !run("git", "init") {
		return false
	}
	ok := true
	if !run("git", "config", "init.defaultBranch") {
		ok = run("git", "checkout", "-b", "main")
	}
	ok = ok && run("git", "add", "-A")
	ok = ok && run("git", "commit", "-m", CommitMessage)
	if !ok {
		_ = os.RemoveAll(filepath.Join(root, ".git"))
	}
	return ok
}
