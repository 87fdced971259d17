package pkgmanager

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/conn-castle/create-next-stack/internal/execx"
	"github.com/conn-castle/create-next-stack/internal/messages"
)

// ComponentInstaller is the package that adds shadcn-ui components to a project.
const ComponentInstaller = "shadcn-ui@latest"

// installEnv is overlaid on the environment of install commands.
var installEnv = map[string]string{
	"ADBLOCK":                "1",
	"NODE_ENV":               "development",
	"DISABLE_OPENCOLLECTIVE": "1",
}

// Installer runs package-manager commands inside a project directory.
// Output of the commands goes straight to the terminal.
type Installer struct {
	Manager Name
	Runner  execx.Runner
	Out     io.Writer
	Stdout  io.Writer
	Stderr  io.Writer
}

func (i Installer) out() io.Writer {
	if i.Out != nil {
		return i.Out
	}
	return os.Stdout
}

// Install installs the dependencies declared in dir/package.json.
func (i Installer) Install(ctx context.Context, dir string, online bool) error {
	args := []string{"install"}
	if !online {
		_, _ = color.New(color.FgYellow).Fprintln(i.out(), messages.PkgInstallOfflineWarning)
		args = append(args, "--offline")
	}
	return i.stream(ctx, dir, string(i.Manager), args)
}

// AddComponents fetches the named shadcn-ui components into dir.
// It is a no-op for an empty list.
func (i Installer) AddComponents(ctx context.Context, dir string, components []string) error {
	if len(components) == 0 {
		return nil
	}
	cyan := color.New(color.FgCyan).SprintFunc()
	_, _ = fmt.Fprintln(i.out(), messages.PkgComponentsHeader)
	for _, component := range components {
		_, _ = fmt.Fprintf(i.out(), messages.PkgComponentLineFmt, cyan(component))
	}
	name, args := i.Manager.Executor()
	args = append(append(args, ComponentInstaller, "add", "--yes"), components...)
	return i.stream(ctx, dir, name, args)
}

func (i Installer) stream(ctx context.Context, dir string, name string, args []string) error {
	code, err := i.Runner.Stream(ctx, name, args, execx.RunOpts{
		Dir:    dir,
		Env:    installEnv,
		Stdout: i.Stdout,
		Stderr: i.Stderr,
	})
	command := strings.Join(append([]string{name}, args...), " ")
	if err != nil {
		return fmt.Errorf(messages.PkgCommandStartFailedFmt, command, err)
	}
	if code != 0 {
		return &CommandError{Command: command, ExitCode: code}
	}
	return nil
}
