// Package pkgmanager wraps the JavaScript package manager used to install a new project.
package pkgmanager

import (
	"fmt"
	"os"
	"strings"

	"github.com/conn-castle/create-next-stack/internal/messages"
)

// Name identifies a supported package manager executable.
type Name string

// Supported package managers.
const (
	NPM  Name = "npm"
	PNPM Name = "pnpm"
	Yarn Name = "yarn"
	Bun  Name = "bun"
)

// EnvUserAgent is set by package managers for processes they launch (npx, pnpm dlx, ...).
const EnvUserAgent = "npm_config_user_agent"

// Detect infers the invoking package manager from a user agent string.
func Detect(userAgent string) Name {
	switch {
	case strings.HasPrefix(userAgent, "yarn"):
		return Yarn
	case strings.HasPrefix(userAgent, "pnpm"):
		return PNPM
	case strings.HasPrefix(userAgent, "bun"):
		return Bun
	default:
		return NPM
	}
}

// DetectFromEnv infers the package manager from the process environment.
func DetectFromEnv() Name {
	return Detect(os.Getenv(EnvUserAgent))
}

// Parse validates an explicitly configured package manager name.
func Parse(s string) (Name, error) {
	switch name := Name(strings.ToLower(strings.TrimSpace(s))); name {
	case NPM, PNPM, Yarn, Bun:
		return name, nil
	default:
		return "", fmt.Errorf(messages.PkgUnknownManagerFmt, s)
	}
}

// RunScript returns the command line that runs a package.json script.
// Yarn runs scripts without the "run" verb.
func (n Name) RunScript(script string) string {
	if n == Yarn {
		return fmt.Sprintf("%s %s", n, script)
	}
	return fmt.Sprintf("%s run %s", n, script)
}

// Executor returns the command and leading args that fetch and run a package binary.
func (n Name) Executor() (string, []string) {
	switch n {
	case PNPM:
		return "pnpm", []string{"dlx"}
	case Yarn:
		return "yarn", []string{"dlx"}
	case Bun:
		return "bunx", nil
	default:
		return "npx", nil
	}
}

// CommandError reports a package-manager command that exited non-zero.
type CommandError struct {
	Command  string
	ExitCode int
}

func (e *CommandError) Error() string {
	return fmt.Sprintf(messages.PkgCommandFailedFmt, e.Command, e.ExitCode)
}
