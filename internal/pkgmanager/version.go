package pkgmanager

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/fatih/color"

	"github.com/conn-castle/create-next-stack/internal/execx"
	"github.com/conn-castle/create-next-stack/internal/messages"
)

// FallbackVersion is used when the registry query yields nothing.
const FallbackVersion = "^13"

// VersionResolver returns the Next.js version to pin in a new project.
type VersionResolver interface {
	Resolve(ctx context.Context, offline bool) (string, error)
}

// RegistryResolver asks the package manager for the latest published version.
type RegistryResolver struct {
	Manager Name
	Runner  execx.Runner
	// Warn receives the offline notice; nil discards it.
	Warn io.Writer
}

// Resolve runs `<pm> view next version` and returns the first non-empty output line.
// Every failure mode, including output that is not a version, falls back to FallbackVersion.
func (r RegistryResolver) Resolve(ctx context.Context, offline bool) (string, error) {
	args := []string{"view", "next", "version"}
	if offline {
		if r.Warn != nil {
			_, _ = color.New(color.FgYellow).Fprintln(r.Warn, messages.PkgOfflineWarning)
		}
		args = append(args, "--offline")
	}
	result, err := r.Runner.Run(ctx, string(r.Manager), args, execx.RunOpts{})
	if err != nil || result.ExitCode != 0 {
		return FallbackVersion, nil
	}
	for _, channel := range []string{result.Stdout, result.Stderr} {
		line := firstLine(channel)
		if line == "" {
			continue
		}
		if ValidateVersion(line) != nil {
			return FallbackVersion, nil
		}
		return line, nil
	}
	return FallbackVersion, nil
}

// firstLine returns the first line of s that is non-empty once line terminators are removed.
func firstLine(s string) string {
	for _, line := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n") {
		line = strings.Trim(line, "\r")
		if strings.TrimSpace(line) != "" {
			return strings.TrimSpace(line)
		}
	}
	return ""
}

// StaticResolver returns a version fixed by the caller.
type StaticResolver struct {
	Version string
}

// Resolve returns the configured version.
func (s StaticResolver) Resolve(context.Context, bool) (string, error) {
	if err := ValidateVersion(s.Version); err != nil {
		return "", err
	}
	return strings.TrimSpace(s.Version), nil
}

var distTag = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// ValidateVersion accepts an exact version, a range, or a dist-tag such as "canary".
func ValidateVersion(v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		return fmt.Errorf(messages.PkgEmptyVersion)
	}
	if distTag.MatchString(v) {
		return nil
	}
	if _, err := semver.NewVersion(v); err == nil {
		return nil
	}
	if _, err := semver.NewConstraint(v); err != nil {
		return fmt.Errorf(messages.PkgInvalidVersionFmt, v, err)
	}
	return nil
}
