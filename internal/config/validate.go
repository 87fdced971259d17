package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/conn-castle/create-next-stack/internal/messages"
	"github.com/conn-castle/create-next-stack/internal/templates"
)

var importAliasPattern = regexp.MustCompile(`^[^*"]+/\*\s*$`)

// Validate checks the preferences for values the scaffolder cannot honor.
func (p Preferences) Validate() error {
	if p.Mode != templates.ModeTS {
		return fmt.Errorf(messages.ConfigUnknownModeFmt, p.Mode, templates.ModeTS)
	}
	if !ValidImportAlias(p.ImportAlias) {
		return fmt.Errorf(messages.ConfigInvalidAliasFmt, p.ImportAlias)
	}
	for _, component := range p.Components {
		if !IsKnownComponent(component) {
			return fmt.Errorf(messages.ConfigUnknownComponentFmt, component)
		}
	}
	return nil
}

// ValidImportAlias reports whether alias has the form <prefix>/*.
func ValidImportAlias(alias string) bool {
	return importAliasPattern.MatchString(alias)
}

// AliasPrefix returns the import prefix of alias, e.g. "@/" for "@/*".
func AliasPrefix(alias string) string {
	return strings.TrimSuffix(strings.TrimSpace(alias), "*")
}
