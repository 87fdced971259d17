package config

import "slices"

// Components lists the shadcn-ui component identifiers offered as add-ons.
var Components = []string{
	"accordion",
	"alert",
	"alert-dialog",
	"aspect-ratio",
	"avatar",
	"badge",
	"button",
	"calendar",
	"card",
	"checkbox",
	"collapsible",
	"command",
	"context-menu",
	"dialog",
	"dropdown-menu",
	"form",
	"hover-card",
	"input",
	"label",
	"menubar",
	"navigation-menu",
	"popover",
	"progress",
	"radio-group",
	"scroll-area",
	"select",
	"separator",
	"sheet",
	"skeleton",
	"slider",
	"switch",
	"table",
	"tabs",
	"textarea",
	"toast",
	"toggle",
	"tooltip",
}

// IsKnownComponent reports whether name is an offered component.
func IsKnownComponent(name string) bool {
	return slices.Contains(Components, name)
}
