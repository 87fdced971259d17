package materialize

import (
	"fmt"

	"github.com/gobwas/glob"

	"github.com/conn-castle/create-next-stack/internal/config"
	"github.com/conn-castle/create-next-stack/internal/messages"
)

// Plan is the ordered include/exclude pattern set for one copy.
// Patterns use glob syntax over slash-separated paths relative to the template root.
type Plan struct {
	Include []string
	Exclude []string
}

// exclusion ties a feature flag to the template files it owns.
// When the flag is off the files are not copied.
type exclusion struct {
	name     string
	enabled  func(config.Preferences) bool
	patterns func(mode string) []string
}

// exclusions is evaluated in order; flags without an entry never exclude anything.
var exclusions = []exclusion{
	{
		name:    "eslint",
		enabled: func(p config.Preferences) bool { return p.ESLint },
		patterns: func(string) []string {
			return []string{"eslintrc.json"}
		},
	},
	{
		name:    "tailwind",
		enabled: func(p config.Preferences) bool { return p.Tailwind },
		patterns: func(mode string) []string {
			return []string{"tailwind.config." + mode, "postcss.config.js"}
		},
	},
}

// NewPlan derives the copy plan for prefs.
func NewPlan(prefs config.Preferences) Plan {
	plan := Plan{Include: []string{"**"}}
	for _, ex := range exclusions {
		if ex.enabled(prefs) {
			continue
		}
		plan.Exclude = append(plan.Exclude, ex.patterns(prefs.Mode)...)
	}
	return plan
}

type matcher struct {
	include []glob.Glob
	exclude []glob.Glob
}

func (p Plan) compile() (*matcher, error) {
	m := &matcher{}
	for _, pattern := range p.Include {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf(messages.MaterializeInvalidPatternFmt, pattern, err)
		}
		m.include = append(m.include, g)
	}
	for _, pattern := range p.Exclude {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf(messages.MaterializeInvalidPatternFmt, pattern, err)
		}
		m.exclude = append(m.exclude, g)
	}
	return m, nil
}

func (m *matcher) allows(rel string) bool {
	for _, g := range m.exclude {
		if g.Match(rel) {
			return false
		}
	}
	for _, g := range m.include {
		if g.Match(rel) {
			return true
		}
	}
	return false
}
