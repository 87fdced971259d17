// Package wizard asks for the project name and preferences not supplied on the command line.
package wizard

import (
	"errors"
	"strings"

	"github.com/conn-castle/create-next-stack/internal/config"
	"github.com/conn-castle/create-next-stack/internal/messages"
)

// ErrCancelled is returned when the user aborts a prompt.
var ErrCancelled = errors.New("prompt cancelled")

// Request lists what is already known. Nil or unset fields are asked for.
type Request struct {
	ProjectPath string
	// SWR is nil when the user has not chosen yet.
	SWR *bool
	// ComponentsSet records that components were chosen by flag or file.
	ComponentsSet bool
	Components    []string
}

// Answers is the completed set of answers.
type Answers struct {
	ProjectPath string
	SWR         bool
	Components  []string
}

// Run asks the questions req leaves open, in the order project name, swr, components.
func Run(ui UI, req Request) (Answers, error) {
	answers := Answers{
		ProjectPath: strings.TrimSpace(req.ProjectPath),
		SWR:         true,
		Components:  req.Components,
	}
	if answers.ProjectPath == "" {
		var name string
		if err := ui.Input(messages.WizardProjectNamePrompt, messages.WizardProjectNameInitial, &name); err != nil {
			return Answers{}, err
		}
		answers.ProjectPath = strings.TrimSpace(name)
	}
	if req.SWR != nil {
		answers.SWR = *req.SWR
	} else {
		swr := true
		if err := ui.Confirm(messages.WizardSWRPrompt, &swr); err != nil {
			return Answers{}, err
		}
		answers.SWR = swr
	}
	if !req.ComponentsSet {
		var selected []string
		if err := ui.MultiSelect(messages.WizardComponentsPrompt, messages.WizardComponentsHint, config.Components, &selected); err != nil {
			return Answers{}, err
		}
		answers.Components = selected
	}
	return answers, nil
}
