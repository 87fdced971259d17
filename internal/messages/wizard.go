package messages

// Wizard prompts.
const (
	WizardRequiresTerminal   = "prompts require an interactive terminal; pass a project directory and --yes"
	WizardProjectNamePrompt  = "What is your project name?"
	WizardProjectNameInitial = "my-app"
	WizardSWRPrompt          = "Would you like to use swr?"
	WizardComponentsPrompt   = "What component would you like to bootstrap (shadcn-ui)?"
	WizardComponentsHint     = "Space to select. Return to submit"
)
