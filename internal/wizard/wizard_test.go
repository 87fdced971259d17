package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUI struct {
	input      string
	confirm    bool
	selected   []string
	inputErr   error
	confirmErr error
	asked      []string
}

func (f *fakeUI) Input(title string, _ string, value *string) error {
	f.asked = append(f.asked, title)
	*value = f.input
	return f.inputErr
}

func (f *fakeUI) Confirm(title string, value *bool) error {
	f.asked = append(f.asked, title)
	*value = f.confirm
	return f.confirmErr
}

func (f *fakeUI) MultiSelect(title string, _ string, options []string, selected *[]string) error {
	f.asked = append(f.asked, title)
	*selected = f.selected
	return nil
}

func boolPtr(v bool) *bool { return &v }

func TestRunAsksEverything(t *testing.T) {
	ui := &fakeUI{input: "  my-app  ", confirm: false, selected: []string{"button"}}
	answers, err := Run(ui, Request{})
	require.NoError(t, err)
	assert.Equal(t, Answers{ProjectPath: "my-app", SWR: false, Components: []string{"button"}}, answers)
	assert.Len(t, ui.asked, 3)
	assert.Equal(t, "What is your project name?", ui.asked[0])
}

func TestRunSkipsAnsweredQuestions(t *testing.T) {
	ui := &fakeUI{}
	answers, err := Run(ui, Request{
		ProjectPath:   "web",
		SWR:           boolPtr(true),
		ComponentsSet: true,
		Components:    []string{"card"},
	})
	require.NoError(t, err)
	assert.Empty(t, ui.asked)
	assert.Equal(t, Answers{ProjectPath: "web", SWR: true, Components: []string{"card"}}, answers)
}

func TestRunCancelled(t *testing.T) {
	ui := &fakeUI{confirmErr: ErrCancelled}
	_, err := Run(ui, Request{ProjectPath: "web"})
	require.ErrorIs(t, err, ErrCancelled)
}

func TestRunEmptyProjectName(t *testing.T) {
	ui := &fakeUI{input: "   "}
	answers, err := Run(ui, Request{SWR: boolPtr(false), ComponentsSet: true})
	require.NoError(t, err)
	assert.Empty(t, answers.ProjectPath)
}
