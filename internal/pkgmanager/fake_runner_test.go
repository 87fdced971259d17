package pkgmanager

import (
	"context"
	"strings"

	"github.com/conn-castle/create-next-stack/internal/execx"
)

type call struct {
	name string
	args []string
	opts execx.RunOpts
}

func (c call) String() string {
	return strings.Join(append([]string{c.name}, c.args...), " ")
}

type fakeRunner struct {
	calls  []call
	result execx.Result
	code   int
	err    error
}

func (f *fakeRunner) Run(_ context.Context, name string, args []string, opts execx.RunOpts) (execx.Result, error) {
	f.calls = append(f.calls, call{name: name, args: args, opts: opts})
	return f.result, f.err
}

func (f *fakeRunner) Stream(_ context.Context, name string, args []string, opts execx.RunOpts) (int, error) {
	f.calls = append(f.calls, call{name: name, args: args, opts: opts})
	return f.code, f.err
}
