package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	calls []string
	args  [][]string
}

func (f *fakeExec) record(name string, args []string) {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args)
}

func (f *fakeExec) Upload(ctx context.Context, args []string) error {
	f.record("upload", args)
	return nil
}
func (f *fakeExec) Probe(ctx context.Context) error { f.record("test", nil); return nil }
func (f *fakeExec) Creds(ctx context.Context) error { f.record("creds", nil); return nil }
func (f *fakeExec) SetCreds(ctx context.Context, args []string) error {
	f.record("setcreds", args)
	return nil
}
func (f *fakeExec) ResetCreds(ctx context.Context, args []string) error {
	f.record("resetcreds", args)
	return nil
}
func (f *fakeExec) Mode(ctx context.Context, args []string) error {
	f.record("mode", args)
	return nil
}
func (f *fakeExec) History(ctx context.Context) error { f.record("history", nil); return nil }
func (f *fakeExec) Points(ctx context.Context) error  { f.record("points", nil); return nil }
func (f *fakeExec) WhoAmI() error                     { f.record("whoami", nil); return nil }

func muteOutput(t *testing.T) {
	t.Helper()
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	muteOutput(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"upload data.csv aws",
		"test",
		"creds",
		"mode oort",
		"history",
		"points",
		"whoami",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	want := []string{"upload", "test", "creds", "mode", "history", "points", "whoami"}
	if len(exec.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", exec.calls, want)
	}
	for i := range want {
		if exec.calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", exec.calls, want)
		}
	}
	if len(exec.args[0]) != 2 || exec.args[0][0] != "data.csv" || exec.args[0][1] != "aws" {
		t.Fatalf("upload args = %v", exec.args[0])
	}
}

func TestRunREPL_UsageGuardsAndQuit(t *testing.T) {
	muteOutput(t)

	input := strings.NewReader("upload\nsetcreds\nresetcreds\nquit\n")
	exec := &fakeExec{}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	muteOutput(t)

	exec := &fakeExec{}
	sc := bufio.NewScanner(strings.NewReader("creds"))

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	if len(exec.calls) != 1 || exec.calls[0] != "creds" {
		t.Fatalf("calls = %v", exec.calls)
	}
}
