package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	profile bool

	calls []string
	args  []string
}

func (f *fakeExec) inProfile() bool { return f.profile }

func (f *fakeExec) record(name, arg string) {
	f.calls = append(f.calls, name)
	f.args = append(f.args, arg)
}

func (f *fakeExec) List(ctx context.Context) { f.record("list", "") }
func (f *fakeExec) Next(ctx context.Context) { f.record("next", "") }
func (f *fakeExec) Prev(ctx context.Context) { f.record("prev", "") }
func (f *fakeExec) Add(ctx context.Context)  { f.record("add", "") }
func (f *fakeExec) Edit(ctx context.Context, arg string) {
	f.record("edit", arg)
}
func (f *fakeExec) Delete(ctx context.Context, arg string) {
	f.record("del", arg)
}
func (f *fakeExec) Open(ctx context.Context, arg string) {
	f.record("open", arg)
	f.profile = true
}

func (f *fakeExec) Show(ctx context.Context)        { f.record("show", "") }
func (f *fakeExec) EditProfile(ctx context.Context) { f.record("editprofile", "") }
func (f *fakeExec) Pick(ctx context.Context, path string) {
	f.record("pick", path)
}
func (f *fakeExec) Upload(ctx context.Context) { f.record("upload", "") }
func (f *fakeExec) Drop(ctx context.Context)   { f.record("drop", "") }
func (f *fakeExec) Back(ctx context.Context) {
	f.record("back", "")
	f.profile = false
}

func TestRunREPL_DispatchesByScreen(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"list",
		"next",
		"prev",
		"edit 2",
		"del 3",
		"open 1",
		"help",
		"show",
		"pick /tmp/a.jpg",
		"upload",
		"drop",
		"back",
		"l",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewScanner(input))

	assert.Equal(t,
		[]string{"list", "next", "prev", "edit", "del", "open", "show", "pick", "upload", "drop", "back", "list"},
		exec.calls)
	assert.Equal(t, "2", exec.args[3])
	assert.Equal(t, "3", exec.args[4])
	assert.Equal(t, "/tmp/a.jpg", exec.args[7])
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(strings.NewReader("")))
	assert.Empty(t, exec.calls)
}

func TestRunREPL_UnknownCommandInProfileScreen(t *testing.T) {
	var printed []string
	origPrint := printlnFn
	printlnFn = func(args ...any) (int, error) {
		for _, a := range args {
			if s, ok := a.(string); ok {
				printed = append(printed, s)
			}
		}
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })

	exec := &fakeExec{profile: true}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(strings.NewReader("next\nexit\n")))

	// "next" is a users-screen command; in the profile screen it is unknown.
	assert.Empty(t, exec.calls)
	assert.Contains(t, printed, "Unknown command:")
}
