package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dpetrovs/userdeck/internal/client/api"
	"github.com/dpetrovs/userdeck/internal/client/config"
	"github.com/dpetrovs/userdeck/internal/client/stores"
	"github.com/dpetrovs/userdeck/internal/logging"
)

// screen selects which command set the REPL dispatches to.
type screen string

const (
	screenUsers   screen = "users"
	screenProfile screen = "profile"
)

// App owns the two stores and the terminal I/O of the client. One screen is
// active at a time: the user directory or a single profile.
type App struct {
	config    *config.Config
	directory *stores.Directory
	profile   *stores.Profile
	log       logging.Logger

	screen screen
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c *config.Config, log logging.Logger) *App {
	if log == nil {
		log = logging.NewNop()
	}

	a := &App{
		config: c,
		log:    log,
		screen: screenUsers,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}

	client := api.NewHTTPClient(c.BackendOrigin, log)
	a.directory = stores.NewDirectory(client, func(prompt string) bool {
		return Confirm(a.reader, prompt, a.out)
	}, log)
	a.profile = stores.NewProfile(client, log)

	return a
}

// Run loads the starting page and blocks in the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	if err := a.directory.Load(ctx, a.config.PageStart); err != nil {
		a.println(a.directory.Err())
	}
	a.List(ctx)
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

func (a *App) inProfile() bool {
	return a.screen == screenProfile
}

// status is rendered into the REPL prompt.
func (a *App) status() string {
	if a.inProfile() {
		if u := a.profile.User(); u != nil {
			return "profile " + u.Username
		}
		return "profile"
	}
	return "users"
}
