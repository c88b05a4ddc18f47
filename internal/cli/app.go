// Package cli holds the moneywise subcommands.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"

	"github.com/idilsaglam/moneywise/internal/config"
	"github.com/idilsaglam/moneywise/internal/ledger"
	"github.com/idilsaglam/moneywise/internal/quiz"
	"github.com/idilsaglam/moneywise/internal/rates"
	"github.com/idilsaglam/moneywise/internal/store"
	"github.com/idilsaglam/moneywise/internal/store/jsonstore"
	"github.com/idilsaglam/moneywise/internal/store/redisstore"
)

// App is what every command needs: configuration, a logger and the
// terminal streams.
type App struct {
	Config *config.Config
	Log    zerolog.Logger
	In     io.Reader
	Out    io.Writer
	Err    io.Writer
}

// NewApp wires stdin/stdout/stderr.
func NewApp(c *config.Config, log zerolog.Logger) *App {
	return &App{Config: c, Log: log, In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// Commands lists every subcommand bound to app.
func Commands(app *App) []subcommands.Command {
	return []subcommands.Command{
		&uiCmd{app: app},
		&sipCmd{app: app},
		&emiCmd{app: app},
		&taxCmd{app: app},
		&expenseCmd{app: app},
		&ratesCmd{app: app},
		&quizCmd{app: app},
		&homeCmd{app: app},
	}
}

// Store opens the configured ledger backend. close releases it.
func (a *App) Store() (s store.Store, close func(), err error) {
	c := a.Config
	switch c.Storage.Backend {
	case "redis":
		r := c.Storage.Redis
		rs := redisstore.New(r.Addr, r.Password, r.DB, r.Key)
		return rs, func() { rs.Close() }, nil
	case "file":
		if err := config.EnsureDir(c.DataDir); err != nil {
			return nil, nil, err
		}
		return jsonstore.New(c.LedgerPath()), func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
}

// Ledger opens the ledger over the configured store.
func (a *App) Ledger() (*ledger.Ledger, func(), error) {
	s, closeFn, err := a.Store()
	if err != nil {
		return nil, nil, err
	}
	return ledger.New(s, a.Log), closeFn, nil
}

// Rates returns the ticker client.
func (a *App) Rates(client *http.Client) *rates.Client {
	r := a.Config.Rates
	return &rates.Client{
		HTTP:      client,
		Endpoint:  r.Endpoint,
		Path:      r.Path,
		EURFactor: r.EURFactor,
		Fallback:  r.Fallback,
		Log:       a.Log.With().Str("component", "rates").Logger(),
	}
}

// Quiz builds the configured question set.
func (a *App) Quiz() (*quiz.Quiz, error) {
	return quiz.New(a.Config.Quiz.Questions, a.Config.Quiz.MidRatio)
}

// confirm asks a yes/no question on the app streams; only "y" or "yes" agree.
func (a *App) confirm(prompt string) func() bool {
	return func() bool {
		line, err := ask(a.Out, bufio.NewReader(a.In), prompt+" [y/N] ")
		return err == nil && yes(line)
	}
}

// usage prints an error and the command usage, returning ExitUsageError.
func (a *App) usage(c subcommands.Command, msg string) subcommands.ExitStatus {
	a.failf("%s", msg)
	fmt.Fprint(a.Err, c.Usage())
	return subcommands.ExitUsageError
}
