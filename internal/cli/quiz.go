package cli

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/subcommands"

	"github.com/idilsaglam/moneywise/internal/quiz"
	"github.com/idilsaglam/moneywise/internal/ui"
)

type quizCmd struct{ app *App }

func (*quizCmd) Name() string           { return "quiz" }
func (*quizCmd) Synopsis() string       { return "play the finance quiz" }
func (*quizCmd) SetFlags(*flag.FlagSet) {}
func (*quizCmd) Usage() string {
	return `quiz

Answer each question with its number. Every question must be answered
before the next one is shown.
`
}

func (c *quizCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	q, err := c.app.Quiz()
	if err != nil {
		c.app.failf("quiz: %v", err)
		return subcommands.ExitFailure
	}
	in := bufio.NewReader(c.app.In)
	s := q.Start()
	for {
		if ctx.Err() != nil {
			return subcommands.ExitFailure
		}
		if s, err = c.play(in, s); err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(c.app.Out)
				return subcommands.ExitSuccess
			}
			c.app.failf("quiz: %v", err)
			return subcommands.ExitFailure
		}
		c.results(s)
		again, err := ask(c.app.Out, in, "Play again? [y/N] ")
		if err != nil || !yes(again) {
			return subcommands.ExitSuccess
		}
		s, _ = s.Restart()
	}
}

// play runs s to the end, one question per prompt.
func (c *quizCmd) play(in *bufio.Reader, s quiz.Session) (quiz.Session, error) {
	t := ui.Current()
	for !s.Finished() {
		cur, _ := s.Current()
		fmt.Fprintf(c.app.Out, "\n%s  %s\n%s\n\n%s\n",
			ui.C(t.Muted, fmt.Sprintf("Question %d / %d", s.Index()+1, s.Total())),
			ui.C(t.Accent, fmt.Sprintf("Score: %d", s.Score())),
			ui.ProgressBar(s.Progress(), 30),
			ui.C(t.Title, cur.Prompt))
		for i, opt := range cur.Options {
			fmt.Fprintf(c.app.Out, "  %d. %s\n", i+1, opt)
		}
		line, err := ask(c.app.Out, in, fmt.Sprintf("Answer [1-%d]: ", len(cur.Options)))
		if err != nil {
			return s, err
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			ui.FFail(c.app.Out, fmt.Sprintf("pick a number from 1 to %d", len(cur.Options)))
			continue
		}
		answered, o, err := s.Answer(n - 1)
		if errors.Is(err, quiz.ErrInvalidOption) {
			ui.FFail(c.app.Out, fmt.Sprintf("pick a number from 1 to %d", len(cur.Options)))
			continue
		}
		if err != nil {
			return s, err
		}
		if o.Correct {
			fmt.Fprintln(c.app.Out, ui.C(t.Success, o.Feedback()))
		} else {
			fmt.Fprintln(c.app.Out, ui.C(t.Error, o.Feedback()),
				ui.C(t.Muted, "Answer: "+cur.Options[o.Answer]))
		}
		if s, err = answered.Advance(); err != nil {
			return s, err
		}
	}
	return s, nil
}

func (c *quizCmd) results(s quiz.Session) {
	t := ui.Current()
	tier := s.Tier()
	fmt.Fprintln(c.app.Out)
	ui.FPanel(c.app.Out, []string{
		tier.Emoji() + " " + ui.C(t.Title, "Quiz Completed!"),
		fmt.Sprintf("You scored %s / %d", ui.C(t.Accent, strconv.Itoa(s.Score())), s.Total()),
		tier.Message(),
	})
}

// ask prints prompt and returns the trimmed reply. A final line without a
// newline still counts; io.EOF only comes back when nothing was typed.
func ask(w io.Writer, in *bufio.Reader, prompt string) (string, error) {
	fmt.Fprint(w, prompt)
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func yes(s string) bool {
	switch strings.ToLower(s) {
	case "y", "yes":
		return true
	}
	return false
}
