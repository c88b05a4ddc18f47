package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/moneywise/internal/quiz"
)

var (
	quizMove    = key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓", "option"))
	quizPick    = key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "answer"))
	quizNumber  = key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-3", "answer"))
	quizNext    = key.NewBinding(key.WithKeys("enter", "n"), key.WithHelp("enter", "next"))
	quizRestart = key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart"))
)

type quizPage struct {
	session  quiz.Session
	outcome  *quiz.Outcome
	cursor   int
	progress progress.Model
}

func newQuizPage(q *quiz.Quiz) *quizPage {
	return &quizPage{
		session:  q.Start(),
		progress: progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
	}
}

func (p *quizPage) Title() string   { return "Quiz" }
func (p *quizPage) Init() tea.Cmd   { return nil }
func (p *quizPage) Capturing() bool { return false }
func (p *quizPage) Keys() []key.Binding {
	switch {
	case p.session.Finished():
		return []key.Binding{quizRestart}
	case p.session.Answered():
		return []key.Binding{quizNext}
	}
	return []key.Binding{quizMove, quizNumber, quizPick}
}

func (p *quizPage) answer(option int) {
	s, o, err := p.session.Answer(option)
	if err != nil {
		return
	}
	p.session, p.outcome = s, &o
}

func (p *quizPage) Update(msg tea.Msg) (page, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}
	switch {
	case p.session.Finished():
		if key.Matches(k, quizRestart) {
			if s, err := p.session.Restart(); err == nil {
				p.session, p.outcome, p.cursor = s, nil, 0
			}
		}
	case p.session.Answered():
		if key.Matches(k, quizNext) {
			if s, err := p.session.Advance(); err == nil {
				p.session, p.outcome, p.cursor = s, nil, 0
			}
		}
	default:
		q, _ := p.session.Current()
		switch {
		case key.Matches(k, quizNumber):
			p.answer(int(k.String()[0] - '1'))
		case key.Matches(k, quizPick):
			p.answer(p.cursor)
		case key.Matches(k, quizMove):
			if k.String() == "up" || k.String() == "k" {
				p.cursor = (p.cursor + len(q.Options) - 1) % len(q.Options)
			} else {
				p.cursor = (p.cursor + 1) % len(q.Options)
			}
		}
	}
	return p, nil
}

func (p *quizPage) View(st styles, width int) string {
	p.progress.Width = width - 2
	bar := p.progress.ViewAs(p.session.Progress() / 100)
	s := p.session
	if s.Finished() {
		t := s.Tier()
		lines := []string{
			bar, "",
			t.Emoji(),
			st.title.Render("Quiz Completed!"),
			fmt.Sprintf("You scored %s / %d", st.result.Render(fmt.Sprint(s.Score())), s.Total()),
			t.Message(),
		}
		return strings.Join(lines, "\n")
	}

	q, _ := s.Current()
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s  %s\n",
		st.muted.Render(fmt.Sprintf("Question %d / %d", s.Index()+1, s.Total())),
		st.accent.Render(fmt.Sprintf("Score: %d", s.Score()))))
	b.WriteString(bar + "\n\n")
	b.WriteString(st.title.Render(q.Prompt) + "\n\n")
	for i, opt := range q.Options {
		line := fmt.Sprintf("%d. %s", i+1, opt)
		switch {
		case p.outcome != nil && i == p.outcome.Answer:
			line = st.success.Render("✔ " + line)
		case p.outcome != nil && i == p.outcome.Selected:
			line = st.danger.Render("✖ " + line)
		case p.outcome != nil:
			line = st.muted.Render("  " + line)
		case i == p.cursor:
			line = st.selected.Render("> " + line)
		default:
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	if p.outcome != nil {
		fb := st.success.Render(p.outcome.Feedback())
		if !p.outcome.Correct {
			fb = st.danger.Render(p.outcome.Feedback())
		}
		b.WriteString("\n" + fb)
	}
	return b.String()
}
