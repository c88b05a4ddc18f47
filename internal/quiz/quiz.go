// Package quiz runs a fixed multiple-choice quiz as a linear state machine.
//
// A Session is a value: every transition takes a Session and returns the
// next one, so callers hold the only copy of the state.
package quiz

import (
	"errors"
	"fmt"

	"github.com/idilsaglam/moneywise/internal/model"
)

var (
	ErrNoQuestions     = errors.New("quiz: no questions")
	ErrFinished        = errors.New("quiz: already finished")
	ErrNotFinished     = errors.New("quiz: not finished")
	ErrAlreadyAnswered = errors.New("quiz: question already answered")
	ErrNotAnswered     = errors.New("quiz: question not answered")
	ErrInvalidOption   = errors.New("quiz: invalid option")
)

// Quiz is an immutable question set plus its result tiers.
type Quiz struct {
	questions []model.Question
	midRatio  float64
}

// New validates questions and returns a Quiz. A score strictly above
// midRatio*len(questions) (and below perfect) earns the middle tier.
func New(questions []model.Question, midRatio float64) (*Quiz, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	qs := make([]model.Question, len(questions))
	for i, q := range questions {
		if len(q.Options) == 0 {
			return nil, fmt.Errorf("question %d: no options", i+1)
		}
		if q.Answer < 0 || q.Answer >= len(q.Options) {
			return nil, fmt.Errorf("question %d: answer %d out of range", i+1, q.Answer)
		}
		q.Options = append([]string(nil), q.Options...)
		qs[i] = q
	}
	return &Quiz{questions: qs, midRatio: midRatio}, nil
}

// Len is the number of questions.
func (q *Quiz) Len() int { return len(q.questions) }

// Question returns the i-th question.
func (q *Quiz) Question(i int) model.Question { return q.questions[i] }

// Start returns a fresh session on the first question.
func (q *Quiz) Start() Session { return Session{quiz: q} }

// Session is the state of one run through the quiz.
type Session struct {
	quiz     *Quiz
	index    int
	score    int
	answered bool
	selected int
}

// Index is the current question, 0-based.
func (s Session) Index() int { return s.index }

// Score is the number of correct answers so far.
func (s Session) Score() int { return s.score }

// Total is the number of questions.
func (s Session) Total() int { return s.quiz.Len() }

// Finished reports whether every question has been answered and advanced past.
func (s Session) Finished() bool { return s.index >= s.quiz.Len() }

// Answered reports whether the current question has been answered.
func (s Session) Answered() bool { return s.answered }

// Selected is the option chosen for the current question, valid when Answered.
func (s Session) Selected() int { return s.selected }

// Current returns the question being asked.
func (s Session) Current() (model.Question, bool) {
	if s.Finished() {
		return model.Question{}, false
	}
	return s.quiz.Question(s.index), true
}

// Progress is the share of completed questions, in percent.
func (s Session) Progress() float64 {
	if s.Finished() {
		return 100
	}
	return float64(s.index) / float64(s.quiz.Len()) * 100
}

// Outcome describes the result of answering one question.
type Outcome struct {
	Correct  bool
	Selected int
	Answer   int // the correct option, revealed either way
}

// Feedback is the message shown after answering.
func (o Outcome) Feedback() string {
	if o.Correct {
		return "✅ Correct!"
	}
	return "❌ Incorrect!"
}

// Answer records the selected option for the current question.
func (s Session) Answer(option int) (Session, Outcome, error) {
	q, ok := s.Current()
	if !ok {
		return s, Outcome{}, ErrFinished
	}
	if s.answered {
		return s, Outcome{}, ErrAlreadyAnswered
	}
	if option < 0 || option >= len(q.Options) {
		return s, Outcome{}, fmt.Errorf("%w: %d", ErrInvalidOption, option)
	}
	o := Outcome{Correct: option == q.Answer, Selected: option, Answer: q.Answer}
	s.answered = true
	s.selected = option
	if o.Correct {
		s.score++
	}
	return s, o, nil
}

// Advance moves past an answered question.
func (s Session) Advance() (Session, error) {
	if s.Finished() {
		return s, ErrFinished
	}
	if !s.answered {
		return s, ErrNotAnswered
	}
	s.index++
	s.answered = false
	s.selected = 0
	return s, nil
}

// Restart returns a fresh session. Only a finished session can restart.
func (s Session) Restart() (Session, error) {
	if !s.Finished() {
		return s, ErrNotFinished
	}
	return s.quiz.Start(), nil
}

// Tier grades a finished session.
type Tier int

const (
	TierEncourage Tier = iota
	TierGood
	TierPerfect
)

// Emoji is the badge shown with the tier.
func (t Tier) Emoji() string {
	switch t {
	case TierPerfect:
		return "🏆"
	case TierGood:
		return "👏"
	}
	return "📚"
}

// Message is the result line shown with the tier.
func (t Tier) Message() string {
	switch t {
	case TierPerfect:
		return "Perfect Score! You are a Pro!"
	case TierGood:
		return "Great Job! You know your finance."
	}
	return "Good try! Keep learning."
}

// Tier grades the current score.
func (s Session) Tier() Tier {
	n := s.quiz.Len()
	switch {
	case s.score == n:
		return TierPerfect
	case float64(s.score) > s.quiz.midRatio*float64(n):
		return TierGood
	}
	return TierEncourage
}
