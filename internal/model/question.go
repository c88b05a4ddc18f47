package model

// Question is one multiple-choice quiz question.
type Question struct {
	Prompt  string   `yaml:"prompt" json:"prompt"`
	Options []string `yaml:"options" json:"options"`
	Answer  int      `yaml:"answer" json:"answer"` // index into Options
}
