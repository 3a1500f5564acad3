package prompt

import (
	"fmt"
	"io"
)

// scripted answers every question with the next queued answer. "y" and "n"
// answer confirmations and "" takes the default.
type scripted struct {
	answers   []string
	questions []string
	warnings  []string
	successes []string
}

func newScripted(answers ...string) *scripted {
	return &scripted{answers: answers}
}

func (s *scripted) next(question string) (string, error) {
	s.questions = append(s.questions, question)
	if len(s.answers) == 0 {
		return "", io.EOF
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]
	return answer, nil
}

func (s *scripted) Ask(question, def string) (string, error) {
	answer, err := s.next(question)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

func (s *scripted) Confirm(question string, def bool) (bool, error) {
	answer, err := s.next(question)
	if err != nil {
		return false, err
	}
	switch answer {
	case "":
		return def, nil
	case "y":
		return true, nil
	case "n":
		return false, nil
	}
	return false, fmt.Errorf("unexpected confirmation answer %q", answer)
}

func (s *scripted) Select(question string, _ []string) (string, error) {
	return s.next(question)
}

func (s *scripted) Warn(msg string) {
	s.warnings = append(s.warnings, msg)
}

func (s *scripted) Success(msg string) {
	s.successes = append(s.successes, msg)
}
