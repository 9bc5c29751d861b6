package prompt

import (
	"fmt"
)

// Scripted is a Prompter that replays canned answers. It is meant for tests
// and non-interactive callers.
type Scripted struct {
	Visible []string
	Masked  []string

	// Asked records every prompt in order, prefixed with "visible: " or "masked: ".
	Asked []string
}

func (s *Scripted) AskVisible(prompt string) (string, error) {
	s.Asked = append(s.Asked, "visible: "+prompt)
	if len(s.Visible) == 0 {
		return "", fmt.Errorf("no scripted answer for prompt %q", prompt)
	}
	answer := s.Visible[0]
	s.Visible = s.Visible[1:]
	return answer, nil
}

func (s *Scripted) AskMasked(prompt string) (string, error) {
	s.Asked = append(s.Asked, "masked: "+prompt)
	if len(s.Masked) == 0 {
		return "", fmt.Errorf("no scripted answer for masked prompt %q", prompt)
	}
	answer := s.Masked[0]
	s.Masked = s.Masked[1:]
	return answer, nil
}
