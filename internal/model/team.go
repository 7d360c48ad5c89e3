package model

import "unicode"

// TeamMember is a roster entry rendered as a card on the team page.
type TeamMember struct {
	Name   string `mapstructure:"name" yaml:"name"`
	Role   string `mapstructure:"role" yaml:"role"`
	Email  string `mapstructure:"email" yaml:"email"`
	Status string `mapstructure:"status" yaml:"status"`
}

// Initials returns up to two uppercase initials for the member's avatar.
func (m TeamMember) Initials() string {
	var out []rune
	start := true
	for _, r := range m.Name {
		if r == ' ' {
			start = true
			continue
		}
		if start {
			out = append(out, unicode.ToUpper(r))
			start = false
			if len(out) == 2 {
				break
			}
		}
	}
	if len(out) == 0 {
		return "?"
	}
	return string(out)
}
