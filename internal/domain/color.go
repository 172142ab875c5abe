package domain

import (
	"regexp"
	"strings"
)

var colorPattern = regexp.MustCompile(`^#[0-9a-f]{6}$`)

// Color is a display hex code. The zero value means "no color".
type Color struct {
	value string
}

func NewColor(s string) (Color, error) {
	if s == "" {
		return Color{}, nil
	}

	s = strings.ToLower(s)
	if !colorPattern.MatchString(s) {
		return Color{}, ErrInvalidColor
	}

	return Color{value: s}, nil
}

func (c Color) String() string {
	return c.value
}

func (c Color) IsZero() bool {
	return c.value == ""
}
