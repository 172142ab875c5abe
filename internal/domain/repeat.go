package domain

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

type RepeatQuantity string

const (
	RepeatYears   RepeatQuantity = "years"
	RepeatMonths  RepeatQuantity = "months"
	RepeatWeeks   RepeatQuantity = "weeks"
	RepeatDays    RepeatQuantity = "days"
	RepeatHours   RepeatQuantity = "hours"
	RepeatMinutes RepeatQuantity = "minutes"
)

func NewRepeatQuantity(q string) (RepeatQuantity, error) {
	switch RepeatQuantity(q) {
	case RepeatYears, RepeatMonths, RepeatWeeks, RepeatDays, RepeatHours, RepeatMinutes:
		return RepeatQuantity(q), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidRepeatQuantity, q)
	}
}

// Weekdays is a sorted set of weekday indices, 0 = Monday .. 6 = Sunday.
type Weekdays []int

func NewWeekdays(days []int) (Weekdays, error) {
	if len(days) == 0 {
		return nil, ErrInvalidWeekdays
	}

	set := make(Weekdays, 0, len(days))
	for _, d := range days {
		if d < 0 || d > 6 {
			return nil, ErrInvalidWeekdays
		}

		if !slices.Contains(set, d) {
			set = append(set, d)
		}
	}

	slices.Sort(set)

	return set, nil
}

// WeekdaysFromString parses the comma separated storage form, e.g. "0,2,4".
func WeekdaysFromString(s string) (Weekdays, error) {
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	days := make([]int, 0, len(parts))

	for _, p := range parts {
		d, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, ErrInvalidWeekdays
		}

		days = append(days, d)
	}

	return NewWeekdays(days)
}

func (w Weekdays) String() string {
	parts := make([]string, len(w))
	for i, d := range w {
		parts[i] = strconv.Itoa(d)
	}

	return strings.Join(parts, ",")
}

func (w Weekdays) Contains(day int) bool {
	return slices.Contains(w, day)
}

// MaxRepeatInterval bounds the interval so every unit step stays well inside
// the time.Duration and int32 storage ranges.
const MaxRepeatInterval = 10000

type RepeatMode int

const (
	RepeatNone RepeatMode = iota
	RepeatInterval
	RepeatWeekdays
)

// Repeat is one of: no repeat, every N units, or a set of weekdays.
type Repeat struct {
	quantity RepeatQuantity
	interval int
	weekdays Weekdays
}

func NoRepeat() Repeat {
	return Repeat{}
}

func NewIntervalRepeat(quantity RepeatQuantity, interval int) (Repeat, error) {
	if _, err := NewRepeatQuantity(string(quantity)); err != nil {
		return Repeat{}, err
	}

	if interval < 1 || interval > MaxRepeatInterval {
		return Repeat{}, ErrInvalidRepeatInterval
	}

	return Repeat{quantity: quantity, interval: interval}, nil
}

func NewWeekdayRepeat(days []int) (Repeat, error) {
	weekdays, err := NewWeekdays(days)
	if err != nil {
		return Repeat{}, err
	}

	return Repeat{weekdays: weekdays}, nil
}

// NewRepeat builds a Repeat from optional raw input and rejects partial or
// mixed specifications.
func NewRepeat(quantity *string, interval *int, weekdays []int) (Repeat, error) {
	hasQuantity := quantity != nil && *quantity != ""
	hasInterval := interval != nil

	switch {
	case hasQuantity != hasInterval:
		return Repeat{}, ErrInvalidRepeat
	case hasQuantity && weekdays != nil:
		return Repeat{}, ErrInvalidRepeat
	case hasQuantity:
		return NewIntervalRepeat(RepeatQuantity(*quantity), *interval)
	case weekdays != nil:
		return NewWeekdayRepeat(weekdays)
	default:
		return NoRepeat(), nil
	}
}

func (r Repeat) Mode() RepeatMode {
	switch {
	case r.quantity != "":
		return RepeatInterval
	case len(r.weekdays) > 0:
		return RepeatWeekdays
	default:
		return RepeatNone
	}
}

func (r Repeat) IsRepeating() bool {
	return r.Mode() != RepeatNone
}

func (r Repeat) Quantity() RepeatQuantity {
	return r.quantity
}

func (r Repeat) Interval() int {
	return r.interval
}

func (r Repeat) Weekdays() Weekdays {
	return r.weekdays
}
