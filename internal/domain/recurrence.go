package domain

import (
	"time"

	"github.com/teambition/rrule-go"
)

var rruleWeekdays = [7]rrule.Weekday{
	rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA, rrule.SU,
}

// NextTime returns the next occurrence of a repeating reminder strictly after
// now, derived from the immutable anchor so repeated calls never drift.
//
// Interval mode returns the smallest anchor + k*interval (k >= 0) after now.
// Weekday mode always advances at least one day past the anchor. A non
// repeating spec returns the anchor unchanged.
func NextTime(original time.Time, repeat Repeat, now time.Time) time.Time {
	original = original.UTC().Truncate(time.Second)
	now = now.UTC()

	switch repeat.Mode() {
	case RepeatInterval:
		return nextInterval(original, repeat.Quantity(), repeat.Interval(), now)
	case RepeatWeekdays:
		return nextWeekday(original, repeat.Weekdays(), now)
	default:
		return original
	}
}

func nextInterval(original time.Time, quantity RepeatQuantity, interval int, now time.Time) time.Time {
	if original.After(now) {
		return original
	}

	var unit int64

	switch quantity {
	case RepeatYears:
		return nextMonthly(original, interval*12, now)
	case RepeatMonths:
		return nextMonthly(original, interval, now)
	case RepeatWeeks:
		unit = 7 * 24 * 60 * 60
	case RepeatDays:
		unit = 24 * 60 * 60
	case RepeatHours:
		unit = 60 * 60
	case RepeatMinutes:
		unit = 60
	}

	// Whole seconds, so distant anchors never overflow a Duration.
	step := unit * int64(interval)
	k := (now.Unix()-original.Unix())/step + 1

	return time.Unix(original.Unix()+k*step, 0).UTC()
}

func nextMonthly(original time.Time, months int, now time.Time) time.Time {
	elapsed := (now.Year()-original.Year())*12 + int(now.Month()-original.Month())

	k := elapsed / months
	if k < 0 {
		k = 0
	}

	next := addMonthsClamped(original, k*months)
	for !next.After(now) {
		k++
		next = addMonthsClamped(original, k*months)
	}

	return next
}

// addMonthsClamped keeps the anchor's day of month, clamped to the length of
// the target month (Jan 31 + 1 month = Feb 28/29).
func addMonthsClamped(t time.Time, months int) time.Time {
	y, m, d := t.Date()

	firstOfTarget := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()

	if d > lastDay {
		d = lastDay
	}

	return time.Date(
		firstOfTarget.Year(), firstOfTarget.Month(), d,
		t.Hour(), t.Minute(), t.Second(), 0, time.UTC,
	)
}

func nextWeekday(original time.Time, weekdays Weekdays, now time.Time) time.Time {
	byWeekday := make([]rrule.Weekday, 0, len(weekdays))
	for _, d := range weekdays {
		byWeekday = append(byWeekday, rruleWeekdays[d])
	}

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Interval:  1,
		Byweekday: byWeekday,
		Dtstart:   original,
	})
	if err != nil {
		// Weekdays are validated on construction; this cannot happen.
		panic(err)
	}

	after := original
	if now.After(after) {
		after = now
	}

	return rule.After(after, false).UTC()
}

// WeekdayIndex converts a time.Weekday into the 0 = Monday index used by Weekdays.
func WeekdayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}
