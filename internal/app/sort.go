package app

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"
)

type SortBy string

const (
	SortByTime              SortBy = "time"
	SortByTimeReversed      SortBy = "time_reversed"
	SortByTitle             SortBy = "title"
	SortByTitleReversed     SortBy = "title_reversed"
	SortByDateAdded         SortBy = "date_added"
	SortByDateAddedReversed SortBy = "date_added_reversed"
)

// ParseSortBy validates a sort order. Timeless resources (templates, static
// reminders) cannot be ordered by time and default to title.
func ParseSortBy(s string, timed bool) (SortBy, error) {
	if s == "" {
		if timed {
			return SortByTime, nil
		}

		return SortByTitle, nil
	}

	switch by := SortBy(s); by {
	case SortByTitle, SortByTitleReversed, SortByDateAdded, SortByDateAddedReversed:
		return by, nil
	case SortByTime, SortByTimeReversed:
		if timed {
			return by, nil
		}
	}

	return "", NewValidationError("sort_by", fmt.Sprintf("unknown sort order: %s", s))
}

func (s SortBy) reversed() bool {
	return strings.HasSuffix(string(s), "_reversed")
}

type sortKey struct {
	time    time.Time
	title   string
	text    string
	color   string
	created time.Time
}

func compareKeys(by SortBy, a, b sortKey) int {
	switch strings.TrimSuffix(string(by), "_reversed") {
	case string(SortByTime):
		return cmp.Or(
			a.time.Compare(b.time),
			strings.Compare(a.title, b.title),
			strings.Compare(a.text, b.text),
			strings.Compare(a.color, b.color),
		)
	case string(SortByDateAdded):
		return a.created.Compare(b.created)
	default:
		return cmp.Or(
			strings.Compare(a.title, b.title),
			a.time.Compare(b.time),
			strings.Compare(a.text, b.text),
			strings.Compare(a.color, b.color),
		)
	}
}

func sortItems[T any](items []T, by SortBy, key func(T) sortKey) {
	slices.SortStableFunc(items, func(a, b T) int {
		c := compareKeys(by, key(a), key(b))
		if by.reversed() {
			return -c
		}

		return c
	})
}
