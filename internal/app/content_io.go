package app

import (
	"time"

	"github.com/KasumiMercury/primind-remind-scheduler/internal/domain"
)

// Static reminders and templates share the same untimed shape.

type CreateContentInput struct {
	UserID               string
	Title                string
	Text                 string
	Color                string
	NotificationServices []string
}

// UpdateContentInput is partial: nil fields keep their current value.
type UpdateContentInput struct {
	UserID               string
	ID                   string
	Title                *string
	Text                 *string
	Color                *string
	NotificationServices []string
}

type ResourceInput struct {
	UserID string
	ID     string
}

type ListInput struct {
	UserID string
	SortBy string
}

type SearchInput struct {
	UserID string
	Query  string
	SortBy string
}

type ContentOutput struct {
	ID                   string
	UserID               string
	Title                string
	Text                 string
	Color                string
	NotificationServices []string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

type ContentsOutput struct {
	Items []ContentOutput
	Count int32
}

type content interface {
	Title() string
	Text() string
	Color() domain.Color
	Services() []domain.NotificationServiceID
	CreatedAt() time.Time
	UpdatedAt() time.Time
}

func fromContent(id, userID string, c content) ContentOutput {
	return ContentOutput{
		ID:                   id,
		UserID:               userID,
		Title:                c.Title(),
		Text:                 c.Text(),
		Color:                c.Color().String(),
		NotificationServices: serviceIDStrings(c.Services()),
		CreatedAt:            c.CreatedAt(),
		UpdatedAt:            c.UpdatedAt(),
	}
}

func contentSortKey[T content](c T) sortKey {
	return sortKey{
		title:   c.Title(),
		text:    c.Text(),
		color:   c.Color().String(),
		created: c.CreatedAt(),
	}
}

// mergeContent applies a partial update on top of the current values.
func mergeContent(current content, input UpdateContentInput) (title, text string, color domain.Color, err error) {
	title, text, color = current.Title(), current.Text(), current.Color()

	if input.Title != nil {
		title = *input.Title
	}

	if input.Text != nil {
		text = *input.Text
	}

	if input.Color != nil {
		color, err = parseColor(*input.Color)
	}

	return title, text, color, err
}

func fromStaticReminder(r *domain.StaticReminder) ContentOutput {
	return fromContent(r.ID().String(), r.UserID().String(), r)
}

func fromTemplate(t *domain.Template) ContentOutput {
	return fromContent(t.ID().String(), t.UserID().String(), t)
}

func toContents[T any](items []T, convert func(T) ContentOutput) ContentsOutput {
	out := make([]ContentOutput, 0, len(items))
	for _, item := range items {
		out = append(out, convert(item))
	}

	return ContentsOutput{
		Items: out,
		Count: int32(len(out)), //nolint:gosec
	}
}
