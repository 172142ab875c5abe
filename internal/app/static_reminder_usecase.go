package app

import (
	"context"
)

type StaticReminderUseCase interface {
	CreateStaticReminder(ctx context.Context, input CreateContentInput) (ContentOutput, error)
	GetStaticReminder(ctx context.Context, input ResourceInput) (ContentOutput, error)
	ListStaticReminders(ctx context.Context, input ListInput) (ContentsOutput, error)
	SearchStaticReminders(ctx context.Context, input SearchInput) (ContentsOutput, error)
	UpdateStaticReminder(ctx context.Context, input UpdateContentInput) (ContentOutput, error)
	DeleteStaticReminder(ctx context.Context, input ResourceInput) error
	// TriggerStaticReminder sends the reminder to its services right away.
	TriggerStaticReminder(ctx context.Context, input ResourceInput) error
}
