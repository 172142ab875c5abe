package app

import (
	"context"
)

// TemplateUseCase manages reusable reminder drafts. Templates are never
// scheduled.
type TemplateUseCase interface {
	CreateTemplate(ctx context.Context, input CreateContentInput) (ContentOutput, error)
	GetTemplate(ctx context.Context, input ResourceInput) (ContentOutput, error)
	ListTemplates(ctx context.Context, input ListInput) (ContentsOutput, error)
	SearchTemplates(ctx context.Context, input SearchInput) (ContentsOutput, error)
	UpdateTemplate(ctx context.Context, input UpdateContentInput) (ContentOutput, error)
	DeleteTemplate(ctx context.Context, input ResourceInput) error
}
