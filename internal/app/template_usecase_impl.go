package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KasumiMercury/primind-remind-scheduler/internal/domain"
)

type templateUseCaseImpl struct {
	repo     domain.TemplateRepository
	services domain.NotificationServiceRepository
}

func NewTemplateUseCase(repo domain.TemplateRepository, services domain.NotificationServiceRepository) TemplateUseCase {
	return &templateUseCaseImpl{
		repo:     repo,
		services: services,
	}
}

func (uc *templateUseCaseImpl) CreateTemplate(ctx context.Context, input CreateContentInput) (ContentOutput, error) {
	userID, err := parseUserID(input.UserID)
	if err != nil {
		return ContentOutput{}, err
	}

	color, err := parseColor(input.Color)
	if err != nil {
		return ContentOutput{}, err
	}

	ids, _, err := resolveServices(ctx, uc.services, userID, input.NotificationServices)
	if err != nil {
		return ContentOutput{}, err
	}

	template, err := domain.NewTemplate(userID, input.Title, input.Text, color, ids)
	if err != nil {
		return ContentOutput{}, contentError(err)
	}

	if err := uc.repo.Save(ctx, template); err != nil {
		slog.ErrorContext(ctx, "failed to save template",
			"error", err,
			"template_id", template.ID().String(),
		)

		return ContentOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	return fromTemplate(template), nil
}

func (uc *templateUseCaseImpl) find(ctx context.Context, input ResourceInput) (*domain.Template, error) {
	userID, err := parseUserID(input.UserID)
	if err != nil {
		return nil, err
	}

	id, err := domain.TemplateIDFromString(input.ID)
	if err != nil {
		return nil, NewValidationError("id", err.Error())
	}

	template, err := uc.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, repoError(err, domain.ErrTemplateNotFound)
	}

	return template, nil
}

func (uc *templateUseCaseImpl) GetTemplate(ctx context.Context, input ResourceInput) (ContentOutput, error) {
	template, err := uc.find(ctx, input)
	if err != nil {
		return ContentOutput{}, err
	}

	return fromTemplate(template), nil
}

func (uc *templateUseCaseImpl) ListTemplates(ctx context.Context, input ListInput) (ContentsOutput, error) {
	userID, err := parseUserID(input.UserID)
	if err != nil {
		return ContentsOutput{}, err
	}

	sortBy, err := ParseSortBy(input.SortBy, false)
	if err != nil {
		return ContentsOutput{}, err
	}

	templates, err := uc.repo.FindByUserID(ctx, userID)
	if err != nil {
		return ContentsOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	sortItems(templates, sortBy, contentSortKey[*domain.Template])

	return toContents(templates, fromTemplate), nil
}

func (uc *templateUseCaseImpl) SearchTemplates(ctx context.Context, input SearchInput) (ContentsOutput, error) {
	userID, err := parseUserID(input.UserID)
	if err != nil {
		return ContentsOutput{}, err
	}

	if input.Query == "" {
		return ContentsOutput{}, NewValidationError("query", "query cannot be empty")
	}

	sortBy, err := ParseSortBy(input.SortBy, false)
	if err != nil {
		return ContentsOutput{}, err
	}

	templates, err := uc.repo.Search(ctx, userID, input.Query)
	if err != nil {
		return ContentsOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	sortItems(templates, sortBy, contentSortKey[*domain.Template])

	return toContents(templates, fromTemplate), nil
}

func (uc *templateUseCaseImpl) UpdateTemplate(ctx context.Context, input UpdateContentInput) (ContentOutput, error) {
	template, err := uc.find(ctx, ResourceInput{UserID: input.UserID, ID: input.ID})
	if err != nil {
		return ContentOutput{}, err
	}

	title, text, color, err := mergeContent(template, input)
	if err != nil {
		return ContentOutput{}, err
	}

	services := template.Services()
	if input.NotificationServices != nil {
		if services, _, err = resolveServices(ctx, uc.services, template.UserID(), input.NotificationServices); err != nil {
			return ContentOutput{}, err
		}
	}

	if err := template.Update(title, text, color, services); err != nil {
		return ContentOutput{}, contentError(err)
	}

	if err := uc.repo.Update(ctx, template); err != nil {
		slog.ErrorContext(ctx, "failed to update template",
			"error", err,
			"template_id", input.ID,
		)

		return ContentOutput{}, repoError(err, domain.ErrTemplateNotFound)
	}

	return fromTemplate(template), nil
}

func (uc *templateUseCaseImpl) DeleteTemplate(ctx context.Context, input ResourceInput) error {
	userID, err := parseUserID(input.UserID)
	if err != nil {
		return err
	}

	id, err := domain.TemplateIDFromString(input.ID)
	if err != nil {
		return NewValidationError("id", err.Error())
	}

	if err := uc.repo.Delete(ctx, userID, id); err != nil {
		return repoError(err, domain.ErrTemplateNotFound)
	}

	return nil
}
