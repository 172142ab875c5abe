package handler

import (
	"time"

	"github.com/KasumiMercury/primind-remind-scheduler/internal/app"
)

type CreateContentRequest struct {
	Title                string   `json:"title" binding:"required"`
	Text                 string   `json:"text"`
	Color                string   `json:"color"`
	NotificationServices []string `json:"notification_services" binding:"required,min=1,dive,uuid"`
}

type UpdateContentRequest struct {
	Title                *string  `json:"title"`
	Text                 *string  `json:"text"`
	Color                *string  `json:"color"`
	NotificationServices []string `json:"notification_services" binding:"omitempty,min=1,dive,uuid"`
}

type ContentResponse struct {
	ID                   string    `json:"id"`
	Title                string    `json:"title"`
	Text                 string    `json:"text"`
	Color                string    `json:"color,omitempty"`
	NotificationServices []string  `json:"notification_services"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

type ContentsResponse struct {
	Items []ContentResponse `json:"items"`
	Count int32             `json:"count"`
}

func FromContentOutput(output app.ContentOutput) ContentResponse {
	return ContentResponse{
		ID:                   output.ID,
		Title:                output.Title,
		Text:                 output.Text,
		Color:                output.Color,
		NotificationServices: output.NotificationServices,
		CreatedAt:            output.CreatedAt,
		UpdatedAt:            output.UpdatedAt,
	}
}

func FromContentsOutput(output app.ContentsOutput) ContentsResponse {
	items := make([]ContentResponse, 0, len(output.Items))
	for _, item := range output.Items {
		items = append(items, FromContentOutput(item))
	}

	return ContentsResponse{
		Items: items,
		Count: output.Count,
	}
}

func (r CreateContentRequest) toInput(userID string) app.CreateContentInput {
	return app.CreateContentInput{
		UserID:               userID,
		Title:                r.Title,
		Text:                 r.Text,
		Color:                r.Color,
		NotificationServices: r.NotificationServices,
	}
}

func (r UpdateContentRequest) toInput(userID, id string) app.UpdateContentInput {
	return app.UpdateContentInput{
		UserID:               userID,
		ID:                   id,
		Title:                r.Title,
		Text:                 r.Text,
		Color:                r.Color,
		NotificationServices: r.NotificationServices,
	}
}
