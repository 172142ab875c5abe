package handler

import (
	"time"

	"github.com/KasumiMercury/primind-remind-scheduler/internal/app"
)

type ReminderResponse struct {
	ID                   string     `json:"id"`
	Title                string     `json:"title"`
	Text                 string     `json:"text"`
	Time                 time.Time  `json:"time"`
	OriginalTime         *time.Time `json:"original_time,omitempty"`
	RepeatQuantity       string     `json:"repeat_quantity,omitempty"`
	RepeatInterval       int        `json:"repeat_interval,omitempty"`
	Weekdays             []int      `json:"weekdays,omitempty"`
	Color                string     `json:"color,omitempty"`
	NotificationServices []string   `json:"notification_services"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

type RemindersResponse struct {
	Reminders []ReminderResponse `json:"reminders"`
	Count     int32              `json:"count"`
}

func FromReminderOutput(output app.ReminderOutput) ReminderResponse {
	return ReminderResponse{
		ID:                   output.ID,
		Title:                output.Title,
		Text:                 output.Text,
		Time:                 output.Time,
		OriginalTime:         output.OriginalTime,
		RepeatQuantity:       output.RepeatQuantity,
		RepeatInterval:       output.RepeatInterval,
		Weekdays:             output.Weekdays,
		Color:                output.Color,
		NotificationServices: output.NotificationServices,
		CreatedAt:            output.CreatedAt,
		UpdatedAt:            output.UpdatedAt,
	}
}

func FromRemindersOutput(output app.RemindersOutput) RemindersResponse {
	reminders := make([]ReminderResponse, 0, len(output.Reminders))
	for _, r := range output.Reminders {
		reminders = append(reminders, FromReminderOutput(r))
	}

	return RemindersResponse{
		Reminders: reminders,
		Count:     output.Count,
	}
}
