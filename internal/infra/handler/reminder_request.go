package handler

import (
	"time"

	"github.com/KasumiMercury/primind-remind-scheduler/internal/app"
)

// RepeatRequest is either {quantity, interval} or {weekdays}; an empty object
// clears repetition.
type RepeatRequest struct {
	Quantity *string `json:"quantity" binding:"omitempty,oneof=years months weeks days hours minutes"`
	Interval *int    `json:"interval" binding:"omitempty,min=1,max=10000"`
	Weekdays []int   `json:"weekdays" binding:"omitempty,dive,min=0,max=6"`
}

func (r *RepeatRequest) toInput() app.RepeatInput {
	if r == nil {
		return app.RepeatInput{}
	}

	return app.RepeatInput{
		Quantity: r.Quantity,
		Interval: r.Interval,
		Weekdays: r.Weekdays,
	}
}

type CreateReminderRequest struct {
	Title                string         `json:"title" binding:"required"`
	Text                 string         `json:"text"`
	Time                 time.Time      `json:"time" binding:"required"`
	Repeat               *RepeatRequest `json:"repeat"`
	Color                string         `json:"color"`
	NotificationServices []string       `json:"notification_services" binding:"required,min=1,dive,uuid"`
}

type UpdateReminderRequest struct {
	Title                *string        `json:"title"`
	Text                 *string        `json:"text"`
	Time                 *time.Time     `json:"time"`
	Repeat               *RepeatRequest `json:"repeat"`
	Color                *string        `json:"color"`
	NotificationServices []string       `json:"notification_services" binding:"omitempty,min=1,dive,uuid"`
}

type TestReminderRequest struct {
	Title                string   `json:"title" binding:"required"`
	Text                 string   `json:"text"`
	NotificationServices []string `json:"notification_services" binding:"required,min=1,dive,uuid"`
}

type ListRequest struct {
	SortBy string `form:"sort_by"`
}

type SearchRequest struct {
	Query  string `form:"query" binding:"required"`
	SortBy string `form:"sort_by"`
}
