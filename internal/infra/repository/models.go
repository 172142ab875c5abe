package repository

import (
	"database/sql"
	"strings"
	"time"

	"github.com/KasumiMercury/primind-remind-scheduler/internal/domain"
)

type UserModel struct {
	ID           string    `gorm:"column:id;type:uuid;primaryKey"`
	Username     string    `gorm:"column:username;type:varchar(64);not null;uniqueIndex:idx_users_username"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255);not null"`
	CreatedAt    time.Time `gorm:"column:created_at;type:timestamptz;not null"`
}

func (UserModel) TableName() string {
	return "users"
}

type NotificationServiceModel struct {
	ID        string    `gorm:"column:id;type:uuid;primaryKey"`
	UserID    string    `gorm:"column:user_id;type:uuid;not null;index:idx_notification_services_user_id"`
	Title     string    `gorm:"column:title;type:varchar(255);not null"`
	URL       string    `gorm:"column:url;type:text;not null"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;not null"`
}

func (NotificationServiceModel) TableName() string {
	return "notification_services"
}

// ReminderModel stores due times as unix seconds so the fire path can match
// them exactly.
type ReminderModel struct {
	ID                   string                     `gorm:"column:id;type:uuid;primaryKey"`
	UserID               string                     `gorm:"column:user_id;type:uuid;not null;index:idx_reminders_user_id"`
	Title                string                     `gorm:"column:title;type:varchar(255);not null"`
	Text                 string                     `gorm:"column:text;type:text;not null;default:''"`
	Time                 int64                      `gorm:"column:time;type:bigint;not null;index:idx_reminders_time"`
	OriginalTime         sql.NullInt64              `gorm:"column:original_time;type:bigint"`
	RepeatQuantity       sql.NullString             `gorm:"column:repeat_quantity;type:varchar(16)"`
	RepeatInterval       sql.NullInt32              `gorm:"column:repeat_interval;type:integer"`
	Weekdays             sql.NullString             `gorm:"column:weekdays;type:varchar(16)"`
	Color                string                     `gorm:"column:color;type:varchar(7);not null;default:''"`
	NotificationServices []NotificationServiceModel `gorm:"many2many:reminder_services;joinForeignKey:ReminderID;joinReferences:NotificationServiceID"`
	CreatedAt            time.Time                  `gorm:"column:created_at;type:timestamptz;not null"`
	UpdatedAt            time.Time                  `gorm:"column:updated_at;type:timestamptz;not null"`
}

func (ReminderModel) TableName() string {
	return "reminders"
}

type StaticReminderModel struct {
	ID                   string                     `gorm:"column:id;type:uuid;primaryKey"`
	UserID               string                     `gorm:"column:user_id;type:uuid;not null;index:idx_static_reminders_user_id"`
	Title                string                     `gorm:"column:title;type:varchar(255);not null"`
	Text                 string                     `gorm:"column:text;type:text;not null;default:''"`
	Color                string                     `gorm:"column:color;type:varchar(7);not null;default:''"`
	NotificationServices []NotificationServiceModel `gorm:"many2many:static_reminder_services;joinForeignKey:StaticReminderID;joinReferences:NotificationServiceID"`
	CreatedAt            time.Time                  `gorm:"column:created_at;type:timestamptz;not null"`
	UpdatedAt            time.Time                  `gorm:"column:updated_at;type:timestamptz;not null"`
}

func (StaticReminderModel) TableName() string {
	return "static_reminders"
}

type TemplateModel struct {
	ID                   string                     `gorm:"column:id;type:uuid;primaryKey"`
	UserID               string                     `gorm:"column:user_id;type:uuid;not null;index:idx_templates_user_id"`
	Title                string                     `gorm:"column:title;type:varchar(255);not null"`
	Text                 string                     `gorm:"column:text;type:text;not null;default:''"`
	Color                string                     `gorm:"column:color;type:varchar(7);not null;default:''"`
	NotificationServices []NotificationServiceModel `gorm:"many2many:template_services;joinForeignKey:TemplateID;joinReferences:NotificationServiceID"`
	CreatedAt            time.Time                  `gorm:"column:created_at;type:timestamptz;not null"`
	UpdatedAt            time.Time                  `gorm:"column:updated_at;type:timestamptz;not null"`
}

func (TemplateModel) TableName() string {
	return "templates"
}

// Models lists every table for AutoMigrate.
func Models() []any {
	return []any{
		&UserModel{},
		&NotificationServiceModel{},
		&ReminderModel{},
		&StaticReminderModel{},
		&TemplateModel{},
	}
}

func serviceRefs(ids []domain.NotificationServiceID) []NotificationServiceModel {
	refs := make([]NotificationServiceModel, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, NotificationServiceModel{ID: id.String()})
	}

	return refs
}

func serviceIDs(models []NotificationServiceModel) ([]domain.NotificationServiceID, error) {
	ids := make([]domain.NotificationServiceID, 0, len(models))
	for _, m := range models {
		id, err := domain.NotificationServiceIDFromString(m.ID)
		if err != nil {
			return nil, err
		}

		ids = append(ids, id)
	}

	return ids, nil
}

func serviceURLs(models []NotificationServiceModel) []string {
	urls := make([]string, 0, len(models))
	for _, m := range models {
		urls = append(urls, m.URL)
	}

	return urls
}

func fromUnix(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePattern(query string) string {
	return "%" + likeEscaper.Replace(query) + "%"
}

// serviceLink describes one owner of notification_services rows through a
// join table.
type serviceLink struct {
	joinTable   string
	ownerColumn string
	ownerTable  string
	kind        string
}

var serviceLinks = []serviceLink{
	{joinTable: "reminder_services", ownerColumn: "reminder_id", ownerTable: "reminders", kind: "reminder"},
	{joinTable: "static_reminder_services", ownerColumn: "static_reminder_id", ownerTable: "static_reminders", kind: "static reminder"},
	{joinTable: "template_services", ownerColumn: "template_id", ownerTable: "templates", kind: "template"},
}
