package domain

import "time"

// StaticReminder has no due time; it is only sent when triggered by its owner.
type StaticReminder struct {
	id        StaticReminderID
	userID    UserID
	title     string
	text      string
	color     Color
	services  []NotificationServiceID
	createdAt time.Time
	updatedAt time.Time
}

func NewStaticReminder(
	userID UserID,
	title string,
	text string,
	color Color,
	services []NotificationServiceID,
) (*StaticReminder, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}

	services, err := validateServices(services)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	return &StaticReminder{
		id:        NewStaticReminderID(),
		userID:    userID,
		title:     title,
		text:      text,
		color:     color,
		services:  services,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstituteStaticReminder(
	id StaticReminderID,
	userID UserID,
	title string,
	text string,
	color Color,
	services []NotificationServiceID,
	createdAt time.Time,
	updatedAt time.Time,
) *StaticReminder {
	return &StaticReminder{
		id:        id,
		userID:    userID,
		title:     title,
		text:      text,
		color:     color,
		services:  services,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (s *StaticReminder) Update(title, text string, color Color, services []NotificationServiceID) error {
	if err := validateTitle(title); err != nil {
		return err
	}

	services, err := validateServices(services)
	if err != nil {
		return err
	}

	s.title = title
	s.text = text
	s.color = color
	s.services = services
	s.updatedAt = time.Now()

	return nil
}

func (s *StaticReminder) ID() StaticReminderID              { return s.id }
func (s *StaticReminder) UserID() UserID                    { return s.userID }
func (s *StaticReminder) Title() string                     { return s.title }
func (s *StaticReminder) Text() string                      { return s.text }
func (s *StaticReminder) Color() Color                      { return s.color }
func (s *StaticReminder) Services() []NotificationServiceID { return s.services }
func (s *StaticReminder) CreatedAt() time.Time              { return s.createdAt }
func (s *StaticReminder) UpdatedAt() time.Time              { return s.updatedAt }
