package domain

import "time"

// Template is a reusable title/text/services preset for creating reminders.
type Template struct {
	id        TemplateID
	userID    UserID
	title     string
	text      string
	color     Color
	services  []NotificationServiceID
	createdAt time.Time
	updatedAt time.Time
}

func NewTemplate(
	userID UserID,
	title string,
	text string,
	color Color,
	services []NotificationServiceID,
) (*Template, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}

	services, err := validateServices(services)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	return &Template{
		id:        NewTemplateID(),
		userID:    userID,
		title:     title,
		text:      text,
		color:     color,
		services:  services,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstituteTemplate(
	id TemplateID,
	userID UserID,
	title string,
	text string,
	color Color,
	services []NotificationServiceID,
	createdAt time.Time,
	updatedAt time.Time,
) *Template {
	return &Template{
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

func (t *Template) Update(title, text string, color Color, services []NotificationServiceID) error {
	if err := validateTitle(title); err != nil {
		return err
	}

	services, err := validateServices(services)
	if err != nil {
		return err
	}

	t.title = title
	t.text = text
	t.color = color
	t.services = services
	t.updatedAt = time.Now()

	return nil
}

func (t *Template) ID() TemplateID                    { return t.id }
func (t *Template) UserID() UserID                    { return t.userID }
func (t *Template) Title() string                     { return t.title }
func (t *Template) Text() string                      { return t.text }
func (t *Template) Color() Color                      { return t.color }
func (t *Template) Services() []NotificationServiceID { return t.services }
func (t *Template) CreatedAt() time.Time              { return t.createdAt }
func (t *Template) UpdatedAt() time.Time              { return t.updatedAt }
