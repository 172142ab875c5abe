package domain

import (
	"regexp"
	"strings"
	"time"
)

var schemePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*$`)

// NotificationService is a named delivery target owned by a user. The URL
// scheme selects the sender (tgram://, twilio://, json://, ...).
type NotificationService struct {
	id        NotificationServiceID
	userID    UserID
	title     string
	url       string
	createdAt time.Time
	updatedAt time.Time
}

func NewNotificationService(userID UserID, title, rawURL string) (*NotificationService, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}

	if err := ValidateTargetURL(rawURL); err != nil {
		return nil, err
	}

	now := time.Now()

	return &NotificationService{
		id:        NewNotificationServiceID(),
		userID:    userID,
		title:     title,
		url:       rawURL,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstituteNotificationService(
	id NotificationServiceID,
	userID UserID,
	title string,
	rawURL string,
	createdAt time.Time,
	updatedAt time.Time,
) *NotificationService {
	return &NotificationService{
		id:        id,
		userID:    userID,
		title:     title,
		url:       rawURL,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (n *NotificationService) Update(title, rawURL string) error {
	if err := validateTitle(title); err != nil {
		return err
	}

	if err := ValidateTargetURL(rawURL); err != nil {
		return err
	}

	n.title = title
	n.url = rawURL
	n.updatedAt = time.Now()

	return nil
}

func (n *NotificationService) ID() NotificationServiceID {
	return n.id
}

func (n *NotificationService) UserID() UserID {
	return n.userID
}

func (n *NotificationService) Title() string {
	return n.title
}

func (n *NotificationService) URL() string {
	return n.url
}

func (n *NotificationService) CreatedAt() time.Time {
	return n.createdAt
}

func (n *NotificationService) UpdatedAt() time.Time {
	return n.updatedAt
}

// ValidateTargetURL only checks the scheme://target shape. Bot tokens such as
// tgram://123:abc/42 are not valid RFC 3986 hosts, so url.Parse is not used.
func ValidateTargetURL(rawURL string) error {
	scheme, rest, ok := strings.Cut(rawURL, "://")
	if !ok || rest == "" || !schemePattern.MatchString(scheme) {
		return ErrInvalidURL
	}

	return nil
}
