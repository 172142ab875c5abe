package domain

import "unicode/utf8"

const maxTitleLength = 255

func validateTitle(title string) error {
	if title == "" {
		return ErrEmptyTitle
	}

	if utf8.RuneCountInString(title) > maxTitleLength {
		return ErrTitleTooLong
	}

	return nil
}

func validateServices(services []NotificationServiceID) ([]NotificationServiceID, error) {
	if len(services) == 0 {
		return nil, ErrNoServices
	}

	unique := make([]NotificationServiceID, 0, len(services))
	seen := make(map[NotificationServiceID]struct{}, len(services))

	for _, s := range services {
		if _, ok := seen[s]; ok {
			continue
		}

		seen[s] = struct{}{}
		unique = append(unique, s)
	}

	return unique, nil
}
