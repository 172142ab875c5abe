package domain

import (
	"github.com/google/uuid"
)

type UserID struct {
	value uuid.UUID
}

func NewUserID() UserID {
	return UserID{value: uuid.Must(uuid.NewV7())}
}

// UserIDFromString only accepts UUIDv7 values; account ids are minted with NewUserID.
func UserIDFromString(s string) (UserID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UserID{}, ErrInvalidUserID
	}

	return UserIDFromUUID(id)
}

func UserIDFromUUID(id uuid.UUID) (UserID, error) {
	if id.Version() != 7 {
		return UserID{}, ErrInvalidUserID
	}

	return UserID{value: id}, nil
}

func (u UserID) String() string {
	return u.value.String()
}

func (u UserID) IsZero() bool {
	return u.value == uuid.Nil
}

func (u UserID) Equals(other UserID) bool {
	return u.value == other.value
}
