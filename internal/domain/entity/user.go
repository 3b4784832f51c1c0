// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Gender is the self-declared gender stored on a user profile.
type Gender string

const (
	GenderFemale      Gender = "Mujer"
	GenderMale        Gender = "Hombre"
	GenderUnspecified Gender = "Sin Especificar"
)

// Genders lists every accepted gender value.
var Genders = []Gender{GenderFemale, GenderMale, GenderUnspecified}

// IsValid reports whether g is one of the accepted values.
func (g Gender) IsValid() bool {
	for _, candidate := range Genders {
		if g == candidate {
			return true
		}
	}

	return false
}

// User is the single account entity. Identity and profile live together.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email        string    // Lower-cased login identifier, unique.
	PasswordHash string    // bcrypt hash, never serialized.
	FirstName    string
	LastName     string
	BirthDate    time.Time
	Gender       Gender
	Phone        string // Unique across users.
	PhotoURL     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName joins first and last name.
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}

	return u.FirstName + " " + u.LastName
}
