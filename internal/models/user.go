package models

import "time"

// Gender values accepted for a user record.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// Username length bounds, enforced at the storage boundary.
const (
	UsernameMinLen = 4
	UsernameMaxLen = 20
)

// User represents a user document in the users collection (internal use only).
// PasswordHash always holds a bcrypt hash, never the plaintext.
type User struct {
	ID           string    `bson:"_id" json:"id"`
	Username     string    `bson:"username" json:"username"`
	PasswordHash string    `bson:"password" json:"-"`
	FullName     string    `bson:"fullName" json:"fullName"`
	Gender       string    `bson:"gender" json:"gender"`
	DateOfBirth  time.Time `bson:"dateOfBirth" json:"dateOfBirth"`
	Country      string    `bson:"country" json:"country"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// Public returns the response-safe projection of the record.
func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:          u.ID,
		Username:    u.Username,
		FullName:    u.FullName,
		Gender:      u.Gender,
		DateOfBirth: u.DateOfBirth,
		Country:     u.Country,
		CreatedAt:   u.CreatedAt,
	}
}

// PublicUser is a user profile with the credential material stripped.
type PublicUser struct {
	ID          string    `bson:"_id" json:"id"`
	Username    string    `bson:"username" json:"username"`
	FullName    string    `bson:"fullName" json:"fullName"`
	Gender      string    `bson:"gender" json:"gender"`
	DateOfBirth time.Time `bson:"dateOfBirth" json:"dateOfBirth"`
	Country     string    `bson:"country" json:"country"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
