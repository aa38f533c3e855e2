package models

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User is the owner of all other resources. Every query for categories and
// expenses is scoped to exactly one user.
type User struct {
	DefaultModel
	Email        string `gorm:"uniqueIndex"`
	Name         string
	PasswordHash string `json:"-"`
}

// BeforeSave normalizes the email address so that lookups are
// case-insensitive.
func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.Name = strings.TrimSpace(u.Name)

	return nil
}

// SetPassword hashes the cleartext password with bcrypt and stores the hash.
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether the cleartext password matches the stored hash.
func (u User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
