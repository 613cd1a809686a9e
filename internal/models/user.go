package models

import "golang.org/x/crypto/bcrypt"

type User struct {
	UserID          int      `json:"user_id"`
	Email           string   `json:"email"`
	Username        string   `json:"username"`
	HashedPassword  string   `json:"-"`
	DefaultCurrency Currency `json:"default_currency"`
}

// SetPassword hashes the plaintext password with bcrypt and stores the hash.
func (u *User) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.HashedPassword = string(hash)
	return nil
}

// CheckPassword reports whether plain matches the stored hash.
func (u *User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.HashedPassword), []byte(plain)) == nil
}
