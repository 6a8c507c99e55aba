package utils

import (
	"errors"
	"fmt"

	gopass "github.com/nbutton23/zxcvbn-go"
	"golang.org/x/crypto/bcrypt"
)

var ErrWeakPassword = errors.New("password is not strong enough")

// Hash hashes password with bcrypt at the given cost.
func Hash(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// CompareHash reports whether password matches the bcrypt hash.
func CompareHash(hashed, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}

// CheckPasswordStrength rejects passwords whose zxcvbn score is below minScore.
// userInputs are penalized when they appear in the password.
func CheckPasswordStrength(password string, minScore int, userInputs ...string) error {
	if minScore <= 0 {
		return nil
	}
	strength := gopass.PasswordStrength(password, userInputs)
	if strength.Score < minScore {
		return ErrWeakPassword
	}
	return nil
}
