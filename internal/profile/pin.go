package profile

import (
	"context"
	"errors"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

const pinHashKey = "teacher_pin_hash"

// DefaultPIN protects the teacher dashboard until a custom PIN is set.
const DefaultPIN = "0000"

// ErrBadPIN is returned when a PIN is not exactly four digits.
var ErrBadPIN = errors.New("pin must be four digits")

// ErrWrongPIN is returned when verification fails.
var ErrWrongPIN = errors.New("wrong pin")

// EnsurePIN installs the default teacher PIN if none is stored yet.
func (s *Service) EnsurePIN(ctx context.Context) error {
	_, ok, err := s.settings.Get(ctx, "", pinHashKey)
	if err != nil || ok {
		return err
	}
	return s.SetPIN(ctx, DefaultPIN)
}

// SetPIN stores a bcrypt hash of the four-digit teacher PIN app-wide.
func (s *Service) SetPIN(ctx context.Context, pin string) error {
	if !validPIN(pin) {
		return ErrBadPIN
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.settings.Set(ctx, "", pinHashKey, string(hash))
}

// VerifyPIN checks a PIN entry against the stored hash.
func (s *Service) VerifyPIN(ctx context.Context, pin string) error {
	hash, ok, err := s.settings.Get(ctx, "", pinHashKey)
	if err != nil {
		return err
	}
	if !ok {
		return ErrWrongPIN
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin)) != nil {
		return ErrWrongPIN
	}
	return nil
}

func validPIN(pin string) bool {
	if len(pin) != 4 {
		return false
	}
	for _, r := range pin {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
