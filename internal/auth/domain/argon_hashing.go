package domain

import (
	"errors"
	"fmt"

	"github.com/alexedwards/argon2id"
)

var DefaultArgonParams = &argon2id.Params{
	Memory:      19 * 1024, // 19 MB
	Iterations:  2,
	Parallelism: 1,
	SaltLength:  16,
	KeyLength:   32,
}

type ArgonHasherOption func(ph *ArgonPasswordHasher)

func WithArgonParams(params *argon2id.Params) ArgonHasherOption {
	return func(ph *ArgonPasswordHasher) {
		ph.params = params
	}
}

type ArgonPasswordHasher struct {
	params *argon2id.Params
}

func NewArgonPasswordHasher(opts ...ArgonHasherOption) *ArgonPasswordHasher {
	ph := &ArgonPasswordHasher{
		params: DefaultArgonParams,
	}

	for _, opt := range opts {
		opt(ph)
	}

	return ph
}

func (ph *ArgonPasswordHasher) HashPassword(password string) (string, error) {
	hash, err := argon2id.CreateHash(password, ph.params)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return hash, nil
}

// VerifyPassword treats a stored hash it cannot decode as a mismatch rather than a failure.
func (ph *ArgonPasswordHasher) VerifyPassword(password, hashedPassword string) (bool, error) {
	match, err := argon2id.ComparePasswordAndHash(password, hashedPassword)
	if errors.Is(err, argon2id.ErrInvalidHash) || errors.Is(err, argon2id.ErrIncompatibleVersion) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to verify password: %w", err)
	}

	return match, nil
}
