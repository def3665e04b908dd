package service

import (
	"golang.org/x/crypto/bcrypt"
)

// PlaintextCredentials stores secrets as given. It supports password
// recovery and admin credential disclosure.
type PlaintextCredentials struct{}

func (PlaintextCredentials) Seal(secret string) (string, error) { return secret, nil }

func (PlaintextCredentials) Verify(stored, candidate string) bool { return stored == candidate }

func (PlaintextCredentials) Reveal(stored string) (string, bool) { return stored, true }

// BcryptCredentials stores bcrypt hashes. Secrets cannot be revealed, so
// recovery and disclosure report ErrRecoveryUnsupported.
type BcryptCredentials struct {
	Cost int
}

func (b BcryptCredentials) Seal(secret string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (BcryptCredentials) Verify(stored, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(candidate)) == nil
}

func (BcryptCredentials) Reveal(string) (string, bool) { return "", false }
