package services

import "golang.org/x/crypto/bcrypt"

// CredentialHasher hashes and verifies account passwords.
type CredentialHasher interface {
	Hash(plaintext string) (string, error)
	Verify(digest string, plaintext string) bool
}

// BcryptHasher implements CredentialHasher with bcrypt at the default cost.
type BcryptHasher struct{}

func (BcryptHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

func (BcryptHasher) Verify(digest string, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
