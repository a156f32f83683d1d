// Package password wraps the one-way credential hash used for every
// stored secret. Plaintext never leaves this boundary.
package password

import "golang.org/x/crypto/bcrypt"

// Cost mirrors the 10 rounds the rest of the platform has always used;
// existing hashes in both backends were produced with it.
const Cost = 10

func Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether plain reproduces hash. The reason for a failure
// is deliberately not exposed to callers.
func Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
