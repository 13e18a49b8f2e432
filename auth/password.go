package auth

import "golang.org/x/crypto/bcrypt"

// PasswordCost is the bcrypt work factor used for all stored passwords.
const PasswordCost = 12

// HashPassword hashes a plaintext password with bcrypt. bcrypt salts
// internally, so two calls with the same input produce different hashes.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), PasswordCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plaintext matches the stored bcrypt hash.
// bcrypt's own comparison is constant-time over the digest.
func CheckPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
