package helpers

import "golang.org/x/crypto/bcrypt"

// hashCost is the bcrypt work factor. Kept at 10 to match the hashes already
// stored by the service this API replaces.
const hashCost = 10

// HashPassword hashes the plain text password using bcrypt with a random salt
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), hashCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CompareHashAndPassword compares a bcrypt hash with a plain password
func CompareHashAndPassword(hash string, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
