package auth

import "golang.org/x/crypto/bcrypt"

// HashCost is the bcrypt work factor for stored credentials.
const HashCost = 10

// Hasher produces and checks salted one-way password hashes. The salt and
// cost factor are embedded in the hash itself, so Verify needs no extra state.
type Hasher struct {
	cost int
}

func NewHasher() *Hasher {
	return &Hasher{cost: HashCost}
}

// Hash returns the bcrypt hash of the plaintext.
func (h *Hasher) Hash(plaintext string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether the plaintext matches the stored hash.
func (h *Hasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
