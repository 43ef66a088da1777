package utils // package utils provides helper functions for token creation and hashing

import (
	"crypto/rand"   // secure random number generation for salts
	"crypto/sha512" // digest used by the key derivation
	"crypto/subtle" // constant-time comparison
	"encoding/hex"  // hex encoding for salts and derived hashes

	"golang.org/x/crypto/pbkdf2" // slow salted key derivation
)

// Password hashing parameters. These are part of the stored-credential
// format: login re-derives the hash from the stored salt and the supplied
// password, so changing any of them invalidates every existing account.
const (
	saltBytes  = 16
	hashIters  = 1000
	hashKeyLen = 64
)

// NewSalt returns a fresh hex-encoded random salt for one user.
func NewSalt() (string, error) {
	return randomHex(saltBytes)
}

// HashPassword derives a hex-encoded PBKDF2-SHA512 hash from a password and
// a hex-encoded salt. The salt string itself (not its decoded bytes) feeds
// the derivation, and the same (password, salt) pair always yields the same
// output.
func HashPassword(plain, salt string) string {
	key := pbkdf2.Key([]byte(plain), []byte(salt), hashIters, hashKeyLen, sha512.New)
	return hex.EncodeToString(key)
}

// VerifyPassword re-derives the hash for a login attempt and compares it
// against the stored one in constant time.
func VerifyPassword(hash, plain, salt string) bool {
	return subtle.ConstantTimeCompare([]byte(hash), []byte(HashPassword(plain, salt))) == 1
}

// randomHex returns a hex-encoded string generated from n bytes of
// cryptographically secure random data.
func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
