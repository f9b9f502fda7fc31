// Package utils provides password hashing and session token helpers.
package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	pbkdf2KeyLen  = 32
	pbkdf2SaltLen = 16
)

// HashPassword derives a PBKDF2-SHA256 hash with a fresh random salt and
// returns it in the form "pbkdf2:sha256:<iterations>$<salt>$<hash>", the
// same self-describing format the stored user records use.
func HashPassword(plain string, iterations int) (string, error) {
	saltBytes := make([]byte, pbkdf2SaltLen)
	if _, err := rand.Read(saltBytes); err != nil {
		return "", err
	}
	salt := hex.EncodeToString(saltBytes)
	key := pbkdf2.Key([]byte(plain), []byte(salt), iterations, pbkdf2KeyLen, sha256.New)
	return fmt.Sprintf("pbkdf2:sha256:%d$%s$%s", iterations, salt, hex.EncodeToString(key)), nil
}

// VerifyPassword checks a plain password against a stored hash string using
// a constant-time comparison. Malformed hashes verify as false.
func VerifyPassword(stored, plain string) bool {
	method, iterations, salt, want, err := parseHash(stored)
	if err != nil || method != "pbkdf2:sha256" {
		return false
	}
	got := pbkdf2.Key([]byte(plain), []byte(salt), iterations, len(want), sha256.New)
	return subtle.ConstantTimeCompare(got, want) == 1
}

// parseHash splits "pbkdf2:sha256:<iterations>$<salt>$<hexhash>".
func parseHash(stored string) (method string, iterations int, salt string, hash []byte, err error) {
	parts := strings.SplitN(stored, "$", 3)
	if len(parts) != 3 {
		return "", 0, "", nil, errors.New("malformed password hash")
	}
	prefix := parts[0]
	idx := strings.LastIndex(prefix, ":")
	if idx < 0 {
		return "", 0, "", nil, errors.New("malformed password hash")
	}
	iterations, err = strconv.Atoi(prefix[idx+1:])
	if err != nil || iterations < 1 {
		return "", 0, "", nil, errors.New("malformed password hash")
	}
	hash, err = hex.DecodeString(parts[2])
	if err != nil || len(hash) == 0 {
		return "", 0, "", nil, errors.New("malformed password hash")
	}
	return prefix[:idx], iterations, parts[1], hash, nil
}
