// Package cryptox implements one-way password hashing for TweetHeure accounts.
//
// Two algorithms are supported. bcrypt is the default and matches hashes
// written by earlier data files. argon2id hashes are stored as PHC strings:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<salt>$<key>
//
// Verification dispatches on the stored hash prefix, so changing the
// configured algorithm never locks out existing accounts.
package cryptox

import (
	"bytes"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/tweetheure/internal/common"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

const (
	AlgorithmBcrypt   = "bcrypt"
	AlgorithmArgon2id = "argon2id"
)

const (
	argon2Time    = 1
	argon2Memory  = 64 * 1024
	argon2Threads = 4
	argon2KeyLen  = 32
	argon2SaltLen = 16

	// upper bounds accepted when decoding a stored argon2id hash
	maxArgon2Memory  = 1024 * 1024
	maxArgon2Time    = 16
	maxArgon2KeyLen  = 64
	argon2HashPrefix = "$argon2id$"
)

// PasswordHasher hashes passwords and verifies them against stored hashes.
//
// Hash must use a fresh random salt on every call. Verify must return false,
// never panic, for a hash it cannot parse.
type PasswordHasher interface {
	Hash(password []byte) ([]byte, error)
	Verify(password, hash []byte) bool
}

// NewPasswordHasher returns the hasher for algorithm. A non-positive
// bcryptCost falls back to bcrypt.DefaultCost.
func NewPasswordHasher(algorithm string, bcryptCost int) (PasswordHasher, error) {
	switch algorithm {
	case "", AlgorithmBcrypt:
		if bcryptCost <= 0 {
			bcryptCost = bcrypt.DefaultCost
		}
		if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
			return nil, fmt.Errorf("bcrypt cost %d out of range", bcryptCost)
		}
		return &BcryptHasher{cost: bcryptCost}, nil
	case AlgorithmArgon2id:
		return &Argon2idHasher{}, nil
	default:
		return nil, fmt.Errorf("unknown hash algorithm %q", algorithm)
	}
}

// VerifyPassword reports whether password produced hash, for any supported
// algorithm.
func VerifyPassword(password, hash []byte) bool {
	switch {
	case bytes.HasPrefix(hash, []byte(argon2HashPrefix)):
		return verifyArgon2id(password, hash)
	case isBcryptHash(hash):
		return bcrypt.CompareHashAndPassword(hash, password) == nil
	default:
		return false
	}
}

func isBcryptHash(hash []byte) bool {
	for _, p := range []string{"$2a$", "$2b$", "$2y$"} {
		if bytes.HasPrefix(hash, []byte(p)) {
			return true
		}
	}
	return false
}

type BcryptHasher struct {
	cost int
}

func (h *BcryptHasher) Hash(password []byte) ([]byte, error) {
	hash, err := bcrypt.GenerateFromPassword(password, h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, common.ErrPasswordTooLong
	}
	if err != nil {
		return nil, err
	}
	return hash, nil
}

func (h *BcryptHasher) Verify(password, hash []byte) bool {
	return VerifyPassword(password, hash)
}

type Argon2idHasher struct{}

func (h *Argon2idHasher) Hash(password []byte) ([]byte, error) {
	salt := common.GenerateRandByteArray(argon2SaltLen)
	key := argon2.IDKey(password, salt, argon2Time, argon2Memory, argon2Threads, argon2KeyLen)

	enc := base64.RawStdEncoding
	s := fmt.Sprintf("%sv=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2HashPrefix, argon2.Version, argon2Memory, argon2Time, argon2Threads,
		enc.EncodeToString(salt), enc.EncodeToString(key))
	return []byte(s), nil
}

func (h *Argon2idHasher) Verify(password, hash []byte) bool {
	return VerifyPassword(password, hash)
}

func verifyArgon2id(password, hash []byte) bool {
	parts := strings.Split(string(hash), "$")
	// "", "argon2id", "v=19", "m=..,t=..,p=..", salt, key
	if len(parts) != 6 {
		return false
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return false
	}

	var memory, time uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return false
	}
	if memory == 0 || memory > maxArgon2Memory || time == 0 || time > maxArgon2Time || threads == 0 {
		return false
	}

	enc := base64.RawStdEncoding
	salt, err := enc.DecodeString(parts[4])
	if err != nil || len(salt) == 0 {
		return false
	}
	key, err := enc.DecodeString(parts[5])
	if err != nil || len(key) == 0 || len(key) > maxArgon2KeyLen {
		return false
	}

	candidate := argon2.IDKey(password, salt, time, memory, threads, uint32(len(key)))
	return subtle.ConstantTimeCompare(key, candidate) == 1
}
