package security

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"principal-passwd/internal/app/ports"
)

const bcryptPrefix = "{BCRYPT}"

// bareBcryptPattern recognizes untagged hashes in the native $2a$ form
// (version marker, 2-digit cost, 53 characters of salt+digest) as produced
// by third-party tools, so previously migrated data interoperates.
var bareBcryptPattern = regexp.MustCompile(`^\$2a\$[0-9]{2}\$[./A-Za-z0-9]{53}`)

// BCryptManager implements the {BCRYPT} adaptive-cost scheme.
//
// The underlying primitive only uses the first 72 bytes of the password
// when computing the hash.
type BCryptManager struct {
	cost int
}

// Enforce compile-time conformance to the interface
var _ ports.PasswordManager = (*BCryptManager)(nil)

// NewBCryptManager returns a manager hashing new credentials with the given
// cost factor; 0 selects the library default.
func NewBCryptManager(cost int) (*BCryptManager, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	return &BCryptManager{cost: cost}, nil
}

// Encode hashes password behind the {BCRYPT} tag. The salt argument is
// ignored: the primitive generates a scheme-native salt, embedding it and
// the cost factor in the output.
func (m *BCryptManager) Encode(password string, _ []byte) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), m.cost)
	if err != nil {
		return "", err
	}
	return bcryptPrefix + string(hashed), nil
}

func (m *BCryptManager) Check(encoded, password string) bool {
	if !m.Match(encoded) {
		return false
	}
	payload := strings.TrimPrefix(encoded, bcryptPrefix)
	// A malformed salt under a recognized tag is a mismatch, not an error.
	return bcrypt.CompareHashAndPassword([]byte(payload), []byte(password)) == nil
}

func (m *BCryptManager) Match(encoded string) bool {
	return strings.HasPrefix(encoded, bcryptPrefix) ||
		bareBcryptPattern.MatchString(encoded)
}
