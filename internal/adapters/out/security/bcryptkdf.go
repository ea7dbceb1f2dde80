package security

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dchest/bcrypt_pbkdf"

	"principal-passwd/internal/app/ports"
)

const (
	bcryptKDFPrefix  = "{BCRYPTKDF}"
	bcryptKDFSaltLen = 16

	// MinBCryptKDFRounds is the smallest meaningfully secure round count.
	MinBCryptKDFRounds = 50

	defaultBCryptKDFRounds = 1024
	defaultBCryptKDFKeyLen = 32
	maxBCryptKDFKeyLen     = 512
)

// BCryptKDFManager implements the {BCRYPTKDF} scheme: bcrypt-based key
// derivation with a tunable round count. Wire format is
//
//	{BCRYPTKDF}<rounds hex>$<urlsafe-b64 salt>$<urlsafe-b64 key>
//
// Rounds, salt and key length are embedded in the credential and Check
// re-derives with exactly those parameters, so the configured round count
// can be raised for new credentials while old ones keep verifying.
type BCryptKDFManager struct {
	rr     io.Reader
	rounds int
	keyLen int
}

// Enforce compile-time conformance to the interface
var _ ports.PasswordManager = (*BCryptKDFManager)(nil)

// NewBCryptKDFManager returns a manager deriving keyLen-byte keys with the
// given number of rounds for new credentials; 0 selects the defaults
// (1024 rounds, 32 bytes).
func NewBCryptKDFManager(rounds, keyLen int) (*BCryptKDFManager, error) {
	if rounds == 0 {
		rounds = defaultBCryptKDFRounds
	}
	if keyLen == 0 {
		keyLen = defaultBCryptKDFKeyLen
	}
	if rounds < MinBCryptKDFRounds {
		return nil, fmt.Errorf("bcryptkdf rounds must be at least %d", MinBCryptKDFRounds)
	}
	if keyLen < 1 || keyLen > maxBCryptKDFKeyLen {
		return nil, fmt.Errorf("bcryptkdf key length must be between 1 and %d", maxBCryptKDFKeyLen)
	}
	return &BCryptKDFManager{rr: rand.Reader, rounds: rounds, keyLen: keyLen}, nil
}

func (m *BCryptKDFManager) Encode(password string, salt []byte) (string, error) {
	if salt == nil {
		var err error
		if salt, err = randomBytes(bcryptKDFSaltLen, m.rr); err != nil {
			return "", err
		}
	}
	return m.encode(password, salt, m.rounds, m.keyLen)
}

func (m *BCryptKDFManager) encode(password string, salt []byte, rounds, keyLen int) (string, error) {
	key, err := bcrypt_pbkdf.Key([]byte(password), salt, rounds, keyLen)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%x$%s$%s", bcryptKDFPrefix, rounds,
		base64.URLEncoding.EncodeToString(salt),
		base64.URLEncoding.EncodeToString(key)), nil
}

func (m *BCryptKDFManager) Check(encoded, password string) bool {
	if !m.Match(encoded) {
		return false
	}
	parts := strings.Split(encoded[len(bcryptKDFPrefix):], "$")
	if len(parts) != 3 {
		return false
	}
	rounds, err := strconv.ParseUint(parts[0], 16, 31)
	if err != nil {
		return false
	}
	salt, err := base64.URLEncoding.DecodeString(parts[1])
	if err != nil {
		return false
	}
	key, err := base64.URLEncoding.DecodeString(parts[2])
	if err != nil || len(key) == 0 {
		return false
	}
	// Re-derive with the embedded parameters, not the configured ones.
	fresh, err := m.encode(password, salt, int(rounds), len(key))
	if err != nil {
		return false
	}
	return stringsEq(encoded, fresh)
}

func (m *BCryptKDFManager) Match(encoded string) bool {
	return strings.HasPrefix(encoded, bcryptKDFPrefix)
}
