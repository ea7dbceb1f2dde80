package security

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"

	"github.com/GehirnInc/crypt"
	"github.com/GehirnInc/crypt/md5_crypt"
	"github.com/GehirnInc/crypt/sha256_crypt"
	"github.com/GehirnInc/crypt/sha512_crypt"
	descrypt "github.com/digitive/crypt"

	"principal-passwd/internal/app/ports"
)

const cryptPrefix = "{CRYPT}"

// CryptManager implements the {CRYPT} scheme over the traditional DES-based
// crypt(3) one-way function with a 2-character salt.
//
// crypt only examines the first 8 bytes of the password, so any candidate
// sharing an 8-byte prefix with the real password verifies. That is an
// inherent, documented property of the scheme, kept for compatibility with
// historical data, not a bug to fix.
//
// Payloads in modular-crypt form ($1$, $5$, $6$) are verified through the
// matching glibc crypter, so {CRYPT} values produced by glibc-based tools
// (e.g. openssl passwd -1/-5/-6) interoperate. New output is always the
// classic DES form.
type CryptManager struct {
	rr io.Reader
}

// Enforce compile-time conformance to the interface
var _ ports.PasswordManager = (*CryptManager)(nil)

func NewCryptManager() *CryptManager {
	return &CryptManager{rr: rand.Reader}
}

func (m *CryptManager) Encode(password string, salt []byte) (string, error) {
	if salt == nil {
		s, err := randomSalt(2, m.rr)
		if err != nil {
			return "", err
		}
		salt = []byte(s)
	}
	if len(salt) != 2 || !isCryptSalt(salt) {
		return "", fmt.Errorf("%w: crypt salt must be 2 characters of [./0-9A-Za-z]", ports.ErrInvalidSalt)
	}
	hashed, err := descrypt.Crypt(password, string(salt))
	if err != nil {
		return "", err
	}
	return cryptPrefix + hashed, nil
}

func (m *CryptManager) Check(encoded, password string) bool {
	if !m.Match(encoded) {
		return false
	}
	payload := encoded[len(cryptPrefix):]
	if c := modularCrypter(payload); c != nil {
		return c.Verify(payload, []byte(password)) == nil
	}
	if len(payload) < 2 {
		return false
	}
	// The 2-character salt sits at the start of the stored hash.
	fresh, err := m.Encode(password, []byte(payload[:2]))
	if err != nil {
		return false
	}
	return stringsEq(encoded, fresh)
}

func (m *CryptManager) Match(encoded string) bool {
	return strings.HasPrefix(encoded, cryptPrefix)
}

func isCryptSalt(salt []byte) bool {
	for _, c := range salt {
		if strings.IndexByte(cryptAlphabet, c) < 0 {
			return false
		}
	}
	return true
}

// modularCrypter picks the glibc crypter for a $id$ payload,
// nil for the classic DES form.
func modularCrypter(payload string) crypt.Crypter {
	switch {
	case strings.HasPrefix(payload, "$1$"):
		return md5_crypt.New()
	case strings.HasPrefix(payload, "$5$"):
		return sha256_crypt.New()
	case strings.HasPrefix(payload, "$6$"):
		return sha512_crypt.New()
	}
	return nil
}
