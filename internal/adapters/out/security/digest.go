package security

import (
	"crypto/md5"
	"crypto/sha1"
	"encoding/base64"
	"strings"

	"principal-passwd/internal/app/ports"
)

const (
	md5Prefix  = "{MD5}"
	shaPrefix  = "{SHA}"
	sha1Prefix = "{SHA1}" // pre-RFC 2307 generation of the SHA scheme
)

// MD5Manager implements the RFC 2307 {MD5} scheme: base64 of the raw MD5
// digest behind the tag, identical to `slappasswd -h {MD5}` output.
//
// An earlier generation stored the digest hex-encoded behind an arbitrary
// cosmetic salt that never entered the hash, without the tag. Check still
// accepts those values; Match does not claim them since the tag is missing.
type MD5Manager struct{}

// Enforce compile-time conformance to the interface
var _ ports.PasswordManager = (*MD5Manager)(nil)

func NewMD5Manager() *MD5Manager {
	return &MD5Manager{}
}

// Encode ignores the salt argument: salt was only ever cosmetic in this
// scheme family and contributes nothing to the digest.
func (m *MD5Manager) Encode(password string, _ []byte) (string, error) {
	sum := md5.Sum([]byte(password))
	return md5Prefix + base64.StdEncoding.EncodeToString(sum[:]), nil
}

func (m *MD5Manager) Check(encoded, password string) bool {
	payload := encoded
	if i := strings.IndexByte(encoded, '}'); i >= 0 {
		payload = encoded[i+1:]
	}
	if len(payload) > 24 {
		// Legacy: hex digest with cosmetic salt, last 32 chars significant.
		var ok bool
		if payload, ok = hexTailToBase64(payload, 32); !ok {
			return false
		}
	}
	fresh, _ := m.Encode(password, nil)
	return stringsEq(payload, fresh[len(md5Prefix):])
}

func (m *MD5Manager) Match(encoded string) bool {
	return strings.HasPrefix(encoded, md5Prefix)
}

// SHA1Manager implements the RFC 2307 {SHA} scheme. The {SHA1} tag of an
// earlier generation is recognized on input, as is the untagged
// hex-with-cosmetic-salt form described on MD5Manager.
type SHA1Manager struct{}

// Enforce compile-time conformance to the interface
var _ ports.PasswordManager = (*SHA1Manager)(nil)

func NewSHA1Manager() *SHA1Manager {
	return &SHA1Manager{}
}

// Encode ignores the salt argument, see MD5Manager.Encode.
func (m *SHA1Manager) Encode(password string, _ []byte) (string, error) {
	sum := sha1.Sum([]byte(password))
	return shaPrefix + base64.StdEncoding.EncodeToString(sum[:]), nil
}

func (m *SHA1Manager) Check(encoded, password string) bool {
	payload := encoded
	if i := strings.IndexByte(encoded, '}'); i >= 0 {
		payload = encoded[i+1:]
	}
	if len(payload) > 28 {
		// Legacy: hex digest with cosmetic salt, last 40 chars significant.
		var ok bool
		if payload, ok = hexTailToBase64(payload, 40); !ok {
			return false
		}
	}
	fresh, _ := m.Encode(password, nil)
	return stringsEq(payload, fresh[len(shaPrefix):])
}

func (m *SHA1Manager) Match(encoded string) bool {
	return strings.HasPrefix(encoded, shaPrefix) ||
		strings.HasPrefix(encoded, sha1Prefix)
}
