package security

import (
	"crypto/md5"
	"crypto/rand"
	"crypto/sha1"
	"encoding/base64"
	"hash"
	"io"
	"strings"

	"principal-passwd/internal/app/ports"
)

const (
	smd5Prefix = "{SMD5}"
	sshaPrefix = "{SSHA}"

	md5DigestLen  = md5.Size
	sha1DigestLen = sha1.Size

	// Salt length for freshly encoded salted-digest credentials.
	defaultDigestSaltLen = 4
)

// saltedDigest computes base64(hash(password||salt) || salt), the payload
// shared by the SMD5 and SSHA wire formats.
func saltedDigest(newHash func() hash.Hash, password string, salt []byte) string {
	h := newHash()
	h.Write([]byte(password))
	h.Write(salt)
	return base64.StdEncoding.EncodeToString(append(h.Sum(nil), salt...))
}

// SMD5Manager implements the {SMD5} salted digest scheme as used by LDAP
// tools such as slappasswd: base64(md5(password||salt) || salt) behind the
// tag. The embedded salt makes verification self-contained.
type SMD5Manager struct {
	rr io.Reader
}

// Enforce compile-time conformance to the interface
var _ ports.PasswordManager = (*SMD5Manager)(nil)

func NewSMD5Manager() *SMD5Manager {
	return &SMD5Manager{rr: rand.Reader}
}

func (m *SMD5Manager) Encode(password string, salt []byte) (string, error) {
	if salt == nil {
		var err error
		if salt, err = randomBytes(defaultDigestSaltLen, m.rr); err != nil {
			return "", err
		}
	}
	return smd5Prefix + saltedDigest(md5.New, password, salt), nil
}

func (m *SMD5Manager) Check(encoded, password string) bool {
	if len(encoded) < len(smd5Prefix) {
		return false
	}
	raw, err := base64.StdEncoding.DecodeString(encoded[len(smd5Prefix):])
	if err != nil || len(raw) < md5DigestLen {
		return false
	}
	fresh, err := m.Encode(password, raw[md5DigestLen:])
	if err != nil {
		return false
	}
	return stringsEq(encoded, fresh)
}

func (m *SMD5Manager) Match(encoded string) bool {
	return strings.HasPrefix(encoded, smd5Prefix)
}

// SSHAManager implements the {SSHA} salted SHA1 scheme, the de-facto
// standard for passwords stored in LDAP directories.
//
// An older generation of this manager emitted the url-safe base64 alphabet
// (-/_ in place of +//). Such credentials are detected by the presence of
// those characters, decoded accordingly and re-encoded to the standard
// alphabet, so equivalent bit content never produces a false negative.
type SSHAManager struct {
	rr io.Reader
}

// Enforce compile-time conformance to the interface
var _ ports.PasswordManager = (*SSHAManager)(nil)

func NewSSHAManager() *SSHAManager {
	return &SSHAManager{rr: rand.Reader}
}

func (m *SSHAManager) Encode(password string, salt []byte) (string, error) {
	if salt == nil {
		var err error
		if salt, err = randomBytes(defaultDigestSaltLen, m.rr); err != nil {
			return "", err
		}
	}
	return sshaPrefix + saltedDigest(sha1.New, password, salt), nil
}

func (m *SSHAManager) Check(encoded, password string) bool {
	if len(encoded) < len(sshaPrefix) {
		return false
	}
	payload := encoded[len(sshaPrefix):]
	var raw []byte
	var err error
	if strings.ContainsAny(payload, "-_") {
		if raw, err = base64.URLEncoding.DecodeString(payload); err != nil {
			return false
		}
		payload = base64.StdEncoding.EncodeToString(raw)
	} else {
		if raw, err = base64.StdEncoding.DecodeString(payload); err != nil {
			return false
		}
	}
	if len(raw) < sha1DigestLen {
		return false
	}
	fresh, err := m.Encode(password, raw[sha1DigestLen:])
	if err != nil {
		return false
	}
	return stringsEq(payload, fresh[len(sshaPrefix):])
}

func (m *SSHAManager) Match(encoded string) bool {
	return strings.HasPrefix(encoded, sshaPrefix)
}
