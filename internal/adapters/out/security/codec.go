package security

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"io"
)

// Crypt uses the classic crypt(3) base64 alphabet for salt: [./0-9A-Za-z]
const cryptAlphabet = "./0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// stringsEq compares strings in constant time (only if lengths match).
func stringsEq(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// randomBytes reads n bytes from rng (crypto/rand when nil).
func randomBytes(n int, rng io.Reader) ([]byte, error) {
	if rng == nil {
		rng = rand.Reader
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(rng, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// randomSalt generates a salt of length n using the crypt(3) alphabet.
func randomSalt(n int, rng io.Reader) (string, error) {
	buf, err := randomBytes(n, rng)
	if err != nil {
		return "", err
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = cryptAlphabet[int(buf[i])%len(cryptAlphabet)]
	}
	return string(out), nil
}

// hexTailToBase64 re-encodes the final n hex characters of s as standard
// base64. Earlier scheme generations stored hex digests behind a cosmetic
// salt prefix; only the digest tail is significant.
func hexTailToBase64(s string, n int) (string, bool) {
	if len(s) < n {
		return "", false
	}
	raw, err := hex.DecodeString(s[len(s)-n:])
	if err != nil {
		return "", false
	}
	return base64.StdEncoding.EncodeToString(raw), true
}
