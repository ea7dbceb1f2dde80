package security

import (
	"principal-passwd/internal/app/ports"
)

// PlainTextManager stores the password as-is.
type PlainTextManager struct{}

// Enforce compile-time conformance to the interface
var _ ports.PasswordManager = (*PlainTextManager)(nil)

func NewPlainTextManager() *PlainTextManager {
	return &PlainTextManager{}
}

func (m *PlainTextManager) Encode(password string, _ []byte) (string, error) {
	return password, nil
}

func (m *PlainTextManager) Check(encoded, password string) bool {
	return stringsEq(encoded, password)
}

// Match is always false. A stored value was either never encoded or matching
// against it would let a hash produced by another scheme be accepted as a
// literal password. Authentication code that wants plain-text fallback must
// check for it explicitly after all other schemes were tried.
func (m *PlainTextManager) Match(string) bool {
	return false
}
