package security

import (
	"fmt"
	"strings"

	"principal-passwd/internal/app/ports"
)

const mysqlPrefix = "{MYSQL}"

// MySQLManager implements the digest produced by the MySQL PASSWORD()
// function in versions before 4.1. The result is a very weak 16-hex-digit
// hash; the scheme exists to verify historical data, never for new storage.
type MySQLManager struct{}

// Enforce compile-time conformance to the interface
var _ ports.PasswordManager = (*MySQLManager)(nil)

func NewMySQLManager() *MySQLManager {
	return &MySQLManager{}
}

// Encode ignores the salt argument; the algorithm is unsalted.
// Space and tab bytes in the password are skipped, as the original did.
func (m *MySQLManager) Encode(password string, _ []byte) (string, error) {
	var (
		nr  uint32 = 1345345333
		nr2 uint32 = 0x12345671
		add uint32 = 7
	)
	for _, b := range []byte(password) {
		if b == ' ' || b == '\t' {
			continue
		}
		nr ^= ((nr&63)+add)*uint32(b) + nr<<8
		nr2 += nr2<<8 ^ nr
		add += uint32(b)
	}
	// Both accumulators are masked to 31 bits on output.
	return fmt.Sprintf("%s%08x%08x", mysqlPrefix, nr&0x7fffffff, nr2&0x7fffffff), nil
}

func (m *MySQLManager) Check(encoded, password string) bool {
	fresh, _ := m.Encode(password, nil)
	return stringsEq(encoded, fresh)
}

func (m *MySQLManager) Match(encoded string) bool {
	return strings.HasPrefix(encoded, mysqlPrefix)
}
