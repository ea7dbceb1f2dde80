package ports

// Scheme names as registered in the default registry.
const (
	SchemePlainText = "Plain Text"
	SchemeMD5       = "MD5"
	SchemeSMD5      = "SMD5"
	SchemeSHA1      = "SHA1"
	SchemeSSHA      = "SSHA"
	SchemeMySQL     = "MySQL"
	SchemeCrypt     = "Crypt"
	SchemeBCrypt    = "BCRYPT"
	SchemeBCryptKDF = "BCRYPTKDF"
)

// PasswordManager is one password-encoding scheme: its wire format, its salt
// handling and its backward-compatibility rules for historically produced
// hashes.
//
// Passwords and encoded credentials are passed as strings; Go strings are
// UTF-8 byte sequences and hashing always operates on those raw bytes.
// Callers holding raw bytes convert with string(b), which is loss-free.
type PasswordManager interface {
	// Encode returns a tagged, self-describing credential for password.
	// A nil salt means "generate a fresh one"; schemes without salt
	// semantics ignore the argument. Errors are contract violations
	// (invalid explicit salt, randomness or primitive failure), never
	// verification outcomes.
	Encode(password string, salt []byte) (string, error)

	// Check reports whether encoded verifies against password.
	// Credentials not produced by this scheme, or carrying a corrupt
	// payload under a recognized tag, yield false, never an error.
	Check(encoded, password string) bool

	// Match reports whether this scheme, or one of its recognized legacy
	// variants, produced encoded. Pure predicate.
	Match(encoded string) bool
}

// RegistryEntry is one registered (name, scheme) pair.
type RegistryEntry struct {
	Name    string
	Manager PasswordManager
}

// SchemeRegistry is an ordered, immutable set of password schemes.
// Registration order is meaningful: it drives menu numbering in the
// principal tool and the first-match-wins dispatch in Find.
type SchemeRegistry interface {
	// Entries returns the schemes in registration order.
	Entries() []RegistryEntry

	// Lookup returns the manager registered under the exact name.
	Lookup(name string) (PasswordManager, bool)

	// Find returns the first scheme claiming ownership of encoded.
	// Scheme tags are disjoint by construction, so at most one
	// non-degenerate match is expected, but first-match-wins is the
	// contract.
	Find(encoded string) (string, PasswordManager, bool)
}
