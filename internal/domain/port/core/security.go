package core

// Identity is the verified caller identity carried by a bearer token.
// Email, password and balance are never embedded in tokens.
type Identity struct {
	ID   string
	Name string
}

// TokenIssuer produces and verifies signed identity assertions
type TokenIssuer interface {
	// Issue signs a token carrying the given identity
	Issue(identity Identity) (string, error)
	// Verify checks a token's signature and returns the identity it asserts
	Verify(token string) (Identity, error)
}

// PasswordHasher abstracts the password hashing primitive
type PasswordHasher interface {
	// Hash returns the salted hash of a plain-text password
	Hash(password string) (string, error)
	// Compare checks a plain-text password against a stored hash
	Compare(hash, password string) error
}

// CodeGenerator produces numeric one-time codes for password recovery
type CodeGenerator interface {
	ResetCode() (string, error)
}
