package service

import "golang.org/x/crypto/bcrypt"

// CredentialScheme isolates how registered-account passwords are stored and
// compared, so the plaintext compatibility behavior can be swapped for a
// real scheme without touching callers. The fixed administrator pair is
// compared directly and never passes through a scheme.
type CredentialScheme interface {
	// Seal transforms a password into its stored form.
	Seal(password string) (string, error)
	// Verify reports whether password matches the stored form.
	Verify(stored, password string) bool
}

// PlaintextScheme stores and compares passwords verbatim. This matches the
// original storage contract and is the default.
type PlaintextScheme struct{}

func (PlaintextScheme) Seal(password string) (string, error) { return password, nil }

func (PlaintextScheme) Verify(stored, password string) bool { return stored == password }

// BcryptScheme stores a bcrypt hash instead of the raw password.
type BcryptScheme struct{}

func (BcryptScheme) Seal(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (BcryptScheme) Verify(stored, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}

// SchemeFromName maps a configuration value to a scheme. Unrecognised names
// fall back to plaintext, the compatibility default.
func SchemeFromName(name string) CredentialScheme {
	if name == "bcrypt" {
		return BcryptScheme{}
	}
	return PlaintextScheme{}
}
