package ports

// CredentialsProvider owns every decision about how secrets are stored,
// compared and disclosed.
type CredentialsProvider interface {
	// Seal turns a secret into its stored form.
	Seal(secret string) (string, error)
	// Verify compares a candidate with a stored secret.
	Verify(stored, candidate string) bool
	// Reveal returns the plain secret behind a stored one, if recoverable.
	Reveal(stored string) (string, bool)
}
