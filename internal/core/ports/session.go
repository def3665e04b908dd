package ports

import (
	"time"

	"github.com/modeboutique/storefront/internal/core/domain"
)

// SessionIssuer signs session tokens after a successful login.
type SessionIssuer interface {
	ForClient(c *domain.Client) (string, error)
	ForAdmin(username string) (string, error)
}

// CredentialDisclosure counts admin-login presses per caller and reveals the
// admin credentials once a press completes the sequence.
type CredentialDisclosure interface {
	Click(caller string) (*domain.AdminCredentials, bool)
	Revealed(caller string) (*domain.AdminCredentials, time.Duration, bool)
	Reset(caller string)
}
