package service

import (
	"context"
	"fmt"

	"github.com/modeboutique/storefront/internal/core/domain"
	"github.com/modeboutique/storefront/internal/core/ports"
)

// RegisterClient creates a buyer account. A phone already in use yields
// ErrPhoneTaken and nothing is written.
func (s *Store) RegisterClient(ctx context.Context, in domain.ClientInput) (*domain.Client, error) {
	if in.Phone == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	sealed, err := s.creds.Seal(in.Password)
	if err != nil {
		return nil, fmt.Errorf("register client: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.clients {
		if s.clients[i].Phone == in.Phone {
			return nil, domain.ErrPhoneTaken
		}
	}

	c := domain.Client{
		ID:        s.newID(),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Phone:     in.Phone,
		Password:  sealed,
		CreatedAt: s.now(),
	}
	s.clients = append(s.clients, c)
	s.cache.Save(ctx, ports.KeyClients, s.clients)

	s.log.Info().Str("client_id", c.ID).Msg("client registered")
	return &c, nil
}

// LoginClient returns the client whose phone and password match.
func (s *Store) LoginClient(_ context.Context, phone, password string) (*domain.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.clients {
		c := s.clients[i]
		if c.Phone == phone && s.creds.Verify(c.Password, password) {
			return &c, nil
		}
	}
	return nil, domain.ErrInvalidCredentials
}

// RecoverPassword returns the password registered for phone, when the
// credentials provider can reveal it.
func (s *Store) RecoverPassword(_ context.Context, phone string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.clients {
		if s.clients[i].Phone != phone {
			continue
		}
		secret, ok := s.creds.Reveal(s.clients[i].Password)
		if !ok {
			return "", domain.ErrRecoveryUnsupported
		}
		return secret, nil
	}
	return "", domain.ErrClientNotFound
}

// Client looks up a client by id.
func (s *Store) Client(id string) (domain.Client, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.clients {
		if s.clients[i].ID == id {
			return s.clients[i], true
		}
	}
	return domain.Client{}, false
}

// Clients returns every registered client in registration order.
func (s *Store) Clients() []domain.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Client, len(s.clients))
	copy(out, s.clients)
	return out
}

// Admin returns the administrator record.
func (s *Store) Admin() domain.Admin {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.admin
}

// LoginAdmin reports whether username and password match the administrator.
func (s *Store) LoginAdmin(_ context.Context, username, password string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.admin.Username == username && s.creds.Verify(s.admin.Password, password)
}

// AdminCredentials returns the administrator's username and plain password
// for the disclosure gate.
func (s *Store) AdminCredentials() (domain.AdminCredentials, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	secret, ok := s.creds.Reveal(s.admin.Password)
	if !ok {
		return domain.AdminCredentials{}, domain.ErrRecoveryUnsupported
	}
	return domain.AdminCredentials{Username: s.admin.Username, Password: secret}, nil
}

// ChangeAdminPassword replaces the administrator password when current
// matches. The stored password is unchanged on ErrInvalidCredentials.
func (s *Store) ChangeAdminPassword(ctx context.Context, current, next string) error {
	if next == "" {
		return domain.ErrInvalidCredentials
	}
	sealed, err := s.creds.Seal(next)
	if err != nil {
		return fmt.Errorf("change admin password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.creds.Verify(s.admin.Password, current) {
		return domain.ErrInvalidCredentials
	}
	s.admin.Password = sealed
	s.cache.Save(ctx, ports.KeyAdmin, s.admin)

	s.log.Info().Str("username", s.admin.Username).Msg("admin password changed")
	return nil
}
