package service

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/modeboutique/storefront/internal/core/domain"
)

func marie() domain.ClientInput {
	return domain.ClientInput{FirstName: "Marie", LastName: "Kabila", Phone: "0812345678", Password: "abcd"}
}

func TestStore_RegisterClient_Success(t *testing.T) {
	f := newFixture(t, Options{})

	c, err := f.store.RegisterClient(context.Background(), marie())
	if err != nil {
		t.Fatalf("RegisterClient returned error: %v", err)
	}
	if c.ID == "" {
		t.Fatal("expected generated id")
	}
	if !c.CreatedAt.Equal(t0) {
		t.Errorf("CreatedAt = %v, want %v", c.CreatedAt, t0)
	}
	if got, ok := f.store.Client(c.ID); !ok || got.Phone != "0812345678" {
		t.Errorf("Client(%q) = %+v, %v", c.ID, got, ok)
	}
}

func TestStore_RegisterClient_DuplicatePhone(t *testing.T) {
	f := newFixture(t, Options{})
	ctx := context.Background()
	if _, err := f.store.RegisterClient(ctx, marie()); err != nil {
		t.Fatalf("first register: %v", err)
	}

	other := marie()
	other.FirstName = "Jean"
	_, err := f.store.RegisterClient(ctx, other)
	if err != domain.ErrPhoneTaken {
		t.Fatalf("expected ErrPhoneTaken, got %v", err)
	}
	if n := len(f.store.Clients()); n != 1 {
		t.Errorf("client count = %d, want 1", n)
	}
	if n := len(f.reopen(t).Clients()); n != 1 {
		t.Errorf("persisted client count = %d, want 1", n)
	}
}

func TestStore_RegisterClient_Validation(t *testing.T) {
	f := newFixture(t, Options{})
	in := marie()
	in.Password = ""

	if _, err := f.store.RegisterClient(context.Background(), in); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestStore_LoginAndRecover(t *testing.T) {
	f := newFixture(t, Options{})
	ctx := context.Background()
	registered, err := f.store.RegisterClient(ctx, marie())
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	c, err := f.store.LoginClient(ctx, "0812345678", "abcd")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if c.ID != registered.ID {
		t.Errorf("login returned %q, want %q", c.ID, registered.ID)
	}

	if _, err := f.store.LoginClient(ctx, "0812345678", "wrong"); err != domain.ErrInvalidCredentials {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := f.store.LoginClient(ctx, "0999999999", "abcd"); err != domain.ErrInvalidCredentials {
		t.Errorf("unknown phone: expected ErrInvalidCredentials, got %v", err)
	}

	pw, err := f.store.RecoverPassword(ctx, "0812345678")
	if err != nil || pw != "abcd" {
		t.Errorf("RecoverPassword = %q, %v; want abcd", pw, err)
	}
	if _, err := f.store.RecoverPassword(ctx, "0999999999"); err != domain.ErrClientNotFound {
		t.Errorf("unknown phone: expected ErrClientNotFound, got %v", err)
	}
}

func TestStore_ChangeAdminPassword(t *testing.T) {
	f := newFixture(t, Options{})
	ctx := context.Background()

	if err := f.store.ChangeAdminPassword(ctx, "nope", "next"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if !f.store.LoginAdmin(ctx, "admin", "admin123") {
		t.Fatal("stored password changed after a rejected change")
	}

	if err := f.store.ChangeAdminPassword(ctx, "admin123", "next"); err != nil {
		t.Fatalf("change: %v", err)
	}
	if !f.store.LoginAdmin(ctx, "admin", "next") {
		t.Error("new password rejected")
	}
	if f.store.LoginAdmin(ctx, "admin", "admin123") {
		t.Error("old password still accepted")
	}
	if !f.reopen(t).LoginAdmin(ctx, "admin", "next") {
		t.Error("new password not persisted")
	}
}

func TestStore_AdminCredentials(t *testing.T) {
	f := newFixture(t, Options{})

	creds, err := f.store.AdminCredentials()
	if err != nil {
		t.Fatalf("AdminCredentials: %v", err)
	}
	if creds.Username != "admin" || creds.Password != "admin123" {
		t.Errorf("got %+v", creds)
	}
}

func TestStore_BcryptCredentials_HidesSecrets(t *testing.T) {
	f := newFixture(t, Options{}, func(d *Dependencies) {
		d.Credentials = BcryptCredentials{Cost: bcrypt.MinCost}
	})
	ctx := context.Background()

	c, err := f.store.RegisterClient(ctx, marie())
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if c.Password == "abcd" {
		t.Error("password stored in clear")
	}
	if _, err := f.store.LoginClient(ctx, "0812345678", "abcd"); err != nil {
		t.Errorf("login: %v", err)
	}
	if _, err := f.store.RecoverPassword(ctx, "0812345678"); err != domain.ErrRecoveryUnsupported {
		t.Errorf("expected ErrRecoveryUnsupported, got %v", err)
	}
	if !f.store.LoginAdmin(ctx, "admin", "admin123") {
		t.Error("default admin rejected")
	}
	if _, err := f.store.AdminCredentials(); err != domain.ErrRecoveryUnsupported {
		t.Errorf("expected ErrRecoveryUnsupported, got %v", err)
	}
}
