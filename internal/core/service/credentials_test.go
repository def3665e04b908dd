package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/modeboutique/storefront/internal/core/domain"
	"github.com/modeboutique/storefront/internal/pkg/clock"
)

func TestPlaintextCredentials(t *testing.T) {
	var p PlaintextCredentials
	sealed, _ := p.Seal("abcd")
	if sealed != "abcd" || !p.Verify(sealed, "abcd") || p.Verify(sealed, "abce") {
		t.Fatal("plaintext round trip failed")
	}
	if got, ok := p.Reveal(sealed); !ok || got != "abcd" {
		t.Errorf("Reveal = %q, %v", got, ok)
	}
}

func TestBcryptCredentials(t *testing.T) {
	b := BcryptCredentials{Cost: bcrypt.MinCost}
	sealed, err := b.Seal("abcd")
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	if sealed == "abcd" {
		t.Fatal("secret stored in clear")
	}
	if !b.Verify(sealed, "abcd") {
		t.Error("correct secret rejected")
	}
	if b.Verify(sealed, "abce") {
		t.Error("wrong secret accepted")
	}
	if _, ok := b.Reveal(sealed); ok {
		t.Error("bcrypt secrets must not be revealable")
	}
}

func gateFixture() (*DisclosureGate, *clock.FakeClock) {
	clk := clock.NewFake(t0)
	g := NewDisclosureGate(func() (domain.AdminCredentials, error) {
		return domain.AdminCredentials{Username: "admin", Password: "admin123"}, nil
	}, clk)
	return g, clk
}

func clickN(g *DisclosureGate, clk *clock.FakeClock, caller string, n int, gap time.Duration) (*domain.AdminCredentials, bool) {
	var (
		creds *domain.AdminCredentials
		ok    bool
	)
	for i := 0; i < n; i++ {
		if i > 0 {
			clk.Advance(gap)
		}
		creds, ok = g.Click(caller)
	}
	return creds, ok
}

func TestDisclosureGate_FifthClickReveals(t *testing.T) {
	g, clk := gateFixture()

	if _, ok := clickN(g, clk, "1.2.3.4", 4, time.Second); ok {
		t.Fatal("revealed before the fifth click")
	}
	clk.Advance(time.Second)
	creds, ok := g.Click("1.2.3.4")
	if !ok || creds.Username != "admin" || creds.Password != "admin123" {
		t.Fatalf("fifth click: %+v, %v", creds, ok)
	}

	clk.Advance(9 * time.Second)
	if _, remaining, ok := g.Revealed("1.2.3.4"); !ok || remaining != time.Second {
		t.Errorf("credentials hidden before the display window ended (remaining %v)", remaining)
	}
	clk.Advance(time.Second)
	if _, _, ok := g.Revealed("1.2.3.4"); ok {
		t.Error("credentials still shown after the display window")
	}
}

func TestDisclosureGate_InactivityResets(t *testing.T) {
	g, clk := gateFixture()

	clickN(g, clk, "caller", 4, time.Second)
	clk.Advance(DisclosureWindow)
	if _, ok := g.Click("caller"); ok {
		t.Fatal("count should reset after the inactivity window")
	}
	if _, ok := clickN(g, clk, "caller", 4, 3*time.Second); !ok {
		t.Error("five clicks within the window should reveal")
	}
}

func TestDisclosureGate_CountRestartsAfterReveal(t *testing.T) {
	g, clk := gateFixture()

	if _, ok := clickN(g, clk, "caller", 5, 0); !ok {
		t.Fatal("expected reveal")
	}
	if _, ok := clickN(g, clk, "caller", 4, 0); ok {
		t.Error("reveal needs five fresh clicks")
	}
}

func TestDisclosureGate_ResetAndIsolation(t *testing.T) {
	g, clk := gateFixture()

	clickN(g, clk, "a", 3, 0)
	g.Reset("a")
	if _, ok := clickN(g, clk, "a", 2, 0); ok {
		t.Error("Reset should clear the count")
	}

	clickN(g, clk, "b", 4, 0)
	if _, ok := g.Click("c"); ok {
		t.Error("callers must not share a count")
	}
}

func TestDisclosureGate_SourceError(t *testing.T) {
	g := NewDisclosureGate(func() (domain.AdminCredentials, error) {
		return domain.AdminCredentials{}, domain.ErrRecoveryUnsupported
	}, clock.NewFake(t0))

	for i := 0; i < DisclosureClicks; i++ {
		if _, ok := g.Click("caller"); ok {
			t.Fatal("nothing to reveal when the source fails")
		}
	}
}

func TestSessionIssuer(t *testing.T) {
	issuer := NewSessionIssuer("secret", time.Hour, nil)

	token, err := issuer.ForClient(&domain.Client{ID: "c1", Phone: "0812"})
	if err != nil {
		t.Fatalf("ForClient: %v", err)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return []byte("secret"), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !parsed.Valid {
		t.Fatalf("parse: %v", err)
	}
	if claims["role"] != domain.RoleClient || claims["client_id"] != "c1" {
		t.Errorf("claims = %v", claims)
	}

	admin, err := issuer.ForAdmin("admin")
	if err != nil {
		t.Fatalf("ForAdmin: %v", err)
	}
	_, err = jwt.Parse(admin, func(*jwt.Token) (any, error) { return []byte("other"), nil })
	if !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
		t.Errorf("expected signature error, got %v", err)
	}
}
