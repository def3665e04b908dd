package handler

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/modeboutique/storefront/internal/core/domain"
)

func TestAuthHandler_RegisterClient(t *testing.T) {
	env := newTestEnv(t)
	h := NewAuthHandler(env.store, env.sessions, env.gate)

	rec, err := env.do(h.RegisterClient, call{
		method: http.MethodPost,
		path:   "/auth/clients/register",
		body:   `{"first_name":"Marie","last_name":"Kabila","phone":"+243810000000","password":"pass1234"}`,
	})
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("password leaked: %s", rec.Body.String())
	}

	resp := decode[clientSessionResponse](t, rec)
	if resp.Token == "" || resp.Client.Phone != "+243810000000" || resp.Client.ID == "" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAuthHandler_RegisterClient_PhoneTaken(t *testing.T) {
	env := newTestEnv(t)
	env.registerClient(t, "+243810000000")
	h := NewAuthHandler(env.store, env.sessions, env.gate)

	_, err := env.do(h.RegisterClient, call{
		method: http.MethodPost,
		path:   "/auth/clients/register",
		body:   `{"first_name":"Jean","last_name":"Mbala","phone":"+243810000000","password":"other"}`,
	})
	if !errors.Is(err, domain.ErrPhoneTaken) {
		t.Fatalf("expected ErrPhoneTaken, got %v", err)
	}
}

func TestAuthHandler_RegisterClient_Validation(t *testing.T) {
	env := newTestEnv(t)
	h := NewAuthHandler(env.store, env.sessions, env.gate)

	_, err := env.do(h.RegisterClient, call{
		method: http.MethodPost,
		path:   "/auth/clients/register",
		body:   `{"first_name":"Jean","last_name":"Mbala","password":"pass1234"}`,
	})
	if code := httpCode(t, err); code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", code)
	}
	if len(env.store.Clients()) != 0 {
		t.Fatalf("invalid registration must not be stored")
	}
}

func TestAuthHandler_LoginClient(t *testing.T) {
	env := newTestEnv(t)
	env.registerClient(t, "+243810000000")
	h := NewAuthHandler(env.store, env.sessions, env.gate)

	rec, err := env.do(h.LoginClient, call{
		method: http.MethodPost,
		path:   "/auth/clients/login",
		body:   `{"phone":"+243810000000","password":"pass1234"}`,
	})
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if resp := decode[clientSessionResponse](t, rec); resp.Token == "" {
		t.Fatalf("expected token")
	}

	_, err = env.do(h.LoginClient, call{
		method: http.MethodPost,
		path:   "/auth/clients/login",
		body:   `{"phone":"+243810000000","password":"wrong"}`,
	})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_RecoverPassword(t *testing.T) {
	env := newTestEnv(t)
	env.registerClient(t, "+243810000000")
	h := NewAuthHandler(env.store, env.sessions, env.gate)

	rec, err := env.do(h.RecoverPassword, call{
		method: http.MethodPost,
		path:   "/auth/clients/recover",
		body:   `{"phone":"+243810000000"}`,
	})
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if resp := decode[recoverPasswordResponse](t, rec); resp.Password != "pass1234" {
		t.Fatalf("unexpected password: %q", resp.Password)
	}

	_, err = env.do(h.RecoverPassword, call{
		method: http.MethodPost,
		path:   "/auth/clients/recover",
		body:   `{"phone":"+243899999999"}`,
	})
	if !errors.Is(err, domain.ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

func TestAuthHandler_LoginAdmin(t *testing.T) {
	env := newTestEnv(t)
	h := NewAuthHandler(env.store, env.sessions, env.gate)

	rec, err := env.do(h.LoginAdmin, call{
		method: http.MethodPost,
		path:   "/auth/admin/login",
		body:   `{"username":"admin","password":"admin123"}`,
	})
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	resp := decode[adminLoginResponse](t, rec)
	if resp.Token == "" || resp.Credentials != nil {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAuthHandler_LoginAdmin_DisclosesAfterFivePresses(t *testing.T) {
	env := newTestEnv(t)
	h := NewAuthHandler(env.store, env.sessions, env.gate)
	press := call{method: http.MethodPost, path: "/auth/admin/login", body: `{}`}

	for i := 1; i < 5; i++ {
		if _, err := env.do(h.LoginAdmin, press); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("press %d: expected ErrInvalidCredentials, got %v", i, err)
		}
	}

	rec, err := env.do(h.LoginAdmin, press)
	if err != nil {
		t.Fatalf("fifth press: %v", err)
	}
	resp := decode[adminLoginResponse](t, rec)
	if resp.Credentials == nil || resp.Credentials.Username != "admin" || resp.Credentials.Password != "admin123" {
		t.Fatalf("expected disclosed credentials, got %+v", resp)
	}
	if resp.DisplaySeconds != 10 || resp.Token != "" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAuthHandler_LoginAdmin_SlowPressesNeverDisclose(t *testing.T) {
	env := newTestEnv(t)
	h := NewAuthHandler(env.store, env.sessions, env.gate)
	press := call{method: http.MethodPost, path: "/auth/admin/login", body: `{}`}

	for i := 0; i < 8; i++ {
		if _, err := env.do(h.LoginAdmin, press); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("press %d: expected ErrInvalidCredentials, got %v", i, err)
		}
		env.clock.Advance(5 * time.Second)
	}
}

func TestAuthHandler_LoginAdmin_FifthPressDisclosesEvenWithValidCredentials(t *testing.T) {
	env := newTestEnv(t)
	h := NewAuthHandler(env.store, env.sessions, env.gate)

	for i := 1; i < 5; i++ {
		_, err := env.do(h.LoginAdmin, call{
			method: http.MethodPost,
			path:   "/auth/admin/login",
			body:   `{"username":"admin","password":"nope"}`,
		})
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("press %d: expected ErrInvalidCredentials, got %v", i, err)
		}
	}

	rec, err := env.do(h.LoginAdmin, call{
		method: http.MethodPost,
		path:   "/auth/admin/login",
		body:   `{"username":"admin","password":"admin123"}`,
	})
	if err != nil {
		t.Fatalf("fifth press: %v", err)
	}
	resp := decode[adminLoginResponse](t, rec)
	if resp.Credentials == nil || resp.Credentials.Username != "admin" || resp.Credentials.Password != "admin123" {
		t.Fatalf("expected disclosed credentials, got %+v", resp)
	}
	if resp.Token != "" || resp.DisplaySeconds != 10 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAuthHandler_DisclosedCredentials(t *testing.T) {
	env := newTestEnv(t)
	h := NewAuthHandler(env.store, env.sessions, env.gate)
	read := call{method: http.MethodGet, path: "/auth/admin/login"}

	_, err := env.do(h.DisclosedCredentials, read)
	if code := httpCode(t, err); code != http.StatusNotFound {
		t.Fatalf("expected 404 before disclosure, got %d", code)
	}

	press := call{method: http.MethodPost, path: "/auth/admin/login", body: `{}`}
	for i := 0; i < 5; i++ {
		_, _ = env.do(h.LoginAdmin, press)
	}

	env.clock.Advance(4 * time.Second)
	rec, err := env.do(h.DisclosedCredentials, read)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	resp := decode[adminLoginResponse](t, rec)
	if resp.Credentials == nil || resp.Credentials.Password != "admin123" || resp.DisplaySeconds != 6 {
		t.Fatalf("unexpected response: %+v", resp)
	}

	env.clock.Advance(6 * time.Second)
	_, err = env.do(h.DisclosedCredentials, read)
	if code := httpCode(t, err); code != http.StatusNotFound {
		t.Fatalf("expected 404 after the display window, got %d", code)
	}
}
