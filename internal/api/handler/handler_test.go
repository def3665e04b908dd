package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/modeboutique/storefront/internal/core/domain"
	"github.com/modeboutique/storefront/internal/core/service"
	"github.com/modeboutique/storefront/internal/infrastructure/kvcache"
	"github.com/modeboutique/storefront/internal/infrastructure/local"
	"github.com/modeboutique/storefront/internal/pkg/clock"
)

type testEnv struct {
	e        *echo.Echo
	store    *service.Store
	sessions *service.SessionIssuer
	gate     *service.DisclosureGate
	clock    *clock.FakeClock
}

// newTestEnv wires a store over the local backend seeded with the sample
// catalog (ids "1" to "6", all published).
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()
	log := zerolog.Nop()
	clk := clock.NewFake(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	cache := kvcache.New(kvcache.NewMemoryBlobs(), log)

	n := 0
	store := service.NewStore(service.Dependencies{
		Articles: local.NewArticleRepository(ctx, cache, domain.SampleArticles(clk.Now())),
		Cache:    cache,
		Clock:    clk,
		NewID: func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		},
		Logger: log,
	}, service.Options{})
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init store: %v", err)
	}

	e := echo.New()
	e.Validator = NewValidator()
	return &testEnv{
		e:        e,
		store:    store,
		sessions: service.NewSessionIssuer("secret", time.Hour, clk),
		gate:     service.NewDisclosureGate(store.AdminCredentials, clk),
		clock:    clk,
	}
}

type call struct {
	method string
	path   string
	body   string
	params map[string]string
	query  string
	setup  func(c echo.Context)
}

func (env *testEnv) do(h echo.HandlerFunc, in call) (*httptest.ResponseRecorder, error) {
	target := in.path
	if in.query != "" {
		target += "?" + in.query
	}
	var req *http.Request
	if in.body != "" {
		req = httptest.NewRequest(in.method, target, strings.NewReader(in.body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(in.method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := env.e.NewContext(req, rec)
	for k, v := range in.params {
		c.SetParamNames(k)
		c.SetParamValues(v)
	}
	if in.setup != nil {
		in.setup(c)
	}
	return rec, h(c)
}

func (env *testEnv) registerClient(t *testing.T, phone string) *domain.Client {
	t.Helper()
	c, err := env.store.RegisterClient(context.Background(), domain.ClientInput{
		FirstName: "Marie",
		LastName:  "Kabila",
		Phone:     phone,
		Password:  "pass1234",
	})
	if err != nil {
		t.Fatalf("register client: %v", err)
	}
	return c
}

func asClient(id string) func(c echo.Context) {
	return func(c echo.Context) {
		c.Set("role", domain.RoleClient)
		c.Set("client_id", id)
	}
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json %q: %v", rec.Body.String(), err)
	}
	return out
}

func httpCode(t *testing.T, err error) int {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T (%v)", err, err)
	}
	return he.Code
}
