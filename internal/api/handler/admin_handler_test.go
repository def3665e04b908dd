package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/modeboutique/storefront/internal/core/domain"
	"github.com/modeboutique/storefront/internal/core/ports"
)

func newAdminHandler(env *testEnv) *AdminHandler {
	return NewAdminHandler(env.store, env.store, env.store, env.store)
}

func TestAdminHandler_CreateArticle(t *testing.T) {
	env := newTestEnv(t)
	h := newAdminHandler(env)

	rec, err := env.do(h.CreateArticle, call{
		method: http.MethodPost,
		path:   "/v1/admin/articles",
		body:   `{"name":"Chemise Lin","price_fc":30000,"price_usd":16.5,"category":"Vestes","sizes":["M"],"images":["https://img.example.com/a.jpg"],"stock":4,"published":true}`,
	})
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	a := decode[domain.Article](t, rec)
	if a.ID == "" || a.Category != "Vestes" || !a.Published {
		t.Fatalf("unexpected article: %+v", a)
	}

	if got := env.store.Articles(); len(got) != 7 || got[0].ID != a.ID {
		t.Fatalf("expected new article first, got %d articles", len(got))
	}
	if env.store.UnreadCount() != 1 {
		t.Fatalf("published creation should notify")
	}
}

func TestAdminHandler_CreateArticle_Validation(t *testing.T) {
	env := newTestEnv(t)
	h := newAdminHandler(env)

	bodies := []string{
		`{"name":"X","category":"Chapeaux"}`,
		`{"name":"X","price_fc":-1}`,
		`{"price_fc":10}`,
		`{"name":"X","images":["not a url"]}`,
	}
	for _, body := range bodies {
		_, err := env.do(h.CreateArticle, call{method: http.MethodPost, path: "/v1/admin/articles", body: body})
		if code := httpCode(t, err); code != http.StatusUnprocessableEntity {
			t.Fatalf("%s: expected 422, got %d", body, code)
		}
	}
	if len(env.store.Articles()) != 6 {
		t.Fatalf("rejected articles must not be stored")
	}
}

func TestAdminHandler_CreateArticle_DefaultsCategory(t *testing.T) {
	env := newTestEnv(t)
	h := newAdminHandler(env)

	rec, err := env.do(h.CreateArticle, call{method: http.MethodPost, path: "/v1/admin/articles", body: `{"name":"Sans catégorie"}`})
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if a := decode[domain.Article](t, rec); a.Category != domain.CategoryOther || a.Published {
		t.Fatalf("unexpected article: %+v", a)
	}
	if env.store.UnreadCount() != 0 {
		t.Fatalf("draft creation must not notify")
	}
}

func TestAdminHandler_UpdateArticle(t *testing.T) {
	env := newTestEnv(t)
	h := newAdminHandler(env)

	rec, err := env.do(h.UpdateArticle, call{
		method: http.MethodPatch,
		path:   "/v1/admin/articles/3",
		body:   `{"name":"T-Shirt Urban","stock":0}`,
		params: map[string]string{"id": "3"},
	})
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	a := decode[domain.Article](t, rec)
	if a.Name != "T-Shirt Urban" || a.Stock != 0 || a.PriceFC != 15000 {
		t.Fatalf("unexpected article: %+v", a)
	}
	if !a.UpdatedAt.Equal(env.clock.Now()) {
		t.Fatalf("updated_at not refreshed: %v", a.UpdatedAt)
	}

	_, err = env.do(h.UpdateArticle, call{
		method: http.MethodPatch,
		path:   "/v1/admin/articles/404",
		body:   `{"name":"Ghost"}`,
		params: map[string]string{"id": "404"},
	})
	if !errors.Is(err, domain.ErrArticleNotFound) {
		t.Fatalf("expected ErrArticleNotFound, got %v", err)
	}
}

func TestAdminHandler_PublishAndDelete(t *testing.T) {
	env := newTestEnv(t)
	draft, err := env.store.AddArticle(context.Background(), domain.ArticleInput{Name: "Brouillon", PriceFC: 1000, PriceUSD: 1})
	if err != nil {
		t.Fatalf("add article: %v", err)
	}
	h := newAdminHandler(env)
	byID := map[string]string{"id": draft.ID}

	rec, err := env.do(h.PublishArticle, call{method: http.MethodPost, path: "/v1/admin/articles/" + draft.ID + "/publish", params: byID})
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if a := decode[domain.Article](t, rec); !a.Published {
		t.Fatalf("article not published")
	}
	notes := env.store.Notifications()
	if len(notes) != 1 || !strings.HasPrefix(notes[0].Message, "📢 Article publié: Brouillon") {
		t.Fatalf("unexpected notifications: %+v", notes)
	}

	rec, err = env.do(h.DeleteArticle, call{method: http.MethodDelete, path: "/v1/admin/articles/" + draft.ID, params: byID})
	if err != nil || rec.Code != http.StatusNoContent {
		t.Fatalf("delete: code=%d err=%v", rec.Code, err)
	}
	if _, ok := env.store.Article(draft.ID); ok {
		t.Fatalf("article still present")
	}
	if len(env.store.Notifications()) != 1 {
		t.Fatalf("notifications must survive article deletion")
	}

	_, err = env.do(h.DeleteArticle, call{method: http.MethodDelete, path: "/v1/admin/articles/" + draft.ID, params: byID})
	if !errors.Is(err, domain.ErrArticleNotFound) {
		t.Fatalf("expected ErrArticleNotFound, got %v", err)
	}
}

func TestAdminHandler_RefreshAndDeleteCatalog(t *testing.T) {
	env := newTestEnv(t)
	h := newAdminHandler(env)

	rec, err := env.do(h.RefreshArticles, call{method: http.MethodPost, path: "/v1/admin/articles/refresh"})
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if list := decode[[]domain.Article](t, rec); len(list) != 6 {
		t.Fatalf("expected 6 articles, got %d", len(list))
	}

	rec, err = env.do(h.DeleteCatalog, call{method: http.MethodDelete, path: "/v1/admin/articles"})
	if err != nil || rec.Code != http.StatusNoContent {
		t.Fatalf("delete catalog: code=%d err=%v", rec.Code, err)
	}
	if len(env.store.Articles()) != 0 {
		t.Fatalf("catalog not wiped")
	}
}

func TestAdminHandler_UpdateSettings(t *testing.T) {
	env := newTestEnv(t)
	h := newAdminHandler(env)

	rec, err := env.do(h.UpdateSettings, call{
		method: http.MethodPatch,
		path:   "/v1/admin/settings",
		body:   `{"whatsapp_number":"+243810000000","maintenance":true}`,
	})
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	s := decode[domain.BoutiqueSettings](t, rec)
	if s.WhatsappNumber != "+243810000000" || !s.Maintenance || s.Name != "Ma Boutique Mode" {
		t.Fatalf("unexpected settings: %+v", s)
	}
}

func TestAdminHandler_Orders(t *testing.T) {
	env := newTestEnv(t)
	order, err := env.store.AddOrder(context.Background(), domain.OrderInput{ClientID: "c1", ArticleID: "1", ArticleName: "Robe Élégante Soirée"})
	if err != nil {
		t.Fatalf("add order: %v", err)
	}
	h := newAdminHandler(env)
	byID := map[string]string{"id": order.ID}

	rec, err := env.do(h.ListOrders, call{method: http.MethodGet, path: "/v1/admin/orders"})
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}
	if list := decode[[]domain.Order](t, rec); len(list) != 1 {
		t.Fatalf("expected 1 order, got %d", len(list))
	}

	_, err = env.do(h.UpdateOrderStatus, call{method: http.MethodPatch, path: "/v1/admin/orders/x/status", body: `{"status":"delivered"}`, params: byID})
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}

	_, err = env.do(h.UpdateOrderStatus, call{method: http.MethodPatch, path: "/v1/admin/orders/x/status", body: `{"status":"shipped"}`, params: byID})
	if code := httpCode(t, err); code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", code)
	}

	rec, err = env.do(h.UpdateOrderStatus, call{method: http.MethodPatch, path: "/v1/admin/orders/x/status", body: `{"status":"confirmed"}`, params: byID})
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if o := decode[domain.Order](t, rec); o.Status != domain.OrderConfirmed {
		t.Fatalf("unexpected status %s", o.Status)
	}

	_, err = env.do(h.UpdateOrderStatus, call{method: http.MethodPatch, path: "/v1/admin/orders/x/status", body: `{"status":"confirmed"}`, params: map[string]string{"id": "nope"}})
	if !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestAdminHandler_ListClientsHidesPasswords(t *testing.T) {
	env := newTestEnv(t)
	env.registerClient(t, "+243810000000")
	h := newAdminHandler(env)

	rec, err := env.do(h.ListClients, call{method: http.MethodGet, path: "/v1/admin/clients"})
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if strings.Contains(rec.Body.String(), "pass1234") || strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("password leaked: %s", rec.Body.String())
	}
	if list := decode[[]clientResponse](t, rec); len(list) != 1 {
		t.Fatalf("expected 1 client, got %d", len(list))
	}
}

func TestAdminHandler_ChangePassword(t *testing.T) {
	env := newTestEnv(t)
	h := newAdminHandler(env)
	ctx := context.Background()

	_, err := env.do(h.ChangePassword, call{method: http.MethodPut, path: "/v1/admin/password", body: `{"current_password":"wrong","new_password":"s3cret!"}`})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	rec, err := env.do(h.ChangePassword, call{method: http.MethodPut, path: "/v1/admin/password", body: `{"current_password":"admin123","new_password":"s3cret!"}`})
	if err != nil || rec.Code != http.StatusNoContent {
		t.Fatalf("change password: code=%d err=%v", rec.Code, err)
	}
	if env.store.LoginAdmin(ctx, "admin", "admin123") || !env.store.LoginAdmin(ctx, "admin", "s3cret!") {
		t.Fatalf("password not rotated")
	}
}

func TestAdminHandler_Stats(t *testing.T) {
	env := newTestEnv(t)
	env.registerClient(t, "+243810000000")
	if _, err := env.store.AddArticle(context.Background(), domain.ArticleInput{Name: "Brouillon"}); err != nil {
		t.Fatalf("add article: %v", err)
	}
	h := newAdminHandler(env)

	rec, err := env.do(h.Stats, call{method: http.MethodGet, path: "/v1/admin/stats"})
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	want := ports.Stats{TotalArticles: 7, PublishedArticles: 6, TotalClients: 1}
	if got := decode[ports.Stats](t, rec); got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}
