package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modeboutique/storefront/internal/core/domain"
)

func TestStore_AddArticle_PublishedEmitsNotification(t *testing.T) {
	f := newFixture(t, Options{})

	a, err := f.store.AddArticle(context.Background(), tshirt())
	require.NoError(t, err)
	require.NotEmpty(t, a.ID)
	assert.Equal(t, a.CreatedAt, a.UpdatedAt)
	assert.Equal(t, t0, a.CreatedAt)

	require.Len(t, f.store.Articles(), 1)
	require.Equal(t, 1, f.store.UnreadCount())

	n := f.store.Notifications()[0]
	assert.Equal(t, a.ID, n.ArticleID)
	assert.Equal(t, "T-Shirt", n.ArticleName)
	assert.Equal(t, "🆕 Nouvel article disponible: T-Shirt - 15000 FC / 8 USD", n.Message)
	assert.False(t, n.Read)
}

func TestStore_AddArticle_DraftIsSilent(t *testing.T) {
	f := newFixture(t, Options{})
	in := tshirt()
	in.Published = false

	_, err := f.store.AddArticle(context.Background(), in)
	require.NoError(t, err)
	require.Empty(t, f.store.Notifications())
}

func TestStore_AddArticle_PrependsAndNormalizesCategory(t *testing.T) {
	f := newFixture(t, Options{})
	ctx := context.Background()

	first, err := f.store.AddArticle(ctx, tshirt())
	require.NoError(t, err)
	in := tshirt()
	in.Name = "Ceinture"
	in.Category = ""
	second, err := f.store.AddArticle(ctx, in)
	require.NoError(t, err)

	list := f.store.Articles()
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
	assert.Equal(t, domain.CategoryOther, list[0].Category)
	assert.Equal(t, []string{}, list[0].Images)
}

func TestStore_AddArticle_RejectsInvalid(t *testing.T) {
	f := newFixture(t, Options{})
	in := tshirt()
	in.PriceFC = -1

	_, err := f.store.AddArticle(context.Background(), in)
	require.ErrorIs(t, err, domain.ErrInvalidArticle)
	require.Equal(t, 0, f.repo.callCount("create"))
}

func TestStore_AddArticle_GatewayFailureLeavesStateUntouched(t *testing.T) {
	f := newFixture(t, Options{})
	f.repo.createErr = errBackendDown

	_, err := f.store.AddArticle(context.Background(), tshirt())
	require.ErrorIs(t, err, errBackendDown)
	require.Empty(t, f.store.Articles())
	require.Empty(t, f.store.Notifications())
}

func TestStore_UpdateArticle_MergesAndStamps(t *testing.T) {
	f := newFixture(t, Options{})
	ctx := context.Background()
	a, err := f.store.AddArticle(ctx, tshirt())
	require.NoError(t, err)

	f.clock.Advance(time.Hour)
	stock := 3
	require.NoError(t, f.store.UpdateArticle(ctx, a.ID, domain.ArticlePatch{Stock: &stock}))

	got, ok := f.store.Article(a.ID)
	require.True(t, ok)
	assert.Equal(t, 3, got.Stock)
	assert.Equal(t, "T-Shirt", got.Name)
	assert.Equal(t, t0, got.CreatedAt)
	assert.Equal(t, t0.Add(time.Hour), got.UpdatedAt)
}

func TestStore_UpdateArticle_UnknownIDIsNoop(t *testing.T) {
	f := newFixture(t, Options{})
	name := "ghost"

	require.NoError(t, f.store.UpdateArticle(context.Background(), "missing", domain.ArticlePatch{Name: &name}))
	require.Equal(t, 0, f.repo.callCount("update"))
	require.Empty(t, f.store.Articles())
}

func TestStore_UpdateArticle_GatewayFailureKeepsPrior(t *testing.T) {
	f := newFixture(t, Options{})
	ctx := context.Background()
	a, err := f.store.AddArticle(ctx, tshirt())
	require.NoError(t, err)

	f.repo.updateErr = errBackendDown
	name := "Renamed"
	require.ErrorIs(t, f.store.UpdateArticle(ctx, a.ID, domain.ArticlePatch{Name: &name}), errBackendDown)

	got, _ := f.store.Article(a.ID)
	assert.Equal(t, "T-Shirt", got.Name)
}

func TestStore_DeleteArticle_KeepsNotificationsAndOrders(t *testing.T) {
	f := newFixture(t, Options{})
	ctx := context.Background()
	a, err := f.store.AddArticle(ctx, tshirt())
	require.NoError(t, err)
	_, err = f.store.AddOrder(ctx, domain.OrderInput{ArticleID: a.ID, ArticleName: a.Name})
	require.NoError(t, err)

	require.NoError(t, f.store.DeleteArticle(ctx, a.ID))

	_, ok := f.store.Article(a.ID)
	assert.False(t, ok)
	require.Len(t, f.store.Notifications(), 1)
	assert.Equal(t, "T-Shirt", f.store.Notifications()[0].ArticleName)
	require.Len(t, f.store.Orders(), 1)
}

func TestStore_PublishArticle_TwiceEmitsTwoNotifications(t *testing.T) {
	f := newFixture(t, Options{})
	ctx := context.Background()
	in := tshirt()
	in.Published = false
	a, err := f.store.AddArticle(ctx, in)
	require.NoError(t, err)

	require.NoError(t, f.store.PublishArticle(ctx, a.ID))
	require.NoError(t, f.store.PublishArticle(ctx, a.ID))

	ns := f.store.Notifications()
	require.Len(t, ns, 2)
	for _, n := range ns {
		assert.Equal(t, a.ID, n.ArticleID)
		assert.Equal(t, "📢 Article publié: T-Shirt - 15000 FC / 8 USD", n.Message)
	}
	assert.NotEqual(t, ns[0].ID, ns[1].ID)

	got, _ := f.store.Article(a.ID)
	assert.True(t, got.Published)
}

func TestStore_PublishArticle_UnknownIDIsNoop(t *testing.T) {
	f := newFixture(t, Options{})

	require.NoError(t, f.store.PublishArticle(context.Background(), "missing"))
	require.Empty(t, f.store.Notifications())
}

func TestStore_DeleteCatalog(t *testing.T) {
	f := newFixture(t, Options{})
	ctx := context.Background()
	for range 3 {
		_, err := f.store.AddArticle(ctx, tshirt())
		require.NoError(t, err)
	}

	require.NoError(t, f.store.DeleteCatalog(ctx))
	require.Empty(t, f.store.Articles())
	require.Len(t, f.store.Notifications(), 3)
}

func TestStore_RefetchAfterWrite_PicksUpRemoteChanges(t *testing.T) {
	f := newFixture(t, Options{RefetchAfterWrite: true})
	ctx := context.Background()
	a, err := f.store.AddArticle(ctx, tshirt())
	require.NoError(t, err)

	// Another admin adds an article straight to the backend.
	f.repo.articles = append([]domain.Article{{ID: "remote", Name: "Remote", Category: "Robes", Published: true}}, f.repo.articles...)

	stock := 1
	require.NoError(t, f.store.UpdateArticle(ctx, a.ID, domain.ArticlePatch{Stock: &stock}))

	_, ok := f.store.Article("remote")
	assert.True(t, ok)
	assert.Len(t, f.store.Articles(), 2)
}

func TestStore_Articles_ReturnsCopies(t *testing.T) {
	f := newFixture(t, Options{})
	_, err := f.store.AddArticle(context.Background(), tshirt())
	require.NoError(t, err)

	list := f.store.Articles()
	list[0].Name = "mutated"
	list[0].Sizes[0] = "XXS"

	again := f.store.Articles()
	assert.Equal(t, "T-Shirt", again[0].Name)
	assert.Equal(t, "M", again[0].Sizes[0])
}
