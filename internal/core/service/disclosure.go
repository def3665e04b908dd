package service

import (
	"sync"
	"time"

	"github.com/modeboutique/storefront/internal/core/domain"
	"github.com/modeboutique/storefront/internal/pkg/clock"
)

// Admin credential disclosure: DisclosureClicks presses of the admin login
// action, each within DisclosureWindow of the previous one, reveal the
// credentials for DisclosureDisplay.
const (
	DisclosureClicks  = 5
	DisclosureWindow  = 4 * time.Second
	DisclosureDisplay = 10 * time.Second
)

// CredentialSource yields the credentials to disclose.
type CredentialSource func() (domain.AdminCredentials, error)

type clickState struct {
	count      int
	last       time.Time
	revealed   *domain.AdminCredentials
	revealedAt time.Time
}

// DisclosureGate counts admin-login presses per caller.
type DisclosureGate struct {
	mu     sync.Mutex
	clock  clock.Clock
	source CredentialSource
	states map[string]*clickState
}

func NewDisclosureGate(source CredentialSource, clk clock.Clock) *DisclosureGate {
	if clk == nil {
		clk = clock.RealClock{}
	}
	return &DisclosureGate{clock: clk, source: source, states: make(map[string]*clickState)}
}

// Click records one press from caller. It returns the credentials when this
// press completes the sequence; the counter then starts over.
func (g *DisclosureGate) Click(caller string) (*domain.AdminCredentials, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.clock.Now()
	g.prune(now)

	st, ok := g.states[caller]
	if !ok {
		st = &clickState{}
		g.states[caller] = st
	}
	if st.count > 0 && now.Sub(st.last) >= DisclosureWindow {
		st.count = 0
	}
	st.count++
	st.last = now

	if st.count < DisclosureClicks {
		return nil, false
	}
	st.count = 0

	creds, err := g.source()
	if err != nil {
		return nil, false
	}
	st.revealed = &creds
	st.revealedAt = now
	out := creds
	return &out, true
}

// Revealed returns the credentials disclosed to caller and how long they stay
// displayed.
func (g *DisclosureGate) Revealed(caller string) (*domain.AdminCredentials, time.Duration, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	st, ok := g.states[caller]
	if !ok || st.revealed == nil {
		return nil, 0, false
	}
	remaining := DisclosureDisplay - g.clock.Now().Sub(st.revealedAt)
	if remaining <= 0 {
		return nil, 0, false
	}
	out := *st.revealed
	return &out, remaining, true
}

// Reset clears caller's press count, as after a successful admin login.
func (g *DisclosureGate) Reset(caller string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if st, ok := g.states[caller]; ok {
		st.count = 0
	}
}

// prune drops callers with nothing pending. Must hold g.mu.
func (g *DisclosureGate) prune(now time.Time) {
	for k, st := range g.states {
		idle := now.Sub(st.last) >= DisclosureWindow
		shown := st.revealed != nil && now.Sub(st.revealedAt) < DisclosureDisplay
		if idle && !shown {
			delete(g.states, k)
		}
	}
}
