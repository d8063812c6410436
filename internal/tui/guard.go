// SPDX-License-Identifier: Apache-2.0

package tui

import "github.com/mnpat/go-portfolio/internal/session"

// Route describes the access requirements of a screen.
type Route struct {
	// Name identifies the screen for navigation and logging.
	Name string

	// RequiresAuth marks screens that only signed-in users may open.
	RequiresAuth bool

	// AdminOnly marks screens that additionally require the admin role.
	// Implies RequiresAuth.
	AdminOnly bool
}

// GuardDecision is the outcome of evaluating a route against the current
// session state.
type GuardDecision int

const (
	// DecisionRender lets the requested screen draw.
	DecisionRender GuardDecision = iota

	// DecisionWait keeps a placeholder on screen because session hydration
	// has not finished. No access decision may be made yet: deciding early
	// would bounce a restored user through the sign-in screen on every
	// start.
	DecisionWait

	// DecisionRedirectSignIn sends an unauthenticated user to the sign-in
	// screen.
	DecisionRedirectSignIn

	// DecisionDenied shows the access-denied view in place. The user is
	// authenticated but lacks the admin role; redirecting them to sign-in
	// would be wrong because signing in again with the same account cannot
	// help.
	DecisionDenied
)

// Guard evaluates route access against the session.
//
// The checks are ordered: hydration first, then authentication, then role.
// The role check never runs before authentication is settled, so an
// anonymous user always lands on sign-in rather than an admin-denial view.
type Guard struct {
	session *session.Session
}

// NewGuard constructs a [Guard] over the given session.
func NewGuard(s *session.Session) *Guard {
	return &Guard{session: s}
}

// Evaluate returns the access decision for route given the session's
// current state. Public routes render regardless of session state, loading
// included.
func (g *Guard) Evaluate(route Route) GuardDecision {
	requiresAuth := route.RequiresAuth || route.AdminOnly
	if !requiresAuth {
		return DecisionRender
	}

	if g.session.Loading() {
		return DecisionWait
	}

	if !g.session.IsAuthenticated() {
		return DecisionRedirectSignIn
	}

	if route.AdminOnly && !g.session.IsAdmin() {
		return DecisionDenied
	}

	return DecisionRender
}
