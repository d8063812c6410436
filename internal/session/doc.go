// Package session holds the terminal client's authentication state.
//
// A [Session] mirrors what a browser single-page app would keep in memory
// plus localStorage: the current user, the bearer token, and a loading flag
// that is true until the persisted state has been read back. The persisted
// half lives in a single-row SQLite database next to the executable, so a
// signed-in user stays signed in across client restarts.
package session
