package session

import "errors"

var (
	// ErrNoStoredSession is returned by [Store.Load] when no persisted
	// session exists.
	ErrNoStoredSession = errors.New("no stored session")
)
