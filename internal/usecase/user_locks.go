package usecase

import "sync"

// userLocks serializes submissions per user id inside this process.
// Submissions for different users do not block each other. Cross-process
// serialization is the repository's job (row lock), this keeps the common
// single-instance deployment from even reaching lock contention in Postgres.
type userLocks struct {
	mu    sync.Mutex
	locks map[string]*userLock
}

type userLock struct {
	mu   sync.Mutex
	refs int
}

func newUserLocks() *userLocks {
	return &userLocks{locks: make(map[string]*userLock)}
}

func (l *userLocks) lock(userID string) {
	l.mu.Lock()
	ul, ok := l.locks[userID]
	if !ok {
		ul = &userLock{}
		l.locks[userID] = ul
	}
	ul.refs++
	l.mu.Unlock()

	ul.mu.Lock()
}

func (l *userLocks) unlock(userID string) {
	l.mu.Lock()
	ul, ok := l.locks[userID]
	if ok {
		ul.refs--
		if ul.refs <= 0 {
			delete(l.locks, userID)
		}
	}
	l.mu.Unlock()

	if ok {
		ul.mu.Unlock()
	}
}
