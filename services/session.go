package services

import "sync"

// SessionStore maps sender identities to their chosen locale. Sessions
// live in process memory only: a restart forgets everyone and they are
// re-prompted for a language on their next message.
//
// Get/Set/Delete are atomic with respect to each other; the engine never
// holds the lock across external calls.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]Locale
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]Locale),
	}
}

// Get returns the locale for a sender, or false if the sender has not
// completed locale selection.
func (s *SessionStore) Get(sender string) (Locale, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	locale, ok := s.sessions[sender]
	return locale, ok
}

// Set records the sender's locale, overwriting any existing entry.
func (s *SessionStore) Set(sender string, locale Locale) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sender] = locale
}

// Delete removes the sender's session. Deleting an absent sender is a no-op.
func (s *SessionStore) Delete(sender string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sender)
}

// Count reports the number of active sessions, for the health endpoint.
func (s *SessionStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
