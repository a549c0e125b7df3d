package telegrambot

import (
	"sync"
	"time"
)

const (
	defaultPollTTL = 24 * time.Hour
	defaultPollCap = 1000
)

type pollEntry struct {
	chatID    int64
	expiresAt time.Time
}

// PollRegistry maps externally issued poll identifiers to the chat that
// originated them, so an asynchronous vote-tally event can be routed back.
//
// The registry is bounded: entries expire after a TTL, the oldest entry is
// evicted when the cap is reached, and a successful Resolve removes the
// entry (the tally event consumes the mapping exactly once).
type PollRegistry struct {
	mu      sync.Mutex
	entries map[string]pollEntry
	ttl     time.Duration
	cap     int
	now     func() time.Time
}

// NewPollRegistry creates a registry. Zero or negative values fall back to a
// 24h TTL and a 1000-entry cap.
func NewPollRegistry(ttl time.Duration, capacity int) *PollRegistry {
	if ttl <= 0 {
		ttl = defaultPollTTL
	}

	if capacity <= 0 {
		capacity = defaultPollCap
	}

	return &PollRegistry{
		entries: make(map[string]pollEntry),
		ttl:     ttl,
		cap:     capacity,
		now:     time.Now,
	}
}

// Register records the originating chat for a poll.
func (r *PollRegistry) Register(pollID string, chatID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.evictExpiredLocked()

	if len(r.entries) >= r.cap {
		r.evictOldestLocked()
	}

	r.entries[pollID] = pollEntry{
		chatID:    chatID,
		expiresAt: r.now().Add(r.ttl),
	}
}

// Resolve returns the chat a poll was posted to and removes the mapping.
// The second return value is false for unknown or expired polls.
func (r *PollRegistry) Resolve(pollID string) (int64, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[pollID]
	if !ok {
		return 0, false
	}

	delete(r.entries, pollID)

	if r.now().After(entry.expiresAt) {
		return 0, false
	}

	return entry.chatID, true
}

// Len returns the number of live registrations.
func (r *PollRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.entries)
}

func (r *PollRegistry) evictExpiredLocked() {
	now := r.now()
	for id, entry := range r.entries {
		if now.After(entry.expiresAt) {
			delete(r.entries, id)
		}
	}
}

func (r *PollRegistry) evictOldestLocked() {
	var (
		oldestID string
		oldestAt time.Time
	)

	for id, entry := range r.entries {
		if oldestID == "" || entry.expiresAt.Before(oldestAt) {
			oldestID = id
			oldestAt = entry.expiresAt
		}
	}

	if oldestID != "" {
		delete(r.entries, oldestID)
	}
}
