package telegrambot

import (
	"sync"

	"github.com/google/uuid"
)

// Conversation states for the /recommend flow.
type sessionState int

const (
	stateAwaitingLanguage sessionState = iota
	stateAwaitingCountry
)

// session holds the pending answers of one /recommend conversation. Sessions
// are created on /recommend and destroyed on completion, cancellation, or
// terminal failure.
type session struct {
	id       string
	state    sessionState
	language string
}

// answerOutcome is how a conversation advances after a user answer.
type answerOutcome int

const (
	// outcomeNone: no active session, or the answer did not apply.
	outcomeNone answerOutcome = iota
	// outcomeAskCountry: language recorded, country question is next.
	outcomeAskCountry
	// outcomeFinish: country answered, session consumed, run the pipeline.
	outcomeFinish
)

// sessionStore keeps the active session per chat. Updates are dispatched
// concurrently (including several for the same chat), so all session reads
// and writes happen under the store lock; callers only ever see value copies.
type sessionStore struct {
	mu       sync.Mutex
	sessions map[int64]*session
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: make(map[int64]*session)}
}

// begin starts a fresh session for the chat, replacing any session already in
// progress there.
func (s *sessionStore) begin(chatID int64) session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := &session{
		id:    uuid.NewString(),
		state: stateAwaitingLanguage,
	}
	s.sessions[chatID] = sess

	return *sess
}

func (s *sessionStore) get(chatID int64) (session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[chatID]
	if !ok {
		return session{}, false
	}

	return *sess, true
}

func (s *sessionStore) end(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, chatID)
}

// answer applies a user answer to the chat's session and reports how the
// conversation advances. The state read and transition happen atomically, so
// two near-simultaneous answers from one chat land in distinct states. A
// finishing answer consumes the session, so the pipeline runs at most once.
func (s *sessionStore) answer(chatID int64, text string) (session, answerOutcome) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[chatID]
	if !ok {
		return session{}, outcomeNone
	}

	switch sess.state {
	case stateAwaitingLanguage:
		sess.language = text
		sess.state = stateAwaitingCountry

		return *sess, outcomeAskCountry
	case stateAwaitingCountry:
		delete(s.sessions, chatID)

		return *sess, outcomeFinish
	}

	return session{}, outcomeNone
}
