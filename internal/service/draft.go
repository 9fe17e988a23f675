package service

import "github.com/ellisbraun/haven/internal/domain"

// SessionStatus tracks where a draft session sits in its lifecycle.
type SessionStatus string

const (
	// StatusEmpty means the session holds no draft, either because nothing
	// was generated yet or because a draft was discarded or committed.
	StatusEmpty SessionStatus = "empty"
	// StatusPreviewing means a draft is held in memory awaiting swap,
	// commit, or discard.
	StatusPreviewing SessionStatus = "previewing"
)

// DraftSession holds one in-memory plan draft between generation and commit.
// Nothing in it touches the calendar until Commit; a failed commit leaves the
// session in previewing state so the draft is not lost.
type DraftSession struct {
	UserID  string
	Events  []domain.DraftEvent
	Context domain.AssessmentContext
	Status  SessionStatus
}

// NewDraftSession returns an empty session for the user.
func NewDraftSession(userID string) *DraftSession {
	return &DraftSession{UserID: userID, Status: StatusEmpty}
}

// Clear drops the draft and returns the session to its empty state.
func (s *DraftSession) Clear() {
	s.Events = nil
	s.Context = domain.AssessmentContext{}
	s.Status = StatusEmpty
}
