package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/seido-lab/chiron/pkg/domain/types"
)

// QueryID is a UUID-based identifier for a single query
type QueryID string

// NewQueryID generates a new UUID v7 QueryID
func NewQueryID() QueryID {
	return QueryID(uuid.Must(uuid.NewV7()).String())
}

// Query is a single normalized user question. It lives only for the duration
// of one pipeline run and is never persisted.
type Query struct {
	ID         QueryID
	Text       string
	ReceivedAt time.Time
}

// NewQuery creates a Query with a fresh ID and timestamp
func NewQuery(text string) *Query {
	return &Query{
		ID:         NewQueryID(),
		Text:       text,
		ReceivedAt: time.Now().UTC(),
	}
}

// Classification is the discrete routing decision for a query: exactly one
// namespace, or none. No confidence score is modeled.
type Classification struct {
	ID      types.NamespaceID
	Matched bool
}

// ClassificationMatched returns a Classification pointing at id
func ClassificationMatched(id types.NamespaceID) Classification {
	return Classification{ID: id, Matched: true}
}

// ClassificationUnmatched returns the no-match decision
func ClassificationUnmatched() Classification {
	return Classification{}
}

// Answer is the final output for a query. SourceNamespaceID is empty when the
// answer is the out-of-domain fallback.
type Answer struct {
	Text              string
	SourceNamespaceID types.NamespaceID
}
