package value

import "github.com/google/uuid"

// NewGeneratedID builds an ID value whose value component is a freshly
// generated UUID, for callers that want a unique reference without
// managing id allocation themselves (session ids, correlation ids, and
// similar agent-message fields).
func NewGeneratedID(prefix string) Value {
	return NewID(prefix, uuid.NewString())
}
