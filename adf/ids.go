package adf

import (
	"strconv"

	"github.com/google/uuid"
)

// IDGenerator hands out localId values for task lists and task items.
// Implementations need only be unique within one document and are used
// from a single goroutine.
type IDGenerator interface {
	NewID() string
}

// IDGeneratorFunc creates a fresh IDGenerator for each conversion.
type IDGeneratorFunc func() IDGenerator

// UUIDs generates random version 4 UUIDs.
type UUIDs struct{}

// NewID returns a new random UUID string.
func (UUIDs) NewID() string {
	return uuid.NewString()
}

// NewUUIDs is an IDGeneratorFunc yielding random UUIDs.
func NewUUIDs() IDGenerator {
	return UUIDs{}
}

// Sequence generates "<prefix>1", "<prefix>2", ... in call order.
// Output is reproducible for identical input.
type Sequence struct {
	prefix string
	next   int
}

// NewSequence returns a Sequence starting at 1.
func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix, next: 1}
}

// NewID returns the next identifier.
func (s *Sequence) NewID() string {
	id := s.prefix + strconv.Itoa(s.next)
	s.next++
	return id
}

// SequenceFunc returns an IDGeneratorFunc creating a new Sequence per call.
func SequenceFunc(prefix string) IDGeneratorFunc {
	return func() IDGenerator { return NewSequence(prefix) }
}
