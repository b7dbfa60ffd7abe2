// Package pagingqueue implements the per-cell paging queue store:
// G = MaxPagingBlocksCCCH*MaxBSPAMFRMS FIFO queues, one per paging
// sub-channel, with duplicate detection and a global capacity cap.
//
// Grounded on internal/queue/queue.go's map-of-slices FIFO shape,
// generalized from a single dynamic key space to the fixed 81-slot array
// spec.md §3 requires, and extended with the head-insert/tail-append and
// duplicate-refresh discipline of spec.md §4.2.
package pagingqueue

import (
	"errors"

	"github.com/gsm-bts/pager/internal/pagingconst"
	"github.com/gsm-bts/pager/internal/pagingrecord"
)

var (
	// ErrQueueFull is returned when num_paging has reached num_paging_max.
	ErrQueueFull = errors.New("pagingqueue: queue full")
	// ErrDuplicate is returned (advisory, non-fatal) when an identical
	// identity is already queued; its expiration is refreshed instead.
	ErrDuplicate = errors.New("pagingqueue: duplicate identity, expiration refreshed")
	// ErrTooBig is returned when identity_lv[0] exceeds the 8-byte cap.
	ErrTooBig = errors.New("pagingqueue: identity LV too big")
	// ErrBadGroup is returned for a paging group index outside [0, G).
	ErrBadGroup = errors.New("pagingqueue: paging group out of range")
)

// Store holds the G fixed FIFO queues and the running capacity count.
// It is not safe for concurrent use; spec.md §5 places it behind the
// BTS's single-threaded event loop, and callers that split producer and
// consumer across goroutines must add their own mutual exclusion.
type Store struct {
	groups       [pagingconst.TotalQueueSlots][]pagingrecord.Record
	numPaging    int
	numPagingMax int
}

// NewStore creates an empty store with the given capacity cap.
func NewStore(numPagingMax int) *Store {
	return &Store{numPagingMax: numPagingMax}
}

// NumPaging returns the running total of queued records across all groups.
func (s *Store) NumPaging() int {
	return s.numPaging
}

// Add enqueues a new paging attempt for the given group (spec.md §4.2).
//
// On ErrDuplicate, the existing record's expiration is refreshed to
// rec.ExpirationTime and no new record is created; callers must treat this
// as non-fatal, not as an add failure.
func (s *Store) Add(group int, rec pagingrecord.Record) error {
	if group < 0 || group >= len(s.groups) {
		return ErrBadGroup
	}
	if s.numPaging >= s.numPagingMax {
		return ErrQueueFull
	}

	q := s.groups[group]
	for i := range q {
		if q[i].Equal(rec) {
			q[i].ExpirationTime = rec.ExpirationTime
			return ErrDuplicate
		}
	}

	if len(rec.IdentityLV) == 0 || int(rec.IdentityLV[0]) > pagingconst.MaxIdentityDataBytes {
		return ErrTooBig
	}

	// Head insertion: a newly requested identity is paged in the very
	// next block rather than waiting behind queue buildup.
	s.groups[group] = append([]pagingrecord.Record{rec}, q...)
	s.numPaging++
	return nil
}

// DrainHead removes up to n records from the head of the given group's
// queue, in FIFO order, for the scheduler to classify and emit.
func (s *Store) DrainHead(group int, n int) []pagingrecord.Record {
	if group < 0 || group >= len(s.groups) || n <= 0 {
		return nil
	}
	q := s.groups[group]
	if n > len(q) {
		n = len(q)
	}
	drained := make([]pagingrecord.Record, n)
	copy(drained, q[:n])
	s.groups[group] = q[n:]
	return drained
}

// RequeueTail appends a record back to the tail of the given group's
// queue — the opposite end from Add, so recently-served records drop
// behind freshly-added ones (spec.md §4.4).
func (s *Store) RequeueTail(group int, rec pagingrecord.Record) {
	if group < 0 || group >= len(s.groups) {
		return
	}
	s.groups[group] = append(s.groups[group], rec)
}

// Retire drops a record that the scheduler decided not to re-queue,
// decrementing the running total.
func (s *Store) Retire() {
	s.numPaging--
}

// Reset drops all records from every group (spec.md §4.2). It returns the
// number of records that were present before the drop, so callers can log
// the internal-consistency canary the source's paging_reset does.
func (s *Store) Reset() int {
	dropped := s.numPaging
	for i := range s.groups {
		s.groups[i] = nil
	}
	s.numPaging = 0
	return dropped
}

// QueueLength returns the total number of records across all groups.
func (s *Store) QueueLength() int {
	total := 0
	for i := range s.groups {
		total += len(s.groups[i])
	}
	return total
}

// GroupEmpty reports whether the given group's queue has no records.
func (s *Store) GroupEmpty(group int) bool {
	if group < 0 || group >= len(s.groups) {
		return true
	}
	return len(s.groups[group]) == 0
}
