package pagingqueue_test

import (
	"testing"
	"time"

	"github.com/gsm-bts/pager/internal/pagingqueue"
	"github.com/gsm-bts/pager/internal/pagingrecord"
)

func rec(lv []byte) pagingrecord.Record {
	return pagingrecord.Record{
		IdentityLV:     lv,
		ChanNeeded:     0,
		ExpirationTime: time.Unix(1000, 0),
	}
}

func TestNewStore(t *testing.T) {
	t.Parallel()
	s := pagingqueue.NewStore(10)
	if s == nil {
		t.Fatal("Expected non-nil store")
	}
	if s.QueueLength() != 0 {
		t.Errorf("Expected empty store, got length %d", s.QueueLength())
	}
}

func TestAddAndDrain(t *testing.T) {
	t.Parallel()
	s := pagingqueue.NewStore(10)

	err := s.Add(0, rec([]byte{0x05, 0xF4, 0x11, 0x22, 0x33, 0x44}))
	if err != nil {
		t.Fatalf("Unexpected error on Add: %v", err)
	}
	if s.QueueLength() != 1 {
		t.Errorf("Expected length 1, got %d", s.QueueLength())
	}

	drained := s.DrainHead(0, 4)
	if len(drained) != 1 {
		t.Fatalf("Expected 1 drained record, got %d", len(drained))
	}
	if s.GroupEmpty(0) != true {
		t.Errorf("Expected group 0 empty after drain")
	}
}

func TestAddHeadOrder(t *testing.T) {
	t.Parallel()
	s := pagingqueue.NewStore(10)

	_ = s.Add(0, rec([]byte{0x05, 0xF4, 0x00, 0x00, 0x00, 0x01}))
	_ = s.Add(0, rec([]byte{0x05, 0xF4, 0x00, 0x00, 0x00, 0x02}))

	drained := s.DrainHead(0, 2)
	if len(drained) != 2 {
		t.Fatalf("Expected 2 drained records, got %d", len(drained))
	}
	// Second add is inserted at the head, so it drains first.
	if drained[0].IdentityLV[5] != 0x02 {
		t.Errorf("Expected head insertion order, got %v", drained)
	}
}

func TestAddDuplicateRefreshesExpiration(t *testing.T) {
	t.Parallel()
	s := pagingqueue.NewStore(10)
	lv := []byte{0x05, 0xF4, 0x11, 0x22, 0x33, 0x44}

	_ = s.Add(0, rec(lv))
	later := time.Unix(2000, 0)
	err := s.Add(0, pagingrecord.Record{IdentityLV: lv, ExpirationTime: later})
	if err != pagingqueue.ErrDuplicate {
		t.Fatalf("Expected ErrDuplicate, got %v", err)
	}
	if s.QueueLength() != 1 {
		t.Errorf("Expected length 1 after duplicate add, got %d", s.QueueLength())
	}

	drained := s.DrainHead(0, 1)
	if !drained[0].ExpirationTime.Equal(later) {
		t.Errorf("Expected refreshed expiration %v, got %v", later, drained[0].ExpirationTime)
	}
}

func TestAddFullQueueLeavesCountUnchanged(t *testing.T) {
	t.Parallel()
	s := pagingqueue.NewStore(2)

	_ = s.Add(0, rec([]byte{0x05, 0xF4, 0, 0, 0, 1}))
	_ = s.Add(1, rec([]byte{0x05, 0xF4, 0, 0, 0, 2}))
	err := s.Add(2, rec([]byte{0x05, 0xF4, 0, 0, 0, 3}))
	if err != pagingqueue.ErrQueueFull {
		t.Fatalf("Expected ErrQueueFull, got %v", err)
	}
	if s.QueueLength() != 2 {
		t.Errorf("Expected length 2, got %d", s.QueueLength())
	}
}

func TestAddTooBig(t *testing.T) {
	t.Parallel()
	s := pagingqueue.NewStore(10)
	lv := make([]byte, 1)
	lv[0] = 9 // 9 data bytes exceeds the 8-byte cap
	err := s.Add(0, rec(lv))
	if err != pagingqueue.ErrTooBig {
		t.Fatalf("Expected ErrTooBig, got %v", err)
	}
}

func TestRequeueTail(t *testing.T) {
	t.Parallel()
	s := pagingqueue.NewStore(10)
	_ = s.Add(0, rec([]byte{0x05, 0xF4, 0, 0, 0, 1}))
	_ = s.Add(0, rec([]byte{0x05, 0xF4, 0, 0, 0, 2}))

	drained := s.DrainHead(0, 1)
	s.RequeueTail(0, drained[0])

	remaining := s.DrainHead(0, 2)
	if remaining[1].IdentityLV[5] != drained[0].IdentityLV[5] {
		t.Errorf("Expected re-queued record at tail, got %v", remaining)
	}
}

func TestReset(t *testing.T) {
	t.Parallel()
	s := pagingqueue.NewStore(10)
	_ = s.Add(0, rec([]byte{0x05, 0xF4, 0, 0, 0, 1}))
	_ = s.Add(1, rec([]byte{0x05, 0xF4, 0, 0, 0, 2}))

	dropped := s.Reset()
	if dropped != 2 {
		t.Errorf("Expected 2 dropped, got %d", dropped)
	}
	if s.QueueLength() != 0 {
		t.Errorf("Expected empty store after reset, got %d", s.QueueLength())
	}
}

func TestGroupEmptyOutOfRange(t *testing.T) {
	t.Parallel()
	s := pagingqueue.NewStore(10)
	if !s.GroupEmpty(9999) {
		t.Errorf("Expected out-of-range group to report empty")
	}
}
