// Package pagingrecord holds the pending-paging-attempt data type and the
// Mobile Identity LV helpers the codec and scheduler share.
//
// Grounded on internal/models/packet.go's plain-struct-plus-free-function
// shape: no methods hide byte-level details, callers reach for
// ParseIdentity/TMSIBytes directly the way the teacher reaches for UnpackPacket.
package pagingrecord

import (
	"errors"
	"fmt"
	"time"

	"github.com/gsm-bts/pager/internal/pagingconst"
)

// Record is one pending paging attempt for a single subscriber identity.
type Record struct {
	IdentityLV     []byte
	ChanNeeded     uint8
	ExpirationTime time.Time
}

// Equal reports whether two records carry the identical identity.
// Duplicate detection (spec.md §4.2) compares IdentityLV byte-for-byte,
// length byte included.
func (r Record) Equal(other Record) bool {
	if len(r.IdentityLV) != len(other.IdentityLV) {
		return false
	}
	for i := range r.IdentityLV {
		if r.IdentityLV[i] != other.IdentityLV[i] {
			return false
		}
	}
	return true
}

func (r Record) String() string {
	return fmt.Sprintf("Record: identity=% X chanNeeded=%d expires=%s",
		r.IdentityLV, r.ChanNeeded, r.ExpirationTime.Format(time.RFC3339))
}

var (
	// ErrEmptyIdentity is returned by ParseIdentity for a zero-length LV.
	ErrEmptyIdentity = errors.New("pagingrecord: empty identity LV")
	// ErrTooBig is returned when identity_lv[0] exceeds the 8-byte data cap.
	ErrTooBig = errors.New("pagingrecord: identity LV exceeds 8 data bytes")
)

// ParseIdentity validates lv and returns the identity type carried in the
// low 3 bits of lv[1] (spec.md §3).
func ParseIdentity(lv []byte) (pagingconst.IdentityType, error) {
	if len(lv) == 0 {
		return 0, ErrEmptyIdentity
	}
	if lv[0] > pagingconst.MaxIdentityDataBytes {
		return 0, ErrTooBig
	}
	if len(lv) < 2 {
		return 0, ErrEmptyIdentity
	}
	return pagingconst.IdentityType(lv[1] & 7), nil
}

// IsIMSI reports whether lv carries an IMSI identity. Any parse failure is
// treated as "not an IMSI", matching the C source's pr_is_imsi, which only
// ever inspects an already-validated record.
func IsIMSI(lv []byte) bool {
	t, err := ParseIdentity(lv)
	return err == nil && t == pagingconst.IdentityTypeIMSI
}

// TMSIBytes extracts the four wire-order TMSI bytes from a Mobile Identity
// LV, per spec.md §4.3: length must be 5 (one type-nibble byte plus four
// TMSI bytes) and the type nibble must read TMSI.
//
// The on-wire byte order is the canonical contract (spec.md §9, open
// question 2): these four bytes are copied verbatim into the emitted
// message's TMSI field, never byte-swapped.
func TMSIBytes(lv []byte) ([4]byte, bool) {
	var out [4]byte
	if len(lv) < 6 || lv[0] != 5 {
		return out, false
	}
	if lv[1]&7 != uint8(pagingconst.IdentityTypeTMSI) {
		return out, false
	}
	copy(out[:], lv[2:6])
	return out, true
}
