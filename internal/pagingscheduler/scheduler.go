// Package pagingscheduler implements the per-block entry point: resolve
// the target group, dequeue up to four records, run the format-selection
// policy, invoke the codec, and apply the re-queue/expire discipline.
//
// Grounded on original_source/src/common/paging.c's paging_gen_msg and, for
// the dispatch-then-branch-then-act shape, internal/dmr/servers/hbrp's
// packet_handlers.go.
package pagingscheduler

import (
	"time"

	"github.com/gsm-bts/pager/internal/pagingcodec"
	"github.com/gsm-bts/pager/internal/pagingconfig"
	"github.com/gsm-bts/pager/internal/pagingmapper"
	"github.com/gsm-bts/pager/internal/pagingqueue"
	"github.com/gsm-bts/pager/internal/pagingrecord"
)

// Outcome reports what Generate did, for the caller's metrics/logging.
type Outcome struct {
	Group       int
	Format      string // "empty", "type1", "type2", "type3"
	NumSelected int
	NumRetired  int
	NumRequeued int
}

// Generate resolves the paging block for ft, drains up to four records
// from its queue, selects a message format, encodes it into out (which
// must be at least pagingconst.MACBlockLen bytes), and applies the
// re-queue/expire discipline (spec.md §4.4). It always writes exactly
// pagingconst.MACBlockLen bytes on success.
func Generate(store *pagingqueue.Store, desc pagingconfig.CcchDescriptor, ft pagingmapper.FrameTime, now time.Time, out []byte) (int, Outcome, error) {
	group, err := pagingmapper.Map(ft, desc)
	if err != nil {
		return 0, Outcome{}, err
	}

	if store.GroupEmpty(group) {
		n := pagingcodec.EncodeEmptyType1(out)
		return pagingcodec.Pad(out, n), Outcome{Group: group, Format: "empty"}, nil
	}

	drained := store.DrainHead(group, 4)
	numPR := len(drained)

	numIMSI := 0
	for i := range drained {
		if pagingrecord.IsIMSI(drained[i].IdentityLV) {
			numIMSI++
		}
	}

	sortTMSIFirst(drained)

	// present[i] tracks whether drained[i] is still awaiting the
	// expiration check below; entries re-queued immediately by the
	// format ladder are marked false.
	present := make([]bool, numPR)
	for i := range present {
		present[i] = true
	}

	var n int
	var format string
	switch {
	case numPR == 4 && numIMSI == 0:
		format = "type3"
		n, err = pagingcodec.EncodeType3(out,
			drained[0].IdentityLV, drained[0].ChanNeeded,
			drained[1].IdentityLV, drained[1].ChanNeeded,
			drained[2].IdentityLV, drained[3].IdentityLV)
	case numPR >= 3 && numIMSI <= 1:
		format = "type2"
		n, err = pagingcodec.EncodeType2(out,
			drained[0].IdentityLV, drained[0].ChanNeeded,
			drained[1].IdentityLV, drained[1].ChanNeeded,
			drained[2].IdentityLV)
		if numPR == 4 {
			store.RequeueTail(group, drained[3])
			present[3] = false
		}
	case numPR == 1:
		format = "type1"
		n = pagingcodec.EncodeType1(out, drained[0].IdentityLV, drained[0].ChanNeeded, nil, 0)
	default:
		// 2 of any kind, or 3/4 with >=2 IMSIs: only the first two ride
		// this block; anything beyond is re-queued for next time.
		format = "type1"
		n = pagingcodec.EncodeType1(out,
			drained[0].IdentityLV, drained[0].ChanNeeded,
			drained[1].IdentityLV, drained[1].ChanNeeded)
		if numPR >= 3 {
			store.RequeueTail(group, drained[2])
			present[2] = false
		}
		if numPR == 4 {
			store.RequeueTail(group, drained[3])
			present[3] = false
		}
	}
	if err != nil {
		return 0, Outcome{}, err
	}

	numRetired, numRequeued := 0, 0
	for i := range drained {
		if !present[i] {
			numRequeued++
			continue
		}
		// Literal source comparison, preserved as specified (spec.md §9,
		// open question 1): a record is retired when its expiration has
		// NOT yet passed, and re-queued once it actually has.
		if !drained[i].ExpirationTime.Before(now) {
			store.Retire()
			numRetired++
		} else {
			store.RequeueTail(group, drained[i])
			numRequeued++
		}
	}

	length := pagingcodec.Pad(out, n)
	return length, Outcome{
		Group:       group,
		Format:      format,
		NumSelected: numPR,
		NumRetired:  numRetired,
		NumRequeued: numRequeued,
	}, nil
}

// sortTMSIFirst performs a stable partition so every TMSI record precedes
// every IMSI record while preserving relative order within each class,
// via a bounded bubble sort (spec.md §4.4 step 4 explicitly allows this
// given the size-4 cap).
func sortTMSIFirst(pr []pagingrecord.Record) {
	n := len(pr)
	if n < 2 {
		return
	}
	for i := n - 2; i >= 0; i-- {
		for j := 0; j <= i; j++ {
			if imsiRank(pr[j]) > imsiRank(pr[j+1]) {
				pr[j], pr[j+1] = pr[j+1], pr[j]
			}
		}
	}
}

func imsiRank(r pagingrecord.Record) int {
	if pagingrecord.IsIMSI(r.IdentityLV) {
		return 1
	}
	return 0
}
