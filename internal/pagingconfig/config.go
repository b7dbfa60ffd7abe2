// Package pagingconfig holds the CCCH descriptor interpreted from a
// system-information broadcast, and the subsystem's tunables.
//
// Grounded on internal/config/config.go's flat-struct shape and
// internal/config/validate.go's sentinel-error Validate() pattern.
package pagingconfig

import (
	"errors"
	"time"

	"github.com/gsm-bts/pager/internal/pagingconst"
)

// CcchDescriptor holds the parameters interpreted from a system-information
// broadcast that govern CCCH/paging block addressing (spec.md §3).
type CcchDescriptor struct {
	// BSAGBlksRes is the count of CCCH blocks reserved for Access Grant
	// (0..7); subtracted from the raw block index to yield the paging
	// block number.
	BSAGBlksRes uint8
	// BSPAMfrms is the paging multiframe spread (0..7); the effective
	// spread used by the mapper is BSPAMfrms+2.
	BSPAMfrms uint8
}

// NPagBlocks returns the number of paging blocks per 51-multiframe after
// AGCH reservation, for a non-combined CCCH layout (the only layout
// block_by_tdma51 models; spec.md §4.1 step 4,
// gsm0502_get_n_pag_blocks equivalent).
func (d CcchDescriptor) NPagBlocks() int {
	n := pagingconst.MaxPagingBlocksCCCH - int(d.BSAGBlksRes)
	if n < 0 {
		return 0
	}
	return n
}

var (
	// ErrInvalidBSAGBlksRes indicates bs_ag_blks_res is outside 0..7.
	ErrInvalidBSAGBlksRes = errors.New("pagingconfig: bs_ag_blks_res must be 0..7")
	// ErrInvalidBSPAMfrms indicates bs_pa_mfrms is outside 0..7.
	ErrInvalidBSPAMfrms = errors.New("pagingconfig: bs_pa_mfrms must be 0..7")
)

// Validate checks the descriptor's range invariants (spec.md §3).
func (d CcchDescriptor) Validate() error {
	if d.BSAGBlksRes > 7 {
		return ErrInvalidBSAGBlksRes
	}
	if d.BSPAMfrms > 7 {
		return ErrInvalidBSPAMfrms
	}
	return nil
}

// Config holds the subsystem's non-CCCH tunables.
type Config struct {
	// NumPagingMax bounds the total number of queued records across all
	// paging groups (spec.md §3).
	NumPagingMax int
	// PagingLifetime is added to the current time to stamp a record's
	// expiration deadline when it is added or refreshed. The scheduler
	// retires an emitted record while that deadline has not yet passed and
	// re-queues it once it has.
	PagingLifetime time.Duration
	// CCCH is the initial CCCH descriptor.
	CCCH CcchDescriptor
}

var (
	// ErrInvalidNumPagingMax indicates NumPagingMax is not positive.
	ErrInvalidNumPagingMax = errors.New("pagingconfig: num_paging_max must be > 0")
	// ErrInvalidPagingLifetime indicates PagingLifetime is not positive.
	ErrInvalidPagingLifetime = errors.New("pagingconfig: paging_lifetime must be > 0")
)

// Validate checks Config's invariants, including the embedded CCCH
// descriptor's.
func (c Config) Validate() error {
	if c.NumPagingMax <= 0 {
		return ErrInvalidNumPagingMax
	}
	if c.PagingLifetime <= 0 {
		return ErrInvalidPagingLifetime
	}
	return c.CCCH.Validate()
}
