// Package pagingmapper converts a GSM frame time into a paging
// sub-channel index under a parameterised CCCH layout.
//
// Grounded on original_source/src/common/paging.c's get_pag_idx_n /
// get_pag_subch_nr pair and the block_by_tdma51 lookup table reproduced
// bit-for-bit from spec.md §6.
package pagingmapper

import (
	"errors"
	"fmt"

	"github.com/gsm-bts/pager/internal/pagingconfig"
)

// ErrWrongTime is returned when fn/t3 does not fall on a paging-capable
// CCCH block, or the computed block is reserved for Access Grant.
var ErrWrongTime = errors.New("pagingmapper: not a paging opportunity")

const noBlock = 255

// blockByTDMA51 gives the raw paging block number (0..8) for each position
// in the 51-frame TDMA multiframe, or noBlock for FCCH/SCH/BCCH/empty
// positions. Reproduced bit-for-bit from spec.md §6 / paging.c.
var blockByTDMA51 = [51]uint8{
	255, 255, 255, 255, 255, 255, 0, 0, 0, 0,
	255, 255, 1, 1, 1, 1, 2, 2, 2, 2,
	255, 255, 3, 3, 3, 3, 4, 4, 4, 4,
	255, 255, 5, 5, 5, 5, 6, 6, 6, 6,
	255, 255, 7, 7, 7, 7, 8, 8, 8, 8,
	255,
}

// FrameTime is the GSM frame time (fn, t1, t2, t3), with t3 = fn mod 51.
type FrameTime struct {
	FN uint32
	T1 uint16
	T2 uint8
	T3 uint8
}

// String renders the frame coordinates for error logging (spec.md §4.1 step 2).
func (ft FrameTime) String() string {
	return fmt.Sprintf("%d/%d/%d/%d", ft.FN, ft.T1, ft.T2, ft.T3)
}

// NewFrameTime derives T1/T2/T3 from an absolute frame number, following
// the standard GSM 3x26x51 decomposition.
func NewFrameTime(fn uint32) FrameTime {
	return FrameTime{
		FN: fn,
		T1: uint16((fn / (26 * 51)) % 2048),
		T2: uint8(fn % 26),
		T3: uint8(fn % 51),
	}
}

// Map computes the paging sub-channel index for ft under descriptor desc
// (spec.md §4.1).
func Map(ft FrameTime, desc pagingconfig.CcchDescriptor) (int, error) {
	rawBlock := blockByTDMA51[ft.T3]
	if rawBlock == noBlock {
		return 0, ErrWrongTime
	}

	blkIdx := int(rawBlock) - int(desc.BSAGBlksRes)
	if blkIdx < 0 {
		return 0, ErrWrongTime
	}

	nPagBlks51 := desc.NPagBlocks()
	mfrmPart := int((ft.FN/51)%uint32(desc.BSPAMfrms+2)) * nPagBlks51

	return blkIdx + mfrmPart, nil
}
