package search

import (
	"github.com/corvid-engine/corvid/board"
)

// Bound is the kind of score a transposition entry represents.
type Bound uint8

const (
	BoundNone  Bound = 0
	BoundExact Bound = 1
	BoundLower Bound = 2
	BoundUpper Bound = 3
)

// bucketSize is the number of entries per bucket (B in spec §3/§4.1).
const bucketSize = 2

// entrySize is the byte size of one packed {key, data} slot.
const entrySize = 16

// Entry is a transposition slot: a 64-bit key sitting beside a 64-bit
// packed payload, 16 bytes total per §3.
type Entry struct {
	Key  uint64
	Data uint64
}

// Data bit layout (low to high): from(6) to(6) promo(3) depth(8) bound(2)
// score(16, two's complement) eval(16, two's complement). 57 of 64 bits used.
const (
	dataFromShift  = 0
	dataToShift    = 6
	dataPromoShift = 12
	dataDepthShift = 15
	dataBoundShift = 23
	dataScoreShift = 25
	dataEvalShift  = 41
)

func packData(from, to int, promo board.PieceType, depth int8, bound Bound, score, eval int16) uint64 {
	return uint64(from&0x3F)<<dataFromShift |
		uint64(to&0x3F)<<dataToShift |
		uint64(promo&0x7)<<dataPromoShift |
		uint64(uint8(depth))<<dataDepthShift |
		uint64(bound&0x3)<<dataBoundShift |
		uint64(uint16(score))<<dataScoreShift |
		uint64(uint16(eval))<<dataEvalShift
}

func (e Entry) empty() bool { return e.Key == 0 }

// From returns the from-square of the stored move projection.
func (e Entry) From() int { return int((e.Data >> dataFromShift) & 0x3F) }

// To returns the to-square of the stored move projection.
func (e Entry) To() int { return int((e.Data >> dataToShift) & 0x3F) }

// PromotionType returns the stored promotion piece type, or PieceTypeNone.
func (e Entry) PromotionType() board.PieceType {
	return board.PieceType((e.Data >> dataPromoShift) & 0x7)
}

// Depth returns the stored search depth.
func (e Entry) Depth() int8 { return int8((e.Data >> dataDepthShift) & 0xFF) }

// BoundKind returns the stored bound kind.
func (e Entry) BoundKind() Bound { return Bound((e.Data >> dataBoundShift) & 0x3) }

// Score returns the raw stored score (ply-adjusted for mates; see TTScore).
func (e Entry) Score() int16 { return int16(uint16((e.Data >> dataScoreShift) & 0xFFFF)) }

// Eval returns the static evaluation recorded alongside the entry.
func (e Entry) Eval() int16 { return int16(uint16((e.Data >> dataEvalShift) & 0xFFFF)) }

// HasMove reports whether the entry carries a non-null move projection.
func (e Entry) HasMove() bool { return e.From() != e.To() || e.PromotionType() != board.PieceTypeNone }

type bucket [bucketSize]Entry

// TT is the fixed-capacity, bucketed transposition table described in
// spec §3/§4.1: an array of 2^P buckets of B=2 entries, replacement
// favoring depth preservation.
type TT struct {
	buckets []bucket
	mask    uint64
}

// New allocates a table sized so 2^P buckets fit within mb megabytes.
func New(mb int) *TT {
	t := &TT{}
	t.init(mb)
	return t
}

// init (re)allocates the table per spec: largest power-of-two bucket
// count whose total size does not exceed mb MiB. All entries start zeroed.
func (t *TT) init(mb int) {
	if mb < 1 {
		mb = 1
	}
	totalBytes := uint64(mb) * 1024 * 1024
	bucketBytes := uint64(bucketSize * entrySize)
	count := totalBytes / bucketBytes
	if count == 0 {
		count = 1
	}
	p := uint64(1)
	for p*2 <= count {
		p *= 2
	}
	t.buckets = make([]bucket, p)
	t.mask = p - 1
}

// Resize reallocates the table to a new size, discarding prior contents.
func (t *TT) Resize(mb int) { t.init(mb) }

// Clear zeroes every entry without reallocating. Invoked at the start of
// every new search per §4.1/§5.
func (t *TT) Clear() {
	for i := range t.buckets {
		t.buckets[i] = bucket{}
	}
}

func (t *TT) index(hash uint64) uint64 { return hash & t.mask }

// Prefetch is a hint that the bucket for hash will be read shortly. The Go
// runtime gives no portable prefetch intrinsic, so this is a documented
// no-op retained to keep the collaborator-facing call shape spec §4.1
// names; the bucket array is small enough per entry that the scan itself
// is a single cache line in the common case.
func (t *TT) Prefetch(hash uint64) {}

// Probe scans the bucket for hash linearly and returns the first entry
// whose key matches, or the zero Entry with found=false on a miss.
func (t *TT) Probe(hash uint64) (Entry, bool) {
	b := &t.buckets[t.index(hash)]
	for i := 0; i < bucketSize; i++ {
		if b[i].Key == hash {
			return b[i], true
		}
	}
	return Entry{}, false
}

// Put selects a bucket slot per the §4.1 replacement policy, writes the
// packed entry (applying the mate-distance ply adjustment to score), and
// returns what ended up stored (which may be the pre-existing entry if
// the write was aborted by the depth guard).
func (t *TT) Put(hash uint64, depth int8, score int, bound Bound, move board.Move, ply int, eval int) Entry {
	b := &t.buckets[t.index(hash)]

	slot := -1
	for i := 0; i < bucketSize; i++ {
		if b[i].Key == hash && !b[i].empty() {
			if b[i].Depth() > depth && bound != BoundExact {
				return b[i]
			}
			slot = i
			break
		}
	}
	if slot == -1 {
		for i := 0; i < bucketSize; i++ {
			if b[i].empty() {
				slot = i
				break
			}
		}
	}
	if slot == -1 {
		slot = 0
		minDepth := b[0].Depth()
		for i := 1; i < bucketSize; i++ {
			if b[i].Depth() < minDepth {
				minDepth = b[i].Depth()
				slot = i
			}
		}
	}

	from, to, promo := 0, 0, board.PieceTypeNone
	if move != board.NullMove {
		from, to, promo = int(move.From()), int(move.To()), move.PromotionPieceType()
	}
	entry := Entry{
		Key:  hash,
		Data: packData(from, to, promo, depth, bound, StoreScore(score, ply), int16(clampInt16(eval))),
	}
	b[slot] = entry
	return entry
}

func clampInt16(v int) int {
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}
	return v
}

// TTScore applies the mate-distance adjustment on read: scores stored
// with a ply offset have that offset removed so the returned value is an
// absolute distance to mate, independent of the ply at which it was
// found (spec §4.1).
func TTScore(stored int16, ply int) int {
	s := int(stored)
	if s > MateBound {
		return s - ply
	}
	if s < -MateBound {
		return s + ply
	}
	return s
}

// StoreScore applies the inverse adjustment before writing: mate scores
// are biased by ply so that re-reading at a different ply can undo it.
func StoreScore(score int, ply int) int16 {
	if score > MateBound {
		return int16(score + ply)
	}
	if score < -MateBound {
		return int16(score - ply)
	}
	return int16(score)
}
