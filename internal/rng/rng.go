// Package rng implements the engine's seeded pseudo-random generator.
//
// The engine never reads from math/rand's global source (the teacher's
// Player.ShuffleDeck called the global math/rand.Shuffle, which spec.md
// Section 9 flags as a bug to fix for this port): every shuffle, coin
// flip, and id derivation goes through
// a value of this package seeded explicitly from game state.
package rng

import "encoding/binary"

// RNG is a deterministic 64-bit xorshift generator. Two RNGs seeded with
// the same value produce identical sequences.
type RNG struct {
	state uint64
}

// mix64 is splitmix64's finalizer, used to scramble small/adjacent seeds
// into well-distributed initial states.
func mix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// New creates a new RNG from a 64-bit seed.
func New(seed int64) *RNG {
	s := mix64(uint64(seed))
	if s == 0 {
		s = 1 // xorshift64 cannot recover from an all-zero state
	}
	return &RNG{state: s}
}

// next advances the generator and returns the next raw 64-bit value.
func (r *RNG) next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	r.state = x
	return x
}

// NextUint64 returns the next raw 64-bit value.
func (r *RNG) NextUint64() uint64 {
	return r.next()
}

// NextUnit returns a pseudo-random float64 in [0, 1).
func (r *RNG) NextUnit() float64 {
	// Use the top 53 bits for a uniformly distributed float64 mantissa.
	return float64(r.next()>>11) / (1 << 53)
}

// NextIntN returns a pseudo-random integer in [0, n). Panics if n <= 0.
func (r *RNG) NextIntN(n int) int {
	if n <= 0 {
		panic("rng: NextIntN called with n <= 0")
	}
	return int(r.next() % uint64(n))
}

// CoinFlip returns true ("heads") with 50% probability.
func (r *RNG) CoinFlip() bool {
	return r.next()&1 == 1
}

// Shuffle performs an in-place Fisher-Yates shuffle of a slice of length n,
// swapping elements i and j via the supplied swap function.
func Shuffle(r *RNG, n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := r.NextIntN(i + 1)
		swap(i, j)
	}
}

// reader adapts an RNG to io.Reader, so it can drive
// uuid.NewRandomFromReader — the only sanctioned way to mint a unique
// card/game ID in this engine, since uuid.New() reads crypto/rand and
// would break cross-run reproducibility (spec.md Section 8, property 1
// "determinism").
type reader struct{ r *RNG }

// Reader returns an io.Reader backed by this RNG's stream, for seeding
// github.com/google/uuid's NewRandomFromReader.
func (r *RNG) Reader() *reader { return &reader{r: r} }

func (rd *reader) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], rd.r.next())
		n += copy(p[n:], buf[:])
	}
	return n, nil
}

// BetweenTurnSeed derives a deterministic seed for a between-turn coin
// flip (e.g. burn damage) from the turn number and acting player, so that
// reproducibility doesn't require threading a long-lived RNG through
// otherwise-pure end-of-turn processing (spec.md Section 4.1).
func BetweenTurnSeed(turn int, player int) int64 {
	return int64(mix64(uint64(turn)*1000003 + uint64(player)*7 + 0x517cc1b727220a95))
}
