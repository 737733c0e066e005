package petsim

import (
	"hash/fnv"
	"strconv"
)

// splitmix64 is a small, well-known seeded PRNG. Daily question selection must
// be reproducible per (userID, gameType, dateKey): same seed, same permutation.
type splitmix64 struct {
	state uint64
}

func newSplitmix64(seed uint64) *splitmix64 {
	return &splitmix64{state: seed}
}

func (s *splitmix64) next() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// intn returns a value in [0, n). n must be positive.
func (s *splitmix64) intn(n int) int {
	return int(s.next() % uint64(n))
}

// seedFor derives the PRNG seed from the selection identity "userID:gameType:dateKey".
func seedFor(userID uint, gameType, dateKey string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(strconv.FormatUint(uint64(userID), 10)))
	h.Write([]byte{':'})
	h.Write([]byte(gameType))
	h.Write([]byte{':'})
	h.Write([]byte(dateKey))
	return h.Sum64()
}

// shuffledIndices returns a seeded Fisher-Yates permutation of [0, n).
func shuffledIndices(n int, seed uint64) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	rng := newSplitmix64(seed)
	for i := n - 1; i > 0; i-- {
		j := rng.intn(i + 1)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx
}
