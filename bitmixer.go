package dfa

// Golden ratio bit mixer.
const phiC64 = uint64(0x9e3779b97f4a7c15)

// mix32 is the 32-bit finalization step of MurmurHash3.
func mix32(v int) uint64 {
	k := uint32(v)
	k = (k ^ (k >> 16)) * 0x85ebca6b
	k = (k ^ (k >> 13)) * 0xc2b2ae35
	return uint64(k ^ (k >> 16))
}

// mixInts hashes an ordered sequence of ints.
func mixInts(values ...int) uint64 {
	h := uint64(len(values))
	for _, v := range values {
		h = h*phiC64 + mix32(v)
		h ^= h >> 29
	}
	return h
}
