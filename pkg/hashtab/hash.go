package hashtab

// Hash computes h = b + 31*h over the bytes of key starting at h = 0.
// Overflow wraps around.
func Hash(key string) uint32 {
	var h uint32
	for i := 0; i < len(key); i++ {
		h = uint32(key[i]) + 31*h
	}
	return h
}

func slotIndex(key string, capacity int) int {
	return int(uint64(Hash(key)) % uint64(capacity))
}
