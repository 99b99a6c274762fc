package htable

const hashPrime = 31

// Hash computes the table hash of key: xor in each byte, then multiply by 31.
// Bytes are taken as unsigned values, so 0xff contributes 255. It is order
// dependent and not cryptographic.
func Hash(key string) uint64 {
	var hash uint64
	for i := 0; i < len(key); i++ {
		hash = (hash ^ uint64(key[i])) * hashPrime
	}
	return hash
}
