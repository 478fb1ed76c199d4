package store

import "unicode/utf16"

// hashKey folds the UTF-16 code units of key into a 32-bit accumulator,
// acc = acc*31 + c, wrapping on overflow.
func hashKey(key string) int32 {
	var h int32
	for _, r := range key {
		if r >= 0x10000 {
			hi, lo := utf16.EncodeRune(r)
			h = h*31 + hi
			h = h*31 + lo
			continue
		}
		h = h*31 + r
	}
	return h
}

// bucketIndex maps key to a bucket in [0, capacity).
func bucketIndex(key string, capacity int) int {
	// widen before negating so MinInt32 stays positive
	h := int64(hashKey(key))
	if h < 0 {
		h = -h
	}
	return int(h % int64(capacity))
}
