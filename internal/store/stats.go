package store

import (
	"fmt"

	"github.com/valyala/bytebufferpool"
)

type TableStats struct {
	Size         int
	Capacity     int
	LoadFactor   float64
	Ratio        float64
	UsedBuckets  int
	EmptyBuckets int
	LongestChain int
	Resizes      int
}

func (h *HashTable[V]) Stats() TableStats {
	stats := TableStats{
		Size:       h.size,
		Capacity:   len(h.buckets),
		LoadFactor: h.loadFactor,
		Ratio:      float64(h.size) / float64(len(h.buckets)),
		Resizes:    h.resizes,
	}
	for _, chain := range h.buckets {
		if len(chain) == 0 {
			stats.EmptyBuckets++
			continue
		}
		stats.UsedBuckets++
		if len(chain) > stats.LongestChain {
			stats.LongestChain = len(chain)
		}
	}
	return stats
}

// Dump renders every non-empty bucket on its own line:
//
//	[11] banana=yellow, grape=purple
func (h *HashTable[V]) Dump() string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	for idx, chain := range h.buckets {
		if len(chain) == 0 {
			continue
		}
		fmt.Fprintf(buf, "[%d] ", idx)
		for i, e := range chain {
			if i > 0 {
				buf.WriteString(", ")
			}
			fmt.Fprintf(buf, "%s=%v", e.key, e.value)
		}
		buf.WriteByte('\n')
	}
	return buf.String()
}
