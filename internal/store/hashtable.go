package store

import "go.uber.org/zap"

type entry[V any] struct {
	key   string
	value V
}

// HashTable maps string keys to values of type V using separate chaining.
// Each bucket is a slice of entries that is nil until its first insertion.
// The bucket array doubles whenever Len()/Cap() would exceed the load factor.
//
// A HashTable is not safe for concurrent use.
type HashTable[V any] struct {
	buckets    [][]entry[V]
	size       int
	loadFactor float64
	resizes    int
	logger     *zap.Logger
}

// NewHashTable returns an empty table with DefaultConfig.
func NewHashTable[V any]() *HashTable[V] {
	h, err := NewHashTableWithConfig[V](DefaultConfig())
	if err != nil {
		panic(err)
	}
	return h
}

func NewHashTableWithConfig[V any](cfg Config, opts ...Option) (*HashTable[V], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return &HashTable[V]{
		buckets:    make([][]entry[V], cfg.InitialCapacity),
		loadFactor: cfg.LoadFactor,
		logger:     o.logger,
	}, nil
}

// Set inserts key or overwrites its value in place. Inserting a new key may
// grow the table before Set returns.
func (h *HashTable[V]) Set(key string, value V) {
	if !h.insert(key, value) {
		return
	}
	for h.overloaded() {
		h.resize()
	}
}

func (h *HashTable[V]) Get(key string) (V, bool) {
	chain := h.buckets[bucketIndex(key, len(h.buckets))]
	if i := lookup(key, chain); i >= 0 {
		return chain[i].value, true
	}
	var zero V
	return zero, false
}

// Has reports whether key is present, including keys stored with a zero value.
func (h *HashTable[V]) Has(key string) bool {
	_, ok := h.Get(key)
	return ok
}

// Delete removes key and reports whether it was present. The table never
// shrinks, and the order of the remaining entries in the chain is not kept.
func (h *HashTable[V]) Delete(key string) bool {
	idx := bucketIndex(key, len(h.buckets))
	chain := h.buckets[idx]
	i := lookup(key, chain)
	if i < 0 {
		return false
	}

	last := len(chain) - 1
	chain[i] = chain[last]
	chain[last] = entry[V]{}
	if last == 0 {
		h.buckets[idx] = nil
	} else {
		h.buckets[idx] = chain[:last]
	}
	h.size--
	return true
}

func (h *HashTable[V]) Len() int {
	return h.size
}

func (h *HashTable[V]) Cap() int {
	return len(h.buckets)
}

func (h *HashTable[V]) LoadFactor() float64 {
	return h.loadFactor
}

// Range calls fn for every entry in bucket order until fn returns false.
// fn must not modify the table.
func (h *HashTable[V]) Range(fn func(key string, value V) bool) {
	for _, chain := range h.buckets {
		for _, e := range chain {
			if !fn(e.key, e.value) {
				return
			}
		}
	}
}

func (h *HashTable[V]) Keys() []string {
	keys := make([]string, 0, h.size)
	h.Range(func(key string, _ V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

func (h *HashTable[V]) Values() []V {
	values := make([]V, 0, h.size)
	h.Range(func(_ string, value V) bool {
		values = append(values, value)
		return true
	})
	return values
}

func (h *HashTable[V]) GetAll() map[string]V {
	result := make(map[string]V, h.size)
	h.Range(func(key string, value V) bool {
		result[key] = value
		return true
	})
	return result
}

// Clear drops every entry but keeps the current capacity.
func (h *HashTable[V]) Clear() {
	h.buckets = make([][]entry[V], len(h.buckets))
	h.size = 0
}

// insert adds or updates key without checking the load factor. It returns
// true when a new entry was appended.
func (h *HashTable[V]) insert(key string, value V) bool {
	idx := bucketIndex(key, len(h.buckets))
	chain := h.buckets[idx]
	if i := lookup(key, chain); i >= 0 {
		chain[i].value = value
		return false
	}
	h.buckets[idx] = append(chain, entry[V]{key: key, value: value})
	h.size++
	return true
}

func (h *HashTable[V]) overloaded() bool {
	return float64(h.size)/float64(len(h.buckets)) > h.loadFactor
}

// resize doubles the bucket array and rehashes every entry into it.
func (h *HashTable[V]) resize() {
	old := h.buckets
	h.buckets = make([][]entry[V], len(old)*2)
	h.size = 0

	for _, chain := range old {
		for _, e := range chain {
			h.insert(e.key, e.value)
		}
	}
	h.resizes++

	h.logger.Debug("hash table resized",
		zap.Int("old_capacity", len(old)),
		zap.Int("new_capacity", len(h.buckets)),
		zap.Int("size", h.size))
}

func lookup[V any](key string, chain []entry[V]) int {
	for i := range chain {
		if chain[i].key == key {
			return i
		}
	}
	return -1
}
