package dfa

// Hashable A key of a hashMap.
type Hashable interface {
	Hash() uint64
	Equals(other Hashable) bool
}

// hashMap A chained hash table keyed by Hashable values. Partition refinement keys it by
// signatures (int slices, which Go maps cannot hold) and product construction by state pairs.
type hashMap[T any] struct {
	buckets    []*entry[T]
	size       int
	mask       uint64
	emptyValue T
	loadFactor float64
}

type entry[T any] struct {
	key   Hashable
	value T
	next  *entry[T]
}

type hashMapOptions struct {
	capacity   int
	loadFactor float64
}

type hashMapOption func(*hashMapOptions)

func withCapacity(capacity int) hashMapOption {
	return func(o *hashMapOptions) {
		o.capacity = capacity
	}
}

// newHashMap Creates a hash table. The capacity is rounded up to a power of two.
func newHashMap[T any](options ...hashMapOption) *hashMap[T] {
	opts := &hashMapOptions{
		capacity:   1,
		loadFactor: 0.75,
	}
	for _, opt := range options {
		opt(opts)
	}

	capacity := 1
	for capacity < opts.capacity {
		capacity <<= 1
	}

	return &hashMap[T]{
		buckets:    make([]*entry[T], capacity),
		mask:       uint64(capacity - 1),
		loadFactor: opts.loadFactor,
	}
}

// Set Inserts or replaces the value for key.
func (m *hashMap[T]) Set(key Hashable, value T) {
	index := key.Hash() & m.mask

	for e := m.buckets[index]; e != nil; e = e.next {
		if e.key.Equals(key) {
			e.value = value
			return
		}
	}

	m.buckets[index] = &entry[T]{
		key:   key,
		value: value,
		next:  m.buckets[index],
	}
	m.size++

	if float64(m.size)/float64(len(m.buckets)) > m.loadFactor {
		m.resize()
	}
}

// Get Returns the value for key.
func (m *hashMap[T]) Get(key Hashable) (T, bool) {
	index := key.Hash() & m.mask

	for e := m.buckets[index]; e != nil; e = e.next {
		if e.key.Equals(key) {
			return e.value, true
		}
	}
	return m.emptyValue, false
}

func (m *hashMap[T]) resize() {
	newCap := len(m.buckets) << 1
	newBuckets := make([]*entry[T], newCap)
	newMask := uint64(newCap - 1)

	for _, head := range m.buckets {
		for e := head; e != nil; e = e.next {
			newIndex := e.key.Hash() & newMask
			newBuckets[newIndex] = &entry[T]{
				key:   e.key,
				value: e.value,
				next:  newBuckets[newIndex],
			}
		}
	}

	m.buckets = newBuckets
	m.mask = newMask
}

// Size Number of keys.
func (m *hashMap[T]) Size() int {
	return m.size
}
