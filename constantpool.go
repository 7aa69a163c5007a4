package rbsparse

// ConstantID is a stable small integer id returned by the constant
// pool. 0 (ConstantIDUnset) means "unset".
type ConstantID uint32

const ConstantIDUnset ConstantID = 0

type constantBucketType uint8

const (
	bucketShared constantBucketType = iota
	bucketOwned
	bucketConstant
)

type constantBucket struct {
	id   ConstantID
	typ  constantBucketType
	hash uint32
	used bool
}

// Constant is the stored byte content for one interned id.
type Constant struct {
	Bytes []byte
}

// ConstantPool interns strings and hands back small stable integer
// ids, so equality checks downstream collapse to a single integer
// comparison. Grounded on rbs_constant_pool.{h,c}: djb2 hashing,
// linear probing, 75%-load resize doubling capacity, ids stable
// across resizes.
type ConstantPool struct {
	buckets   []constantBucket
	constants []Constant
	size      uint32
	capacity  uint32
	arena     *Arena
}

// NewConstantPool initializes a pool whose bucket table capacity is
// the next power of two at or above capacity.
func NewConstantPool(capacity uint32, arena *Arena) *ConstantPool {
	capacity = nextPowerOfTwo(capacity)
	return &ConstantPool{
		buckets:   make([]constantBucket, capacity),
		constants: make([]Constant, 0, capacity),
		capacity:  capacity,
		arena:     arena,
	}
}

func nextPowerOfTwo(v uint32) uint32 {
	if v == 0 {
		return 1
	}
	v--
	v |= v >> 1
	v |= v >> 2
	v |= v >> 4
	v |= v >> 8
	v |= v >> 16
	v++
	return v
}

func djb2(b []byte) uint32 {
	var value uint32 = 5381
	for _, c := range b {
		value = ((value << 5) + value) + uint32(c)
	}
	return value
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Find returns the id of bytes if already interned, or
// ConstantIDUnset otherwise.
func (p *ConstantPool) Find(bytes []byte) ConstantID {
	mask := p.capacity - 1
	hash := djb2(bytes)
	index := hash & mask
	for p.buckets[index].used {
		b := &p.buckets[index]
		c := &p.constants[b.id-1]
		if len(c.Bytes) == len(bytes) && bytesEqual(c.Bytes, bytes) {
			return b.id
		}
		index = (index + 1) & mask
	}
	return ConstantIDUnset
}

func (p *ConstantPool) insert(bytes []byte, typ constantBucketType) ConstantID {
	if p.size >= p.capacity/4*3 {
		p.resize()
	}

	mask := p.capacity - 1
	hash := djb2(bytes)
	index := hash & mask

	for p.buckets[index].used {
		b := &p.buckets[index]
		c := &p.constants[b.id-1]
		if len(c.Bytes) == len(bytes) && bytesEqual(c.Bytes, bytes) {
			// Prefer shared (borrowed) constants over owned ones: an
			// owned insert that collides needs nothing further (Go's
			// GC reclaims the now-unused slice); a shared insert that
			// collides with a previously-owned bucket adopts the
			// shared view instead.
			if typ == bucketShared && b.typ == bucketOwned {
				c.Bytes = bytes
				b.typ = bucketShared
			}
			return b.id
		}
		index = (index + 1) & mask
	}

	p.size++
	id := ConstantID(p.size & 0x3fffffff)
	if uint32(id) != p.size {
		panicRuntime("constant pool: size overflowed 30 bits")
	}

	p.buckets[index] = constantBucket{id: id, typ: typ, hash: hash, used: true}
	p.constants = append(p.constants, Constant{Bytes: bytes})
	return id
}

// InsertShared interns bytes that are a borrowed slice of the source
// buffer; no copy is made.
func (p *ConstantPool) InsertShared(bytes []byte) ConstantID {
	return p.insert(bytes, bucketShared)
}

// InsertOwned interns bytes allocated (and owned) by the caller,
// e.g. an unescaped string literal that no longer aliases the
// source.
func (p *ConstantPool) InsertOwned(bytes []byte) ConstantID {
	return p.insert(bytes, bucketOwned)
}

// InsertConstant interns bytes that are assumed to live forever, such
// as a Go string literal naming a Location child.
func (p *ConstantPool) InsertConstant(s string) ConstantID {
	return p.insert([]byte(s), bucketConstant)
}

// InternString is a convenience wrapper that copies s into a fresh
// arena allocation before interning it as owned, used for unescaped
// literal text that must outlive the source buffer view.
func (p *ConstantPool) InternString(s string) ConstantID {
	buf := p.arena.Alloc(len(s), 1)
	copy(buf, s)
	return p.InsertOwned(buf)
}

// IDToConstant returns the bytes for id, panicking (a RuntimeError)
// if id is unset or out of range.
func (p *ConstantPool) IDToConstant(id ConstantID) Constant {
	if id == ConstantIDUnset || uint32(id) > p.size {
		panicRuntime("constant pool: invalid constant id %d (size=%d)", id, p.size)
	}
	return p.constants[id-1]
}

func (p *ConstantPool) resize() {
	nextCapacity := p.capacity * 2
	mask := nextCapacity - 1
	nextBuckets := make([]constantBucket, nextCapacity)

	for _, b := range p.buckets {
		if !b.used {
			continue
		}
		index := b.hash & mask
		for nextBuckets[index].used {
			index = (index + 1) & mask
		}
		nextBuckets[index] = b
	}

	p.buckets = nextBuckets
	p.capacity = nextCapacity
}
