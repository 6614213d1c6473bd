package uuidx

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	"sync"
	"time"
)

// Generator is a thread-safe UUIDv7 generator that ensures monotonicity
// within the same millisecond by using a counter with random data.
type Generator struct {
	mu            sync.Mutex
	lastTimestamp uint64
	clockSeq      uint16 // 12-bit counter for sub-millisecond ordering
	randReader    io.Reader
	clock         Clock
}

// NewGenerator creates a new UUIDv7 generator with crypto/rand as the
// random source and the system clock as the time source.
func NewGenerator() *Generator {
	return &Generator{
		randReader: rand.Reader,
		clock:      systemClock{},
	}
}

// NewGeneratorWithReader creates a new UUIDv7 generator with a custom random
// source. This is primarily useful for testing with deterministic random sources.
func NewGeneratorWithReader(r io.Reader) *Generator {
	return &Generator{
		randReader: r,
		clock:      systemClock{},
	}
}

// NewGeneratorWithSource creates a new UUIDv7 generator with a custom random
// source and clock. Either may be nil to keep the default.
func NewGeneratorWithSource(r io.Reader, c Clock) *Generator {
	g := NewGenerator()
	if r != nil {
		g.randReader = r
	}
	if c != nil {
		g.clock = c
	}
	return g
}

// New generates a new UUIDv7 with the generator clock's current time.
// This method is thread-safe and ensures monotonic ordering of UUIDs
// generated within the same millisecond.
func (g *Generator) New() (UUID, error) {
	return g.NewWithTime(g.clock.Now())
}

// NewWithTime generates a new UUIDv7 with the specified timestamp.
// Pre-Unix-epoch timestamps are rejected: the v7 layout has no room for
// a sign bit. This method is thread-safe and ensures monotonic ordering.
func (g *Generator) NewWithTime(t time.Time) (UUID, error) {
	var uuid UUID

	// Unix timestamp in milliseconds (48 bits)
	ms := t.UnixMilli()
	if ms < 0 {
		return uuid, ErrTimestampOutOfRange
	}
	timestamp := uint64(ms)

	g.mu.Lock()
	defer g.mu.Unlock()

	// Handle monotonicity: if timestamp is same or earlier, increment counter
	if timestamp <= g.lastTimestamp {
		g.clockSeq++
		// If counter overflows (> 12 bits), use last timestamp + 1
		if g.clockSeq > 0xFFF {
			g.clockSeq = 0
			timestamp = g.lastTimestamp + 1
			g.lastTimestamp = timestamp
		}
	} else {
		// New millisecond: rand_a starts from a fresh random value, per
		// RFC 9562 §6.2 method 1
		var randBytes [2]byte
		if _, err := io.ReadFull(g.randReader, randBytes[:]); err != nil {
			return uuid, err
		}
		g.clockSeq = binary.BigEndian.Uint16(randBytes[:]) & 0xFFF // 12 bits
		g.lastTimestamp = timestamp
	}

	// Encode timestamp (48 bits) - bytes 0-5
	binary.BigEndian.PutUint64(uuid[0:8], timestamp<<16)

	// Encode version (4 bits) and rand_a counter (12 bits) - bytes 6-7
	uuid[6] = byte(0x70 | (g.clockSeq >> 8))
	uuid[7] = byte(g.clockSeq)

	// Random data for bytes 8-15 (64 bits)
	if _, err := io.ReadFull(g.randReader, uuid[8:]); err != nil {
		return uuid, err
	}

	// Set variant to RFC 4122 (10xx xxxx)
	uuid[8] = (uuid[8] & 0x3F) | 0x80

	return uuid, nil
}

// Must is a helper that wraps a call to a function returning (UUID, error)
// and panics if the error is non-nil. It is intended for use in variable
// initializations such as:
//
//	var id = uuidx.Must(uuidx.NewV7())
func Must(uuid UUID, err error) UUID {
	if err != nil {
		panic(err)
	}
	return uuid
}

// defaultGenerator is the package-level generator used by the NewV7 functions
var defaultGenerator = NewGenerator()

// NewV7 generates a new UUIDv7 using the package-level default generator.
func NewV7() (UUID, error) {
	return defaultGenerator.New()
}

// NewV7At generates a new UUIDv7 for the specified instant using the
// package-level default generator.
func NewV7At(t time.Time) (UUID, error) {
	return defaultGenerator.NewWithTime(t)
}

// Timestamp extracts the Unix timestamp (in milliseconds) from a UUIDv7
func (u UUID) Timestamp() int64 {
	if u.Version() != VersionTimeSorted {
		return 0
	}
	// Extract 48-bit timestamp from bytes 0-5
	timestamp := uint64(u[0])<<40 |
		uint64(u[1])<<32 |
		uint64(u[2])<<24 |
		uint64(u[3])<<16 |
		uint64(u[4])<<8 |
		uint64(u[5])
	return int64(timestamp)
}

// Time returns the embedded timestamp of a time-based UUID. It understands
// the v6 Gregorian tick count and the v7 Unix millisecond count; for any
// other version the zero time is returned.
func (u UUID) Time() time.Time {
	switch u.Version() {
	case VersionTimeReordered:
		return u.timeV6()
	case VersionTimeSorted:
		ms := u.Timestamp()
		return time.Unix(ms/1000, (ms%1000)*1000000)
	default:
		return time.Time{}
	}
}
