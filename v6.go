package uuidx

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	"time"
)

// gregorianToUnixTicks is the number of 100-nanosecond intervals between
// the Gregorian reform date (1582-10-15T00:00:00Z) and the Unix epoch.
const gregorianToUnixTicks = 122192928000000000

// gregorianEpoch is the earliest instant representable in a v6 timestamp.
var gregorianEpoch = time.Date(1582, time.October, 15, 0, 0, 0, 0, time.UTC)

// V6Generator produces UUIDv6 values: the version-1 layout reordered so
// the 60-bit Gregorian timestamp is stored MSB-first, which makes freshly
// generated values sort by creation time.
type V6Generator struct {
	randReader io.Reader
	clock      Clock
}

// NewV6Generator creates a UUIDv6 generator backed by crypto/rand and the
// system clock.
func NewV6Generator() *V6Generator {
	return &V6Generator{
		randReader: rand.Reader,
		clock:      systemClock{},
	}
}

// NewV6GeneratorWithSource creates a UUIDv6 generator with a custom random
// source and clock. Either may be nil to keep the default. This is
// primarily useful for deterministic tests.
func NewV6GeneratorWithSource(r io.Reader, c Clock) *V6Generator {
	g := NewV6Generator()
	if r != nil {
		g.randReader = r
	}
	if c != nil {
		g.clock = c
	}
	return g
}

// New generates a UUIDv6 stamped with the generator clock's current time.
func (g *V6Generator) New() (UUID, error) {
	return g.NewAt(g.clock.Now())
}

// NewAt generates a UUIDv6 for the specified instant. The timestamp is the
// count of 100-nanosecond intervals since 1582-10-15T00:00:00Z, split
// across the time fields high-to-low; the clock-sequence and node fields
// are filled with fresh random bytes on every call.
func (g *V6Generator) NewAt(t time.Time) (UUID, error) {
	var uuid UUID

	if t.Before(gregorianEpoch) {
		return uuid, ErrTimestampOutOfRange
	}
	// Computed from seconds rather than UnixNano, which cannot represent
	// instants before 1678.
	ticks := uint64(gregorianToUnixTicks + t.Unix()*1e7 + int64(t.Nanosecond())/100)

	putGregorianTicks(&uuid, ticks)

	// Random clock sequence and node, bytes 8-15
	if _, err := io.ReadFull(g.randReader, uuid[8:]); err != nil {
		return Nil, err
	}
	uuid[8] = (uuid[8] & 0x3F) | 0x80

	return uuid, nil
}

// putGregorianTicks spreads a 60-bit tick count across the v6 time fields:
// high 32 bits into time_high, middle 16 into time_mid, and the low 12
// into time_low alongside the version nibble.
func putGregorianTicks(u *UUID, ticks uint64) {
	binary.BigEndian.PutUint32(u[0:4], uint32(ticks>>28))
	binary.BigEndian.PutUint16(u[4:6], uint16(ticks>>12))
	u[6] = 0x60 | byte(ticks>>8)&0x0F
	u[7] = byte(ticks)
}

// NewV6FromV1 converts a version-1 UUID to version 6. The 60-bit
// timestamp scattered across v1's time_low/time_mid/time_hi fields is
// reassembled into a contiguous MSB-first value; the clock-sequence and
// node bytes are preserved unchanged.
func NewV6FromV1(u UUID) (UUID, error) {
	if u.Version() != VersionTimeBased {
		return Nil, ErrInvalidVersion
	}

	ticks := uint64(binary.BigEndian.Uint16(u[6:8])&0x0FFF)<<48 |
		uint64(binary.BigEndian.Uint16(u[4:6]))<<32 |
		uint64(binary.BigEndian.Uint32(u[0:4]))

	var out UUID
	putGregorianTicks(&out, ticks)
	copy(out[8:], u[8:])
	return out, nil
}

// defaultV6Generator is the package-level generator used by NewV6/NewV6At
var defaultV6Generator = NewV6Generator()

// NewV6 generates a UUIDv6 with the current time using the default generator.
func NewV6() (UUID, error) {
	return defaultV6Generator.New()
}

// NewV6At generates a UUIDv6 for the specified instant using the default
// generator.
func NewV6At(t time.Time) (UUID, error) {
	return defaultV6Generator.NewAt(t)
}

// gregorianTicks extracts the 60-bit timestamp of a UUIDv6.
func (u UUID) gregorianTicks() uint64 {
	return uint64(u[0])<<52 | uint64(u[1])<<44 | uint64(u[2])<<36 |
		uint64(u[3])<<28 | uint64(u[4])<<20 | uint64(u[5])<<12 |
		uint64(u[6]&0x0F)<<8 | uint64(u[7])
}

// timeV6 converts a UUIDv6 timestamp to a time.Time.
func (u UUID) timeV6() time.Time {
	ticks := int64(u.gregorianTicks() - gregorianToUnixTicks)
	return time.Unix(ticks/1e7, (ticks%1e7)*100)
}
