// Package uuidx implements RFC 4122 and RFC 9562 universally unique
// identifiers, covering the name-based versions 3 and 5, the time-based
// versions 6 and 7, and the custom version 8, plus a ULID text rendering
// for version 7 values.
//
// Generating identifiers:
//
//	// Time-ordered UUIDv7 (Unix milliseconds + random bits)
//	id, err := uuidx.NewV7()
//
//	// Reordered Gregorian-time UUIDv6
//	id, err := uuidx.NewV6()
//
//	// Deterministic name-based UUIDv5 (SHA-1)
//	id, err := uuidx.NewV5(uuidx.NamespaceDNS, []byte("example.com"))
//
//	// Custom UUIDv8 from caller-supplied bytes
//	id, err := uuidx.NewV8(payload)
//
// Name-based generation is deterministic: the same namespace, name and
// version always produce the same identifier, bit for bit, matching the
// RFC 4122 worked examples. The three RFC namespaces are exported as
// NamespaceDNS, NamespaceURL and NamespaceOID.
//
// Version-1 identifiers can be upgraded to the index-friendly version-6
// layout with NewV6FromV1, which reassembles the split 60-bit timestamp
// while keeping the clock sequence and node bytes intact.
//
// UUIDv7 values share the ULID's 48-bit millisecond prefix, so they render
// naturally as 26-character Crockford base-32 ULID strings:
//
//	s := id.ULID()
//	n, ok := id.EncodeULID(buf) // pre-allocated buffer variant
//
// Deterministic testing:
//
// The time-based generators accept an injectable random source (io.Reader)
// and Clock, and both expose explicit-timestamp constructors (NewAt,
// NewWithTime), so tests can pin every input without global state:
//
//	gen := uuidx.NewGeneratorWithSource(fixedReader, fixedClock)
//	id, err := gen.New()
//
// Thread Safety:
//
// All generators are safe for concurrent use. Name-based and v8 generation
// is pure; the v7 generator serializes internally to keep its monotonic
// sub-millisecond counter consistent.
//
// Standards Compliance:
//
// Bit layouts follow RFC 4122 and RFC 9562. Every generated identifier
// carries its version number in the high nibble of octet 6 and the
// RFC 4122 variant (binary 10) in the top bits of octet 8. The name-based
// v8 scheme follows the final RFC 9562 Appendix B.2 contract: the digest
// input is exactly namespace plus name, with no hash-space identifier.
package uuidx
