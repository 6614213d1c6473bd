package uuidx

import (
	"crypto/md5"
	"crypto/sha1"
	"hash"
)

// Well-known namespace UUIDs from RFC 4122 Appendix C, for use as the
// space argument of the name-based generators.
var (
	// NamespaceDNS is the namespace for fully-qualified domain names
	NamespaceDNS = MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

	// NamespaceURL is the namespace for URLs
	NamespaceURL = MustParse("6ba7b811-9dad-11d1-80b4-00c04fd430c8")

	// NamespaceOID is the namespace for ISO Object Identifiers
	NamespaceOID = MustParse("6ba7b812-9dad-11d1-80b4-00c04fd430c8")
)

// NewFromName generates a deterministic name-based UUID per RFC 4122 §4.3:
// the namespace UUID concatenated with the name is hashed with MD5
// (version 3) or SHA-1 (version 5), and the first 16 digest bytes carry
// the version and variant stamps.
//
// The same (space, name, version) triple always yields the same UUID.
// The name may be empty but must not be nil; versions other than 3 and 5
// are rejected.
func NewFromName(space UUID, name []byte, version Version) (UUID, error) {
	var uuid UUID

	if name == nil {
		return uuid, ErrNilName
	}

	var h hash.Hash
	switch version {
	case VersionNameBasedMD5:
		h = md5.New()
	case VersionNameBasedSHA1:
		h = sha1.New()
	default:
		return uuid, ErrInvalidVersion
	}

	h.Write(space[:])
	h.Write(name)
	copy(uuid[:], h.Sum(nil))

	uuid.setVersionAndVariant(version)
	return uuid, nil
}

// NewV3 generates a version 3 (MD5 name-based) UUID.
func NewV3(space UUID, name []byte) (UUID, error) {
	return NewFromName(space, name, VersionNameBasedMD5)
}

// NewV5 generates a version 5 (SHA-1 name-based) UUID. SHA-1 is the
// RFC-preferred scheme for new name-based identifiers.
func NewV5(space UUID, name []byte) (UUID, error) {
	return NewFromName(space, name, VersionNameBasedSHA1)
}
