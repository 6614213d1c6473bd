package uuidx

import (
	"crypto/sha256"
	"crypto/sha512"
)

// HashAlgorithm selects the digest used by NewV8FromName. The set is
// closed: values outside the three constants are rejected.
type HashAlgorithm uint8

const (
	HashSHA256 HashAlgorithm = iota + 1
	HashSHA384
	HashSHA512
)

// String returns the conventional name of the algorithm.
func (h HashAlgorithm) String() string {
	switch h {
	case HashSHA256:
		return "SHA-256"
	case HashSHA384:
		return "SHA-384"
	case HashSHA512:
		return "SHA-512"
	default:
		return "unknown"
	}
}

// ParseHashAlgorithm maps an algorithm name to its HashAlgorithm value.
// It accepts both the hyphenated ("SHA-256") and plain ("SHA256") forms.
func ParseHashAlgorithm(s string) (HashAlgorithm, error) {
	switch s {
	case "SHA-256", "SHA256":
		return HashSHA256, nil
	case "SHA-384", "SHA384":
		return HashSHA384, nil
	case "SHA-512", "SHA512":
		return HashSHA512, nil
	default:
		return 0, ErrUnknownHashAlgorithm
	}
}

// sum computes the digest of space||name for the selected algorithm and
// returns at least 16 bytes, or ErrUnknownHashAlgorithm for values outside
// the enum.
func (h HashAlgorithm) sum(space UUID, name []byte) ([]byte, error) {
	switch h {
	case HashSHA256:
		d := sha256.New()
		d.Write(space[:])
		d.Write(name)
		return d.Sum(nil), nil
	case HashSHA384:
		d := sha512.New384()
		d.Write(space[:])
		d.Write(name)
		return d.Sum(nil), nil
	case HashSHA512:
		d := sha512.New()
		d.Write(space[:])
		d.Write(name)
		return d.Sum(nil), nil
	default:
		return nil, ErrUnknownHashAlgorithm
	}
}

// NewV8 generates a version 8 (custom) UUID from caller-supplied data.
// The first 16 bytes of data are copied verbatim, MSB first, and only the
// version nibble and variant bits are overwritten. Inputs shorter than
// 16 bytes are rejected.
func NewV8(data []byte) (UUID, error) {
	var uuid UUID
	if len(data) < 16 {
		return uuid, ErrInvalidLength
	}
	copy(uuid[:], data[:16])
	uuid.setVersionAndVariant(VersionCustom)
	return uuid, nil
}

// NewV8FromName generates a deterministic version 8 UUID by hashing the
// namespace UUID concatenated with the name using the selected algorithm
// and keeping the first 16 digest bytes, per RFC 9562 Appendix B.2.
//
// Unlike earlier drafts of the scheme, no hash-space identifier is mixed
// into the digest input: hashing covers exactly space||name.
func NewV8FromName(alg HashAlgorithm, space UUID, name []byte) (UUID, error) {
	var uuid UUID

	if name == nil {
		return uuid, ErrNilName
	}

	digest, err := alg.sum(space, name)
	if err != nil {
		return uuid, err
	}

	copy(uuid[:], digest)
	uuid.setVersionAndVariant(VersionCustom)
	return uuid, nil
}
