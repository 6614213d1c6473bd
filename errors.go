package uuidx

import "errors"

var (
	// ErrInvalidFormat indicates that the UUID string format is invalid
	ErrInvalidFormat = errors.New("uuidx: invalid UUID format")

	// ErrInvalidLength indicates that the input byte buffer has insufficient length
	ErrInvalidLength = errors.New("uuidx: invalid UUID length (expected 16 bytes)")

	// ErrInvalidVersion indicates that the UUID version is not supported
	// by the requested operation
	ErrInvalidVersion = errors.New("uuidx: invalid or unsupported UUID version")

	// ErrInvalidVariant indicates that the UUID variant is not RFC 4122
	ErrInvalidVariant = errors.New("uuidx: invalid UUID variant (expected RFC 4122)")

	// ErrNilName indicates that a name-based generator was called without a name
	ErrNilName = errors.New("uuidx: name must not be nil")

	// ErrTimestampOutOfRange indicates that the supplied timestamp precedes
	// the epoch of the requested UUID version
	ErrTimestampOutOfRange = errors.New("uuidx: timestamp precedes the version epoch")

	// ErrUnknownHashAlgorithm indicates an unrecognized hash algorithm
	// for name-based UUIDv8 generation
	ErrUnknownHashAlgorithm = errors.New("uuidx: unknown hash algorithm")
)
