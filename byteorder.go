package uuidx

// SwapEndianness swaps the byte order of the first three UUID fields in
// place: bytes 0-3 (time_low) are reversed, bytes 4-5 (time_mid) and
// bytes 6-7 (time_hi_and_version) are each swapped, and bytes 8-15 are
// left untouched. This converts between the RFC field order and the
// little-endian memory layout used by Microsoft-style GUID hosts.
//
// Applying the swap twice restores the original bytes. The buffer must
// hold at least 8 bytes; a shorter buffer is a caller bug and panics.
func SwapEndianness(b []byte) {
	b[0], b[3] = b[3], b[0]
	b[1], b[2] = b[2], b[1]
	b[4], b[5] = b[5], b[4]
	b[6], b[7] = b[7], b[6]
}

// LittleEndianBytes returns the UUID encoded in the little-endian GUID
// memory layout (as used by Windows APIs and .NET's Guid type).
func (u UUID) LittleEndianBytes() []byte {
	b := make([]byte, 16)
	copy(b, u[:])
	SwapEndianness(b)
	return b
}

// FromLittleEndianBytes creates a UUID from 16 bytes laid out in the
// little-endian GUID memory format, converting them to RFC field order.
func FromLittleEndianBytes(b []byte) (UUID, error) {
	var uuid UUID
	if len(b) != 16 {
		return uuid, ErrInvalidLength
	}
	copy(uuid[:], b)
	SwapEndianness(uuid[:])
	return uuid, nil
}
