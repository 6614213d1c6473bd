package uuidx

// ulidAlphabet is Crockford's base-32 alphabet (I, L, O and U excluded).
const ulidAlphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

// ULIDLength is the length of the canonical ULID string form.
const ULIDLength = 26

// ULID renders the UUID's 128 bits as a 26-character Crockford base-32
// string, the canonical ULID text form. A UUIDv7 shares the ULID's
// 48-bit-millisecond prefix, so its ULID rendering sorts by creation
// time; any other version encodes losslessly but without that property.
func (u UUID) ULID() string {
	var buf [ULIDLength]byte
	u.EncodeULID(buf[:])
	return string(buf[:])
}

// EncodeULID writes the 26-character ULID form of the UUID into dst and
// reports the number of bytes written. When dst is shorter than 26 bytes
// nothing is written and ok is false, so callers can probe the required
// capacity without an error path.
func (u UUID) EncodeULID(dst []byte) (n int, ok bool) {
	if len(dst) < ULIDLength {
		return 0, false
	}

	// 26 five-bit groups over the 128 bits, MSB first; the two pad bits
	// at the top of the 130-bit view are always zero.
	dst[0] = ulidAlphabet[u[0]>>5]
	dst[1] = ulidAlphabet[u[0]&31]
	dst[2] = ulidAlphabet[u[1]>>3]
	dst[3] = ulidAlphabet[(u[1]&7)<<2|u[2]>>6]
	dst[4] = ulidAlphabet[(u[2]>>1)&31]
	dst[5] = ulidAlphabet[(u[2]&1)<<4|u[3]>>4]
	dst[6] = ulidAlphabet[(u[3]&15)<<1|u[4]>>7]
	dst[7] = ulidAlphabet[(u[4]>>2)&31]
	dst[8] = ulidAlphabet[(u[4]&3)<<3|u[5]>>5]
	dst[9] = ulidAlphabet[u[5]&31]
	dst[10] = ulidAlphabet[u[6]>>3]
	dst[11] = ulidAlphabet[(u[6]&7)<<2|u[7]>>6]
	dst[12] = ulidAlphabet[(u[7]>>1)&31]
	dst[13] = ulidAlphabet[(u[7]&1)<<4|u[8]>>4]
	dst[14] = ulidAlphabet[(u[8]&15)<<1|u[9]>>7]
	dst[15] = ulidAlphabet[(u[9]>>2)&31]
	dst[16] = ulidAlphabet[(u[9]&3)<<3|u[10]>>5]
	dst[17] = ulidAlphabet[u[10]&31]
	dst[18] = ulidAlphabet[u[11]>>3]
	dst[19] = ulidAlphabet[(u[11]&7)<<2|u[12]>>6]
	dst[20] = ulidAlphabet[(u[12]>>1)&31]
	dst[21] = ulidAlphabet[(u[12]&1)<<4|u[13]>>4]
	dst[22] = ulidAlphabet[(u[13]&15)<<1|u[14]>>7]
	dst[23] = ulidAlphabet[(u[14]>>2)&31]
	dst[24] = ulidAlphabet[(u[14]&3)<<3|u[15]>>5]
	dst[25] = ulidAlphabet[u[15]&31]

	return ULIDLength, true
}
