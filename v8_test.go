package uuidx

import (
	"bytes"
	"testing"
)

func TestNewV8(t *testing.T) {
	input := []byte{
		0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77,
		0x88, 0x99, 0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF,
	}

	uuid, err := NewV8(input)
	if err != nil {
		t.Fatalf("NewV8() error = %v", err)
	}

	if uuid.Version() != VersionCustom {
		t.Errorf("NewV8() version = %v, want 8", uuid.Version())
	}
	if uuid.Variant() != VariantRFC4122 {
		t.Errorf("NewV8() variant = %v, want RFC 4122", uuid.Variant())
	}

	// Only the version nibble and variant bits may differ from the input
	for i, b := range input {
		switch i {
		case 6:
			if uuid[i] != 0x80|b&0x0F {
				t.Errorf("NewV8() octet 6 = %#x, want version stamp over %#x", uuid[i], b)
			}
		case 8:
			if uuid[i] != 0x80|b&0x3F {
				t.Errorf("NewV8() octet 8 = %#x, want variant stamp over %#x", uuid[i], b)
			}
		default:
			if uuid[i] != b {
				t.Errorf("NewV8() octet %d = %#x, want %#x", i, uuid[i], b)
			}
		}
	}
}

func TestNewV8_ZeroInput(t *testing.T) {
	uuid, err := NewV8(make([]byte, 32))
	if err != nil {
		t.Fatalf("NewV8() error = %v", err)
	}

	want := "00000000-0000-8000-8000-000000000000"
	if uuid.String() != want {
		t.Errorf("NewV8(zeros) = %v, want %v", uuid, want)
	}
}

func TestNewV8_OnlyFirst16BytesUsed(t *testing.T) {
	long := bytes.Repeat([]byte{0x42}, 64)
	a, err := NewV8(long)
	if err != nil {
		t.Fatalf("NewV8() error = %v", err)
	}
	b, err := NewV8(long[:16])
	if err != nil {
		t.Fatalf("NewV8() error = %v", err)
	}
	if a != b {
		t.Errorf("NewV8() = %v, want %v (trailing bytes must be ignored)", a, b)
	}
}

func TestNewV8_ShortInput(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
	}{
		{"nil", nil},
		{"empty", []byte{}},
		{"fifteen bytes", make([]byte, 15)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewV8(tt.input); err != ErrInvalidLength {
				t.Errorf("NewV8(%s) error = %v, want ErrInvalidLength", tt.name, err)
			}
		})
	}
}

func TestNewV8FromName_Vectors(t *testing.T) {
	tests := []struct {
		name string
		alg  HashAlgorithm
		want string
	}{
		// RFC 9562 appendix B.2 worked example
		{"SHA-256", HashSHA256, "5c146b14-3c52-8afd-938a-375d0df1fbf6"},
		{"SHA-384", HashSHA384, "3df00ae4-42a7-8066-88ad-1f925b8b8e54"},
		{"SHA-512", HashSHA512, "94ee4ddb-9f36-8018-9ccf-86a4441691e0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewV8FromName(tt.alg, NamespaceDNS, []byte("www.example.com"))
			if err != nil {
				t.Fatalf("NewV8FromName() error = %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("NewV8FromName(%s) = %v, want %v", tt.alg, got, tt.want)
			}
		})
	}
}

func TestNewV8FromName_Deterministic(t *testing.T) {
	first, err := NewV8FromName(HashSHA256, NamespaceURL, []byte("https://example.com"))
	if err != nil {
		t.Fatalf("NewV8FromName() error = %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := NewV8FromName(HashSHA256, NamespaceURL, []byte("https://example.com"))
		if err != nil {
			t.Fatalf("NewV8FromName() error = %v", err)
		}
		if again != first {
			t.Errorf("NewV8FromName() not deterministic: got %v, want %v", again, first)
		}
	}
}

func TestNewV8FromName_Errors(t *testing.T) {
	if _, err := NewV8FromName(HashAlgorithm(0), NamespaceDNS, []byte("x")); err != ErrUnknownHashAlgorithm {
		t.Errorf("NewV8FromName(alg 0) error = %v, want ErrUnknownHashAlgorithm", err)
	}

	if _, err := NewV8FromName(HashAlgorithm(42), NamespaceDNS, []byte("x")); err != ErrUnknownHashAlgorithm {
		t.Errorf("NewV8FromName(alg 42) error = %v, want ErrUnknownHashAlgorithm", err)
	}

	if _, err := NewV8FromName(HashSHA256, NamespaceDNS, nil); err != ErrNilName {
		t.Errorf("NewV8FromName(nil name) error = %v, want ErrNilName", err)
	}
}

func TestParseHashAlgorithm(t *testing.T) {
	tests := []struct {
		input   string
		want    HashAlgorithm
		wantErr bool
	}{
		{"SHA-256", HashSHA256, false},
		{"SHA256", HashSHA256, false},
		{"SHA-384", HashSHA384, false},
		{"SHA384", HashSHA384, false},
		{"SHA-512", HashSHA512, false},
		{"SHA512", HashSHA512, false},
		{"SHA-1", 0, true},
		{"md5", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseHashAlgorithm(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHashAlgorithm(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseHashAlgorithm(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
