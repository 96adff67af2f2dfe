package spirv

import "testing"

func TestIsSPIRV(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want bool
	}{
		{"magic only", []byte{0x03, 0x02, 0x23, 0x07}, true},
		{"magic with body", []byte{0x03, 0x02, 0x23, 0x07, 0x00, 0x01, 0x00, 0x00}, true},
		{"nil", nil, false},
		{"short", []byte{0x03, 0x02, 0x23}, false},
		{"big endian magic", []byte{0x07, 0x23, 0x02, 0x03}, false},
		{"wgsl source", []byte("@vertex fn main() {}"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSPIRV(tt.data); got != tt.want {
				t.Errorf("IsSPIRV() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWords(t *testing.T) {
	data := []byte{
		0x03, 0x02, 0x23, 0x07, // magic
		0x78, 0x56, 0x34, 0x12,
	}
	words, err := Words(data)
	if err != nil {
		t.Fatalf("Words() = %v", err)
	}
	if len(words) != 2 {
		t.Fatalf("len(words) = %d, want 2", len(words))
	}
	if words[0] != Magic {
		t.Errorf("words[0] = 0x%08x, want 0x%08x", words[0], Magic)
	}
	if words[1] != 0x12345678 {
		t.Errorf("words[1] = 0x%08x, want 0x12345678", words[1])
	}
}

func TestWordsEmpty(t *testing.T) {
	words, err := Words(nil)
	if err != nil {
		t.Fatalf("Words(nil) = %v", err)
	}
	if len(words) != 0 {
		t.Errorf("len(words) = %d, want 0", len(words))
	}
}

func TestWordsRejectsRaggedLength(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5, 7} {
		if _, err := Words(make([]byte, n)); err == nil {
			t.Errorf("Words(%d bytes) = nil, want error", n)
		}
	}
}
