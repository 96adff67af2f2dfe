// Package spirv classifies shader package bytes and unpacks SPIR-V
// modules into word form.
package spirv

import "fmt"

// Magic is the SPIR-V module magic number (first word, little-endian).
const Magic uint32 = 0x07230203

// IsSPIRV reports whether data begins with the SPIR-V magic word.
// Packages that do not are treated as WGSL source.
func IsSPIRV(data []byte) bool {
	return len(data) >= 4 &&
		data[0] == 0x03 && data[1] == 0x02 && data[2] == 0x23 && data[3] == 0x07
}

// Words converts a SPIR-V byte stream into little-endian 32-bit words,
// the form GPU APIs consume.
func Words(data []byte) ([]uint32, error) {
	if len(data)%4 != 0 {
		return nil, fmt.Errorf("spirv: module length %d is not a multiple of 4", len(data))
	}
	words := make([]uint32, len(data)/4)
	for i := range words {
		words[i] = uint32(data[i*4]) |
			uint32(data[i*4+1])<<8 |
			uint32(data[i*4+2])<<16 |
			uint32(data[i*4+3])<<24
	}
	return words, nil
}
