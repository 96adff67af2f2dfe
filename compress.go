package ubershader

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// Archives ship as either raw bytes or a single zstd frame holding them.
// The two are distinguished by magic: DecodeArchive sniffs the zstd frame
// header and decompresses transparently, so loaders never need to know
// which form they were handed.

// zstdFrameMagic is the first four bytes of every zstd frame
// (0xFD2FB528 little-endian).
var zstdFrameMagic = [4]byte{0x28, 0xB5, 0x2F, 0xFD}

// zstdEncoder and zstdDecoder are reused across calls to avoid repeated
// initialization overhead. zstd.Encoder and zstd.Decoder are safe for
// concurrent use.
var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	// Archives are written once and read many times; spend encode time
	// for the smaller frame.
	zstdEncoder, err = zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.SpeedBestCompression),
	)
	if err != nil {
		panic("ubershader: zstd encoder initialization failed: " + err.Error())
	}

	zstdDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic("ubershader: zstd decoder initialization failed: " + err.Error())
	}
}

// Compress wraps serialized archive bytes in a zstd frame.
func Compress(data []byte) []byte {
	return zstdEncoder.EncodeAll(data, nil)
}

// Decompress unwraps a zstd frame produced by Compress.
func Decompress(data []byte) ([]byte, error) {
	out, err := zstdDecoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("ubershader: zstd decompress: %w", err)
	}
	return out, nil
}

// IsCompressed reports whether data starts with a zstd frame header.
func IsCompressed(data []byte) bool {
	return len(data) >= len(zstdFrameMagic) &&
		data[0] == zstdFrameMagic[0] &&
		data[1] == zstdFrameMagic[1] &&
		data[2] == zstdFrameMagic[2] &&
		data[3] == zstdFrameMagic[3]
}
