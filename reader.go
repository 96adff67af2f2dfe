package ubershader

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// DecodeArchive validates a serialized archive and returns its in-memory
// view. The input may be raw archive bytes or a zstd frame produced by
// Compress; compressed input is decompressed transparently.
//
// DecodeArchive keeps a private copy of the input, so the caller may reuse
// or mutate data afterwards. Structural problems (truncation, bad magic or
// version, offsets escaping the buffer, unterminated flag names, invalid
// support values) are reported as a *FormatError carrying the byte offset
// of the offending field.
func DecodeArchive(data []byte) (*Archive, error) {
	var buf []byte
	if IsCompressed(data) {
		var err error
		buf, err = Decompress(data)
		if err != nil {
			return nil, err
		}
	} else {
		buf = make([]byte, len(data))
		copy(buf, data)
	}

	size := uint64(len(buf))
	if size < headerSize {
		return nil, &FormatError{Offset: 0, Msg: fmt.Sprintf("truncated header: %d bytes", size)}
	}
	if magic := binary.LittleEndian.Uint32(buf[headerMagicOff:]); magic != ArchiveMagic {
		return nil, &FormatError{Offset: headerMagicOff, Msg: fmt.Sprintf("bad magic 0x%08x", magic)}
	}
	if version := binary.LittleEndian.Uint32(buf[headerVersionOff:]); version != ArchiveVersion {
		return nil, &FormatError{Offset: headerVersionOff, Msg: fmt.Sprintf("unsupported version %d", version)}
	}

	specCount := binary.LittleEndian.Uint64(buf[headerSpecCountOff:])
	specsOff := binary.LittleEndian.Uint64(buf[headerSpecsOffsetOff:])
	if !rangeOK(size, specsOff, specCount, specSize) {
		return nil, &FormatError{Offset: headerSpecsOffsetOff, Msg: "spec array out of bounds"}
	}

	specs := make([]Spec, specCount)
	for i := range specs {
		recOff := specsOff + uint64(i)*specSize
		rec := buf[recOff:]

		flagCount := binary.LittleEndian.Uint64(rec[specFlagCountOff:])
		flagsOff := binary.LittleEndian.Uint64(rec[specFlagsOffsetOff:])
		if !rangeOK(size, flagsOff, flagCount, flagSize) {
			return nil, &FormatError{Offset: recOff + specFlagsOffsetOff, Msg: "flag array out of bounds"}
		}

		pkgSize := binary.LittleEndian.Uint64(rec[specPackageSizeOff:])
		pkgOff := binary.LittleEndian.Uint64(rec[specPackageOff:])
		if !rangeOK(size, pkgOff, pkgSize, 1) {
			return nil, &FormatError{Offset: recOff + specPackageOff, Msg: "package out of bounds"}
		}

		flags := make([]flagView, flagCount)
		for j := range flags {
			fOff := flagsOff + uint64(j)*flagSize
			name, support, err := decodeFlag(buf, fOff)
			if err != nil {
				return nil, err
			}
			flags[j] = flagView{name: name, support: support}
		}

		specs[i] = Spec{
			shading:  ShadingModel(binary.LittleEndian.Uint32(rec[specShadingOff:])),
			blending: BlendingMode(binary.LittleEndian.Uint32(rec[specBlendingOff:])),
			flags:    flags,
			pkg:      buf[pkgOff : pkgOff+pkgSize],
		}
	}

	a := &Archive{buf: buf, specs: specs}
	Logger().Debug("decoded ubershader archive", "specs", len(specs), "bytes", len(buf))
	return a, nil
}

// decodeFlag patches one flag record at fOff into a name view and a
// validated support level.
func decodeFlag(buf []byte, fOff uint64) ([]byte, FeatureSupport, error) {
	size := uint64(len(buf))

	nameOff := binary.LittleEndian.Uint64(buf[fOff+flagNameOffsetOff:])
	if nameOff >= size {
		return nil, 0, &FormatError{Offset: fOff + flagNameOffsetOff, Msg: "flag name out of bounds"}
	}
	nul := bytes.IndexByte(buf[nameOff:], 0)
	if nul < 0 {
		return nil, 0, &FormatError{Offset: nameOff, Msg: "unterminated flag name"}
	}

	support := binary.LittleEndian.Uint64(buf[fOff+flagSupportOff:])
	if support > uint64(FeatureRequired) {
		return nil, 0, &FormatError{Offset: fOff + flagSupportOff, Msg: fmt.Sprintf("invalid support value %d", support)}
	}

	return buf[nameOff : nameOff+uint64(nul)], FeatureSupport(support), nil
}

// rangeOK reports whether count records of recordSize bytes starting at
// off lie within a buffer of size bytes. All arithmetic avoids overflow.
func rangeOK(size, off, count, recordSize uint64) bool {
	if off > size {
		return false
	}
	if recordSize == 0 {
		return true
	}
	return count <= (size-off)/recordSize
}
