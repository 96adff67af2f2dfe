package ubershader

import "encoding/binary"

// Serialize lays out and emits the archive: header, spec records, the flag
// arrays of every variant, the NUL-terminated flag-name strings, and the
// package blobs, in that order. The returned buffer loads with
// DecodeArchive; pass it through Compress to produce the compressed form.
//
// Serialize is valid exactly once. It seals the builder: any further
// AddVariant, AddSpecLine, or Serialize call panics.
func (w *WritableArchive) Serialize() []byte {
	if w.sealed {
		panic("ubershader: Serialize called twice")
	}
	w.sealed = true

	// First pass: assign offsets section by section.
	specsOff := uint64(headerSize)
	cursor := specsOff + uint64(len(w.variants))*specSize

	flagsOffs := make([]uint64, len(w.variants))
	for i := range w.variants {
		flagsOffs[i] = cursor
		cursor += uint64(len(w.variants[i].flagOrder)) * flagSize
	}

	nameOffs := make([][]uint64, len(w.variants))
	for i := range w.variants {
		v := &w.variants[i]
		nameOffs[i] = make([]uint64, len(v.flagOrder))
		for j, name := range v.flagOrder {
			nameOffs[i][j] = cursor
			cursor += uint64(len(name)) + 1
		}
	}

	pkgOffs := make([]uint64, len(w.variants))
	for i := range w.variants {
		pkgOffs[i] = cursor
		cursor += uint64(len(w.variants[i].pkg))
	}

	// Second pass: emit. NUL terminators are the buffer's zero bytes.
	buf := make([]byte, cursor)
	le := binary.LittleEndian

	le.PutUint32(buf[headerMagicOff:], ArchiveMagic)
	le.PutUint32(buf[headerVersionOff:], ArchiveVersion)
	le.PutUint64(buf[headerSpecCountOff:], uint64(len(w.variants)))
	le.PutUint64(buf[headerSpecsOffsetOff:], specsOff)

	for i := range w.variants {
		v := &w.variants[i]

		rec := buf[specsOff+uint64(i)*specSize:]
		le.PutUint32(rec[specShadingOff:], uint32(v.shading))
		le.PutUint32(rec[specBlendingOff:], uint32(v.blending))
		le.PutUint64(rec[specFlagCountOff:], uint64(len(v.flagOrder)))
		le.PutUint64(rec[specFlagsOffsetOff:], flagsOffs[i])
		le.PutUint64(rec[specPackageSizeOff:], uint64(len(v.pkg)))
		le.PutUint64(rec[specPackageOff:], pkgOffs[i])

		for j, name := range v.flagOrder {
			frec := buf[flagsOffs[i]+uint64(j)*flagSize:]
			le.PutUint64(frec[flagNameOffsetOff:], nameOffs[i][j])
			le.PutUint64(frec[flagSupportOff:], uint64(v.supports[name]))
			copy(buf[nameOffs[i][j]:], name)
		}

		copy(buf[pkgOffs[i]:], v.pkg)
	}

	Logger().Debug("serialized ubershader archive", "variants", len(w.variants), "bytes", len(buf))
	return buf
}
