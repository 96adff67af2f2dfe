package ubershader

// Archive wire format.
//
// An archive is a single buffer laid out as a 24-byte header, a contiguous
// array of 40-byte spec records, the flag arrays of every spec (16 bytes
// per flag), the NUL-terminated flag-name strings, and finally the package
// blobs. All multi-byte fields are little-endian and all offsets are
// absolute byte positions from the start of the buffer:
//
//	header:  magic u32 | version u32 | specCount u64 | specsOffset u64
//	spec:    shadingModel u32 | blendingMode u32 | flagCount u64 |
//	         flagsOffset u64 | packageByteCount u64 | packageOffset u64
//	flag:    nameOffset u64 | support u64
//
// The layout lets a loader read the whole file into memory once and patch
// offsets into slice views; no field is individually deserialized and no
// package bytes are copied.

// ArchiveMagic identifies an archive buffer ("UBAR" read as a little-endian
// uint32).
const ArchiveMagic uint32 = 0x52414255

// ArchiveVersion is the current wire format version. Readers reject
// archives with any other version.
const ArchiveVersion uint32 = 1

// Record sizes in bytes.
const (
	headerSize = 24
	specSize   = 40
	flagSize   = 16
)

// Field offsets within the header.
const (
	headerMagicOff       = 0
	headerVersionOff     = 4
	headerSpecCountOff   = 8
	headerSpecsOffsetOff = 16
)

// Field offsets within a spec record.
const (
	specShadingOff     = 0
	specBlendingOff    = 4
	specFlagCountOff   = 8
	specFlagsOffsetOff = 16
	specPackageSizeOff = 24
	specPackageOff     = 32
)

// Field offsets within a flag record.
const (
	flagNameOffsetOff = 0
	flagSupportOff    = 8
)
