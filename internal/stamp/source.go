package stamp

// Source identifies which part of the fallback chain produced a stamp.
type Source int

const (
	// SourceXMP: xmp:CreateDate or photoshop:DateCreated from an XMP packet.
	SourceXMP Source = iota
	// SourceEXIF: DateTimeOriginal or DateTimeDigitized EXIF tag.
	SourceEXIF
	// SourceMP4: mvhd creation time from an ISO BMFF container.
	SourceMP4
	// SourceCtimeFallback: metadata was requested but yielded nothing.
	SourceCtimeFallback
	// SourceCtimeDefault: metadata was never requested.
	SourceCtimeDefault
)

// String returns the label used in traces and the rename preview.
func (s Source) String() string {
	switch s {
	case SourceXMP:
		return "XMP"
	case SourceEXIF:
		return "EXIF"
	case SourceMP4:
		return "MP4"
	case SourceCtimeFallback:
		return "ctime (metadata fallback)"
	case SourceCtimeDefault:
		return "ctime (default)"
	default:
		return "unknown"
	}
}

// Metadata reports whether the stamp came from embedded metadata rather
// than the filesystem.
func (s Source) Metadata() bool {
	switch s {
	case SourceXMP, SourceEXIF, SourceMP4:
		return true
	}
	return false
}
