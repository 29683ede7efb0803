// Package metadata extracts an embedded capture date from media files.
//
// The extractor runs an ordered chain of capability-checked strategies: XMP
// packet, EXIF tags, then MP4 container creation time. The first strategy
// that yields a parseable date wins; there is no merging or cross-field
// validation. Unreadable, undecodable, or metadata-free files are never an
// error, just a miss.
package metadata

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/backmassage/restamp/internal/stamp"
)

// strategy is one link of the fallback chain.
type strategy interface {
	source() stamp.Source
	canHandle(ext string) bool
	extract(path string) (time.Time, bool)
}

// Extractor implements [stamp.DateExtractor] over the built-in strategies.
type Extractor struct {
	strategies []strategy
}

// NewExtractor returns an extractor with the full XMP → EXIF → MP4 chain.
func NewExtractor() *Extractor {
	return &Extractor{
		strategies: []strategy{
			xmpStrategy{},
			exifStrategy{},
			mp4Strategy{},
		},
	}
}

// Extract tries each strategy that handles the file's extension, in order.
func (e *Extractor) Extract(path string) (time.Time, stamp.Source, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	for _, s := range e.strategies {
		if !s.canHandle(ext) {
			continue
		}
		if t, ok := s.extract(path); ok {
			return t, s.source(), true
		}
	}
	return time.Time{}, stamp.SourceCtimeFallback, false
}

// imageExts are the eligible extensions the image strategies attempt.
var imageExts = map[string]bool{
	".bmp":  true,
	".gif":  true,
	".jfif": true,
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".webp": true,
}

// videoExts are the eligible ISO BMFF container extensions.
var videoExts = map[string]bool{
	".3g2": true,
	".3gp": true,
	".mov": true,
	".mp4": true,
}
