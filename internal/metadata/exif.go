package metadata

import (
	"os"
	"strings"
	"time"

	"github.com/rwcarlsen/goexif/exif"

	"github.com/backmassage/restamp/internal/stamp"
)

// exifStrategy reads DateTimeOriginal, then DateTimeDigitized. EXIF stores
// "YYYY:MM:DD HH:MM:SS" with no zone; values are interpreted as local time,
// and embedded NUL padding from sloppy writers is stripped first.
type exifStrategy struct{}

func (exifStrategy) source() stamp.Source { return stamp.SourceEXIF }

func (exifStrategy) canHandle(ext string) bool { return imageExts[ext] }

func (exifStrategy) extract(path string) (time.Time, bool) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, false
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return time.Time{}, false
	}

	for _, tag := range []exif.FieldName{exif.DateTimeOriginal, exif.DateTimeDigitized} {
		if t, ok := tagTime(x, tag); ok {
			return t, true
		}
	}
	return time.Time{}, false
}

func tagTime(x *exif.Exif, name exif.FieldName) (time.Time, bool) {
	field, err := x.Get(name)
	if err != nil {
		return time.Time{}, false
	}
	s, err := field.StringVal()
	if err != nil {
		return time.Time{}, false
	}
	s = strings.TrimSpace(strings.ReplaceAll(s, "\x00", ""))
	t, err := time.ParseInLocation("2006:01:02 15:04:05", s, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
