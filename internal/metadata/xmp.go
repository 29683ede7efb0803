package metadata

import (
	"io"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/backmassage/restamp/internal/stamp"
)

// xmpScanLimit bounds how much of the file is searched for an XMP packet.
// The packet sits in the header segments of every format we care about.
const xmpScanLimit = 1 << 20

var (
	xmpCreateDateRe  = regexp.MustCompile(`<xmp:CreateDate>([^<]+)</xmp:CreateDate>`)
	xmpDateCreatedRe = regexp.MustCompile(`<photoshop:DateCreated>([^<]+)</photoshop:DateCreated>`)
)

// xmpStrategy finds an XMP packet by scanning the leading bytes of the file
// and pulls xmp:CreateDate (preferred) or photoshop:DateCreated out of it.
// A byte scan sidesteps per-format segment walking and works identically for
// JPEG APP1, PNG iTXt, and WebP/GIF chunks.
type xmpStrategy struct{}

func (xmpStrategy) source() stamp.Source { return stamp.SourceXMP }

func (xmpStrategy) canHandle(ext string) bool { return imageExts[ext] }

func (xmpStrategy) extract(path string) (time.Time, bool) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, false
	}
	defer f.Close()

	buf := make([]byte, xmpScanLimit)
	n, _ := io.ReadFull(f, buf)
	data := buf[:n]

	m := xmpCreateDateRe.FindSubmatch(data)
	if m == nil {
		m = xmpDateCreatedRe.FindSubmatch(data)
	}
	if m == nil {
		return time.Time{}, false
	}
	return parseISODate(strings.TrimSpace(string(m[1])))
}

// isoLayouts are tried in order against the raw XMP value. Fractional
// seconds parse but are truncated later by the stamp format.
var isoLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// parseISODate parses an ISO-8601 XMP date. A trailing Z is UTC. When the
// full value doesn't parse, the first 19 characters are retried with the T
// separator flattened, which salvages values carrying nonstandard tails.
func parseISODate(s string) (time.Time, bool) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	if len(s) >= 19 {
		flat := strings.Replace(s[:19], "T", " ", 1)
		if t, err := time.Parse("2006-01-02 15:04:05", flat); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
