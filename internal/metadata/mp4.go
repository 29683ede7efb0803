package metadata

import (
	"os"
	"time"

	mp4 "github.com/abema/go-mp4"

	"github.com/backmassage/restamp/internal/stamp"
)

// mp4EpochOffset is the number of seconds between the ISO BMFF epoch
// (1904-01-01 UTC) and the Unix epoch.
const mp4EpochOffset = 2082844800

// futureThreshold is how far past "now" an mvhd creation time may sit
// before it is rejected as camera-clock garbage.
const futureThreshold = 24 * time.Hour

// mp4Strategy reads the movie header (mvhd) creation time from ISO BMFF
// containers (mp4/mov/3gp). An unset or implausible value is a miss.
type mp4Strategy struct{}

func (mp4Strategy) source() stamp.Source { return stamp.SourceMP4 }

func (mp4Strategy) canHandle(ext string) bool { return videoExts[ext] }

func (mp4Strategy) extract(path string) (time.Time, bool) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, false
	}
	defer f.Close()

	boxes, err := mp4.ExtractBoxWithPayload(f, nil,
		mp4.BoxPath{mp4.BoxTypeMoov(), mp4.BoxTypeMvhd()})
	if err != nil || len(boxes) == 0 {
		return time.Time{}, false
	}
	mvhd, ok := boxes[0].Payload.(*mp4.Mvhd)
	if !ok {
		return time.Time{}, false
	}

	var ct uint64
	if mvhd.GetVersion() == 1 {
		ct = mvhd.CreationTimeV1
	} else {
		ct = uint64(mvhd.CreationTimeV0)
	}

	unixSec := int64(ct) - mp4EpochOffset
	if unixSec <= 0 {
		return time.Time{}, false
	}
	t := time.Unix(unixSec, 0)
	if t.After(time.Now().Add(futureThreshold)) {
		return time.Time{}, false
	}
	return t, true
}
