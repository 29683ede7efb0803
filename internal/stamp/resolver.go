package stamp

import (
	"fmt"
	"time"

	"github.com/djherbis/times"
)

// DateExtractor is the metadata capability the resolver consults before
// falling back to filesystem time. Implementations must treat unreadable or
// undecodable files as "no metadata" (ok=false), never as an error.
type DateExtractor interface {
	Extract(path string) (t time.Time, src Source, ok bool)
}

// Resolver produces the canonical stamp for a file. Extractor may be nil,
// which degrades every resolution to ctime.
type Resolver struct {
	Extractor DateExtractor
}

// Resolve returns the stamp for path and the source that produced it.
//
// With useMetadata the extractor chain runs first and a miss falls through
// to ctime (SourceCtimeFallback); otherwise ctime is used directly
// (SourceCtimeDefault). The only error is a failed filesystem time read,
// which the caller must treat as a per-file hard error.
func (r *Resolver) Resolve(path string, useMetadata bool) (string, Source, error) {
	if useMetadata && r.Extractor != nil {
		if t, src, ok := r.Extractor.Extract(path); ok {
			return Format(t), src, nil
		}
		t, err := changeTime(path)
		if err != nil {
			return "", SourceCtimeFallback, fmt.Errorf("read ctime for %s: %w", path, err)
		}
		return Format(t), SourceCtimeFallback, nil
	}

	t, err := changeTime(path)
	if err != nil {
		return "", SourceCtimeDefault, fmt.Errorf("read ctime for %s: %w", path, err)
	}
	return Format(t), SourceCtimeDefault, nil
}

// changeTime reads the last-status-change time without following symlinks.
// Filesystems that don't expose a change time fall back to mtime.
func changeTime(path string) (time.Time, error) {
	ts, err := times.Lstat(path)
	if err != nil {
		return time.Time{}, err
	}
	if ts.HasChangeTime() {
		return ts.ChangeTime(), nil
	}
	return ts.ModTime(), nil
}
