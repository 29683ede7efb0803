package naming

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// maxProbes bounds the numeric-suffix search. Past _100 the file is skipped.
const maxProbes = 100

var (
	// ErrExhausted: no free name within the probe bound.
	ErrExhausted = errors.New("no unique target name within probe bound")
	// ErrSelfTarget: probing reached the file's own current name, meaning
	// the file already occupies the slot it would collide with.
	ErrSelfTarget = errors.New("target name resolves to the file itself")
)

// CollisionResolver tracks target names claimed by earlier files in the
// current run and probes numeric suffixes until a name is free both
// in-memory and on disk. It is used sequentially within a single run.
type CollisionResolver struct {
	claimed map[string]string // final name → source basename that owns it
	exists  func(name string) bool
}

// NewCollisionResolver creates a ready-to-use resolver. exists reports
// whether a basename is already present in the target directory; nil means
// no on-disk checking (useful in tests).
func NewCollisionResolver(exists func(name string) bool) *CollisionResolver {
	return &CollisionResolver{
		claimed: make(map[string]string),
		exists:  exists,
	}
}

// Resolve returns a guaranteed-unique final name for candidate, claiming it
// for original. The claimed set is consulted before the live directory so
// two files in one run can never be assigned the same target. Probes run
// candidate, then _1 … _100 inserted before the extension; reaching the
// file's own name yields ErrSelfTarget, running out yields ErrExhausted.
func (cr *CollisionResolver) Resolve(original, candidate string) (string, error) {
	ext := filepath.Ext(candidate)
	base := strings.TrimSuffix(candidate, ext)

	name := candidate
	for n := 1; ; n++ {
		if !cr.taken(name) {
			cr.claimed[name] = original
			return name, nil
		}
		if name == original {
			return "", ErrSelfTarget
		}
		if n > maxProbes {
			return "", ErrExhausted
		}
		name = fmt.Sprintf("%s_%d%s", base, n, ext)
	}
}

func (cr *CollisionResolver) taken(name string) bool {
	if _, ok := cr.claimed[name]; ok {
		return true
	}
	return cr.exists != nil && cr.exists(name)
}
