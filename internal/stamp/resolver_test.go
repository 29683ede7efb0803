package stamp

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"
)

var stampShape = regexp.MustCompile(`^\d{4}\.\d{2}\.\d{2}\.\d{2}\.\d{2}\.\d{2}$`)

// fakeExtractor returns a fixed answer, standing in for the metadata chain.
type fakeExtractor struct {
	t   time.Time
	src Source
	ok  bool
}

func (f fakeExtractor) Extract(string) (time.Time, Source, bool) {
	return f.t, f.src, f.ok
}

func touch(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResolveMetadataHit(t *testing.T) {
	path := touch(t, t.TempDir(), "a.jpg")
	when := time.Date(2023, 5, 6, 7, 8, 9, 0, time.Local)
	r := &Resolver{Extractor: fakeExtractor{t: when, src: SourceEXIF, ok: true}}

	ts, src, err := r.Resolve(path, true)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if ts != "2023.05.06.07.08.09" {
		t.Errorf("stamp = %q, want %q", ts, "2023.05.06.07.08.09")
	}
	if src != SourceEXIF {
		t.Errorf("source = %v, want %v", src, SourceEXIF)
	}
}

func TestResolveMetadataMissFallsBackToCtime(t *testing.T) {
	path := touch(t, t.TempDir(), "a.jpg")
	r := &Resolver{Extractor: fakeExtractor{ok: false}}

	ts, src, err := r.Resolve(path, true)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if src != SourceCtimeFallback {
		t.Errorf("source = %v, want %v", src, SourceCtimeFallback)
	}
	if !stampShape.MatchString(ts) {
		t.Errorf("stamp %q is not stamp-shaped", ts)
	}
}

func TestResolveWithoutMetadata(t *testing.T) {
	path := touch(t, t.TempDir(), "a.jpg")
	r := &Resolver{} // nil extractor

	for _, useMetadata := range []bool{false, true} {
		ts, src, err := r.Resolve(path, useMetadata)
		if err != nil {
			t.Fatalf("Resolve(useMetadata=%v) error: %v", useMetadata, err)
		}
		want := SourceCtimeDefault
		if src != want {
			t.Errorf("Resolve(useMetadata=%v) source = %v, want %v", useMetadata, src, want)
		}
		if !stampShape.MatchString(ts) {
			t.Errorf("stamp %q is not stamp-shaped", ts)
		}
	}
}

func TestResolveMissingFile(t *testing.T) {
	r := &Resolver{}
	path := filepath.Join(t.TempDir(), "gone.jpg")

	_, _, err := r.Resolve(path, false)
	if err == nil {
		t.Fatal("Resolve() on a missing file should fail")
	}
	if !strings.Contains(err.Error(), "read ctime") {
		t.Errorf("error %q should mention the ctime read", err)
	}
}

func TestResolveCtimeTracksRecentWrite(t *testing.T) {
	path := touch(t, t.TempDir(), "a.jpg")
	r := &Resolver{}

	ts, _, err := r.Resolve(path, false)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	got, err := Parse(ts)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", ts, err)
	}
	if d := time.Since(got); d < -2*time.Minute || d > 2*time.Minute {
		t.Errorf("ctime stamp %q is %v away from now", ts, d)
	}
}
