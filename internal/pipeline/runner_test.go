package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"testing"

	"github.com/backmassage/restamp/internal/config"
	"github.com/backmassage/restamp/internal/logging"
)

// xmpTS is the stamp produced by the date embedded via xmpFixture.
const xmpTS = "2023.05.06.07.08.09"

// xmpFixture writes a file whose leading bytes carry an XMP creation date,
// giving metadata-mode runs a deterministic stamp regardless of filesystem
// timestamps.
func xmpFixture(t *testing.T, dir, name, isoDate string) {
	t.Helper()
	body := fmt.Sprintf("junk <xmp:CreateDate>%s</xmp:CreateDate> junk", isoDate)
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func listNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

func metadataConfig(dir string) config.Config {
	cfg := config.DefaultConfig()
	cfg.Dir = dir
	cfg.TimeFromEXIF = true
	return cfg
}

func TestRunRenamesFromMetadata(t *testing.T) {
	dir := t.TempDir()
	xmpFixture(t, dir, "Holiday Pics.jpg", "2023-05-06T07:08:09")
	xmpFixture(t, dir, "beach.PNG", "2023-05-06T07:08:09")

	cfg := metadataConfig(dir)
	stats := Run(&cfg, logging.NewLogger())

	if stats.Renamed != 2 {
		t.Fatalf("Renamed = %d, want 2", stats.Renamed)
	}
	if stats.Eligible != 2 || stats.Scanned != 2 {
		t.Errorf("Eligible/Scanned = %d/%d, want 2/2", stats.Eligible, stats.Scanned)
	}
	if stats.Errors != 0 {
		t.Errorf("Errors = %d, want 0", stats.Errors)
	}

	want := []string{xmpTS + "_beach.png", xmpTS + "_holidaypics.jpg"}
	if got := listNames(t, dir); !equalStrings(got, want) {
		t.Errorf("directory = %v, want %v", got, want)
	}
}

func TestRunIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	xmpFixture(t, dir, "one.jpg", "2023-05-06T07:08:09")
	xmpFixture(t, dir, "two.gif", "2023-05-06T07:08:09")

	cfg := metadataConfig(dir)
	log := logging.NewLogger()

	first := Run(&cfg, log)
	if first.Renamed != 2 {
		t.Fatalf("first run Renamed = %d, want 2", first.Renamed)
	}
	after := listNames(t, dir)

	second := Run(&cfg, log)
	if second.Renamed != 0 {
		t.Errorf("second run Renamed = %d, want 0", second.Renamed)
	}
	if second.SkippedCorrectStamp != 2 {
		t.Errorf("second run SkippedCorrectStamp = %d, want 2", second.SkippedCorrectStamp)
	}
	if got := listNames(t, dir); !equalStrings(got, after) {
		t.Errorf("second run changed the directory: %v -> %v", after, got)
	}
}

func TestRunResolvesCollisions(t *testing.T) {
	dir := t.TempDir()
	// All three normalize to the same stem and carry the same date.
	xmpFixture(t, dir, "a b.jpg", "2023-05-06T07:08:09")
	xmpFixture(t, dir, "a+b.jpg", "2023-05-06T07:08:09")
	xmpFixture(t, dir, "a,b.jpg", "2023-05-06T07:08:09")

	cfg := metadataConfig(dir)
	stats := Run(&cfg, logging.NewLogger())

	if stats.Renamed != 3 {
		t.Fatalf("Renamed = %d, want 3", stats.Renamed)
	}
	want := []string{
		xmpTS + "_ab.jpg",
		xmpTS + "_ab_1.jpg",
		xmpTS + "_ab_2.jpg",
	}
	if got := listNames(t, dir); !equalStrings(got, want) {
		t.Errorf("directory = %v, want %v", got, want)
	}
}

func TestRunClearsExecuteBits(t *testing.T) {
	dir := t.TempDir()
	xmpFixture(t, dir, "renamed.jpg", "2023-05-06T07:08:09")
	if err := os.Chmod(filepath.Join(dir, "renamed.jpg"), 0o755); err != nil {
		t.Fatal(err)
	}
	// Already stamped correctly: skipped, but still swept by the
	// permission pass.
	xmpFixture(t, dir, xmpTS+"_kept.jpg", "2023-05-06T07:08:09")
	if err := os.Chmod(filepath.Join(dir, xmpTS+"_kept.jpg"), 0o711); err != nil {
		t.Fatal(err)
	}

	cfg := metadataConfig(dir)
	stats := Run(&cfg, logging.NewLogger())

	if stats.Renamed != 1 {
		t.Fatalf("Renamed = %d, want 1", stats.Renamed)
	}
	if stats.PermissionsAdjusted != 2 {
		t.Errorf("PermissionsAdjusted = %d, want 2", stats.PermissionsAdjusted)
	}
	for _, name := range []string{xmpTS + "_renamed.jpg", xmpTS + "_kept.jpg"} {
		fi, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("stat %s: %v", name, err)
		}
		if fi.Mode().Perm()&0o111 != 0 {
			t.Errorf("%s still has execute bits: %o", name, fi.Mode().Perm())
		}
	}
}

func TestRunSkipsNameContainingDate(t *testing.T) {
	dir := t.TempDir()
	xmpFixture(t, dir, "trip_"+xmpTS+".jpg", "2023-05-06T07:08:09")

	cfg := metadataConfig(dir)
	stats := Run(&cfg, logging.NewLogger())

	if stats.Renamed != 0 {
		t.Errorf("Renamed = %d, want 0", stats.Renamed)
	}
	if stats.SkippedContainsDate != 1 {
		t.Errorf("SkippedContainsDate = %d, want 1", stats.SkippedContainsDate)
	}
}

func TestRunForceRenormalizes(t *testing.T) {
	dir := t.TempDir()
	xmpFixture(t, dir, xmpTS+"_Messy Name (1).jpg", "2023-05-06T07:08:09")

	cfg := metadataConfig(dir)
	cfg.Force = true
	stats := Run(&cfg, logging.NewLogger())

	if stats.Renamed != 1 {
		t.Fatalf("Renamed = %d, want 1", stats.Renamed)
	}
	want := []string{xmpTS + "_messyname1.jpg"}
	if got := listNames(t, dir); !equalStrings(got, want) {
		t.Errorf("directory = %v, want %v", got, want)
	}
}

func TestRunCtimeMode(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "photo.jpg"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := config.DefaultConfig()
	cfg.Dir = dir
	stats := Run(&cfg, logging.NewLogger())

	if stats.Renamed != 1 {
		t.Fatalf("Renamed = %d, want 1", stats.Renamed)
	}
	names := listNames(t, dir)
	re := regexp.MustCompile(`^\d{4}\.\d{2}\.\d{2}\.\d{2}\.\d{2}\.\d{2}_photo\.jpg$`)
	if len(names) != 1 || !re.MatchString(names[0]) {
		t.Errorf("directory = %v, want a single stamped photo.jpg", names)
	}
}

func TestRunEmptyDirectory(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Dir = t.TempDir()
	stats := Run(&cfg, logging.NewLogger())

	if stats.Scanned != 0 || stats.Eligible != 0 || stats.Renamed != 0 {
		t.Errorf("stats = %+v, want all zero", stats)
	}
}

func TestRunIgnoresIneligibleFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o755); err != nil {
		t.Fatal(err)
	}
	xmpFixture(t, dir, "pic.jpg", "2023-05-06T07:08:09")

	cfg := metadataConfig(dir)
	stats := Run(&cfg, logging.NewLogger())

	if stats.Scanned != 2 || stats.Eligible != 1 || stats.Renamed != 1 {
		t.Errorf("stats = %+v, want scanned 2, eligible 1, renamed 1", stats)
	}
	// The ineligible file is untouched, execute bits included.
	fi, err := os.Stat(filepath.Join(dir, "notes.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if fi.Mode().Perm()&0o111 == 0 {
		t.Error("ineligible file lost its execute bits")
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
