// Package naming decides what a file should be called: it reconciles an
// original basename with its resolved stamp and resolves target-name
// collisions within a run.
package naming

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/backmassage/restamp/internal/stamp"
)

// Status is the terminal classification a reconciliation can reach.
type Status int

const (
	// StatusRename: a candidate target name was produced.
	StatusRename Status = iota
	// StatusCorrectStamp: name already starts with the resolved stamp and
	// force was not requested.
	StatusCorrectStamp
	// StatusContainsDate: the resolved stamp appears elsewhere in the name
	// and force was not requested.
	StatusContainsDate
	// StatusInvalidAfterStrip: stripping left nothing usable.
	StatusInvalidAfterStrip
	// StatusNoChange: the candidate equals the original name.
	StatusNoChange
)

// Outcome is the result of [Reconcile]. Target is set only for StatusRename.
type Outcome struct {
	Status Status
	Target string
}

// Reconcile inspects a file's current basename against its resolved stamp
// and either produces a candidate target name or a skip classification.
//
// A leading stamp equal to ts is left alone unless force is set. A leading
// stamp that differs is always stripped, and one further leading stamp is
// stripped after it if present (repairs double-stamped legacy names; the
// bound is exactly two passes). Remainders are then normalized and prefixed
// with ts.
func Reconcile(original, ts string, force bool) Outcome {
	name := original

	if stamp.HasPrefix(original) {
		prefix := original[:stamp.Length]
		if prefix == ts && !force {
			return Outcome{Status: StatusCorrectStamp}
		}

		var dotted bool
		if prefix == ts {
			name, dotted = stripLeadingStamp(original)
		} else {
			for i := 0; i < 2 && stamp.HasPrefix(name); i++ {
				name, dotted = stripLeadingStamp(name)
			}
		}

		if name == "" {
			return Outcome{Status: StatusInvalidAfterStrip}
		}
		if dotted && stemOf(name) == "" {
			// The stamp was the entire stem and the extension followed it
			// directly (e.g. "2020.01.01.00.00.00.jpg" stripping to ".jpg").
			// Keep the extension under a substitute stem.
			name = "recovered" + name
		}
	} else if strings.Contains(original, ts) && !force {
		return Outcome{Status: StatusContainsDate}
	}

	stem, ext := normalize(name)
	if stem == "" {
		if ext == "" {
			return Outcome{Status: StatusInvalidAfterStrip}
		}
		stem = "untitled"
	}

	target := ts + "_" + stem + ext
	if target == original {
		return Outcome{Status: StatusNoChange}
	}
	return Outcome{Status: StatusRename, Target: target}
}

// stripLeadingStamp removes the 19-character stamp prefix and one following
// separator underscore. dotted reports whether the remainder began with a
// dot before the underscore trim, i.e. the name was stamp+extension only.
func stripLeadingStamp(name string) (rest string, dotted bool) {
	rest = name[stamp.Length:]
	dotted = strings.HasPrefix(rest, ".")
	rest = strings.TrimPrefix(rest, "_")
	return rest, dotted
}

func stemOf(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// stripRe matches the characters deleted from name stems: brackets,
// parentheses, whitespace, commas, plus and ampersand.
var stripRe = regexp.MustCompile(`[\[\]()\s,+&]`)

// normalize lower-cases stem and extension, folds .jpeg to .jpg, deletes
// the stripped character set, and trims leading underscores then leading
// dots from the stem.
func normalize(name string) (stem, ext string) {
	ext = strings.ToLower(filepath.Ext(name))
	stem = strings.ToLower(stemOf(name))

	if ext == ".jpeg" {
		ext = ".jpg"
	}

	stem = stripRe.ReplaceAllString(stem, "")
	stem = strings.TrimLeft(stem, "_")
	stem = strings.TrimLeft(stem, ".")
	return stem, ext
}
