package display

// TruncateName shortens a filename to max runes for progress and table
// output, replacing the tail with an ellipsis.
func TruncateName(name string, max int) string {
	if max < 2 {
		max = 2
	}
	r := []rune(name)
	if len(r) <= max {
		return name
	}
	return string(r[:max-1]) + "…"
}
