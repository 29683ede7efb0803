// Package perms clears execute permission bits on processed files.
package perms

import "os"

// ClearExecuteBits removes the owner/group/other execute bits from a
// regular file. It reports whether a chmod actually happened. A missing
// file or a non-regular file is a silent no-op, matching the tool's
// best-effort contract; only the chmod itself can error.
func ClearExecuteBits(path string) (bool, error) {
	fi, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if !fi.Mode().IsRegular() {
		return false, nil
	}

	mode := fi.Mode().Perm()
	cleared := mode &^ 0o111
	if cleared == mode {
		return false, nil
	}
	if err := os.Chmod(path, cleared); err != nil {
		return false, err
	}
	return true, nil
}
