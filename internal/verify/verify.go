// Package verify checks that the application files DRILLBUR needs are
// present in the install directory.
//
// The check never stops at the first miss: the whole missing set is
// collected so the user sees every problem in one pass. A non-empty
// missing set is one of the two fatal installer conditions.
package verify

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrMissingFiles indicates one or more required files are absent.
var ErrMissingFiles = errors.New("required files missing")

// Report partitions the required set into present and missing files.
// Both slices are sorted for stable output.
type Report struct {
	Present []string
	Missing []string
}

// Files checks each required file relative to installDir. Existence only;
// content, size, and permissions are not inspected.
func Files(installDir string, required []string) Report {
	var rep Report
	for _, rel := range required {
		if _, err := os.Stat(filepath.Join(installDir, rel)); err != nil {
			rep.Missing = append(rep.Missing, rel)
		} else {
			rep.Present = append(rep.Present, rel)
		}
	}
	sort.Strings(rep.Present)
	sort.Strings(rep.Missing)
	return rep
}

// OK reports whether nothing is missing.
func (r Report) OK() bool {
	return len(r.Missing) == 0
}

// Err returns nil when the report is clean, otherwise an error wrapping
// ErrMissingFiles that names every missing file.
func (r Report) Err() error {
	if r.OK() {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrMissingFiles, strings.Join(r.Missing, ", "))
}
