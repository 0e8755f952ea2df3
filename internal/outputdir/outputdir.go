// Package outputdir manages the numbered result directories that accumulate
// under a base output directory, one per report run:
//
//	<base>/coverhtml-000
//	<base>/coverhtml-001
//	...
package outputdir

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/IgorBayerl/ReportGenerator/coverhtml/internal/filesystem"
)

const (
	// Prefix is the literal name prefix shared by all result directories.
	Prefix = "coverhtml-"

	dirPerm = 0o755
)

// EnsureBase creates the base output directory, including missing parents,
// if it does not exist yet.
func EnsureBase(fsys filesystem.Filesystem, base string) error {
	if _, err := fsys.Stat(base); err == nil {
		return nil
	}
	if err := fsys.MkdirAll(base, dirPerm); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", base, err)
	}
	return nil
}

// NextName returns the result directory name that follows the given sibling
// entry names. Entries without Prefix are ignored.
//
// The predecessor is the lexicographically last matching name, not the
// numerically largest one: with coverhtml-999 and coverhtml-1000 present the
// result is coverhtml-1000 again, and creating it fails.
func NextName(entries []string) (string, error) {
	var existing []string
	for _, name := range entries {
		if strings.HasPrefix(name, Prefix) {
			existing = append(existing, name)
		}
	}
	if len(existing) == 0 {
		return Prefix + "000", nil
	}

	sort.Strings(existing)
	last := existing[len(existing)-1]
	parts := strings.Split(last, "-")
	lastNo, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return "", fmt.Errorf("cannot number result directory after %q: %w", last, err)
	}
	return fmt.Sprintf("%s%03d", Prefix, lastNo+1), nil
}

// Allocate picks the next result directory under base and creates it. The
// directory must not exist beforehand; a concurrent run that created the same
// name first makes this fail with fs.ErrExist.
func Allocate(fsys filesystem.Filesystem, base string) (string, error) {
	entries, err := fsys.ReadDir(base)
	if err != nil {
		return "", fmt.Errorf("failed to list output directory %s: %w", base, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}

	name, err := NextName(names)
	if err != nil {
		return "", err
	}

	dir := filepath.Join(base, name)
	if err := fsys.Mkdir(dir, dirPerm); err != nil {
		return "", fmt.Errorf("failed to create result directory %s: %w", dir, err)
	}
	return dir, nil
}
