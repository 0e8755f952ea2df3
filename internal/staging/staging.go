package staging

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/IgorBayerl/ReportGenerator/coverhtml/internal/filesystem"
)

// StagedFileName is the fixed name of the input copy inside a result directory.
const StagedFileName = "opencover.xml"

// Stage copies the coverage file byte for byte into dir as StagedFileName and
// returns the destination path and the number of bytes written. The original
// file is left untouched.
func Stage(fsys filesystem.Filesystem, src, dir string) (string, int64, error) {
	dst := filepath.Join(dir, StagedFileName)

	in, err := fsys.Open(src)
	if err != nil {
		return "", 0, fmt.Errorf("failed to open coverage file %s: %w", src, err)
	}
	defer in.Close()

	out, err := fsys.Create(dst)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create %s: %w", dst, err)
	}

	n, err := io.Copy(out, in)
	if err != nil {
		out.Close()
		return "", n, fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}
	if err := out.Close(); err != nil {
		return "", n, fmt.Errorf("failed to write %s: %w", dst, err)
	}
	return dst, n, nil
}
