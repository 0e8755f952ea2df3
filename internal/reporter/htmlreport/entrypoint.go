package htmlreport

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"

	"github.com/IgorBayerl/ReportGenerator/coverhtml/internal/filesystem"
)

// entryPointNames lists the start pages a report generator may write, in order
// of preference.
var entryPointNames = []string{"index.html", "index.htm"}

// ErrNoEntryPoint is returned when a report directory has no start page.
var ErrNoEntryPoint = errors.New("no report entry point found")

// EntryPoint is the page a reader opens first to browse a generated report.
type EntryPoint struct {
	Path  string
	Title string
}

// FindEntryPoint looks for the report start page in dir and reads its title.
func FindEntryPoint(fsys filesystem.Filesystem, dir string) (EntryPoint, error) {
	for _, name := range entryPointNames {
		path := filepath.Join(dir, name)
		info, err := fsys.Stat(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return EntryPoint{}, fmt.Errorf("failed to stat %s: %w", path, err)
		}
		if info.IsDir() {
			continue
		}
		title, err := readTitle(fsys, path)
		if err != nil {
			return EntryPoint{}, err
		}
		return EntryPoint{Path: path, Title: title}, nil
	}
	return EntryPoint{}, fmt.Errorf("%w in %s", ErrNoEntryPoint, dir)
}

// readTitle returns the text of the first <title> element, or "" if there is none.
func readTitle(fsys filesystem.Filesystem, path string) (string, error) {
	file, err := fsys.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open report page %s: %w", path, err)
	}
	defer file.Close()

	doc, err := html.Parse(file)
	if err != nil {
		return "", fmt.Errorf("failed to parse report page %s: %w", path, err)
	}

	var title string
	var f func(*html.Node) bool
	f = func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == "title" {
			var sb strings.Builder
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.TextNode {
					sb.WriteString(c.Data)
				}
			}
			title = strings.Join(strings.Fields(sb.String()), " ")
			return true
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if f(c) {
				return true
			}
		}
		return false
	}
	f(doc)
	return title, nil
}
