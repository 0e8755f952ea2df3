package htmlreport

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IgorBayerl/ReportGenerator/coverhtml/internal/filesystem"
)

func writePage(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFindEntryPoint(t *testing.T) {
	tests := []struct {
		name      string
		files     map[string]string
		wantFile  string
		wantTitle string
	}{
		{
			name: "index.html with title",
			files: map[string]string{
				"index.html":    "<!DOCTYPE html><html><head><title>\n  Summary -\n Coverage Report </title></head><body></body></html>",
				"MyClass.html":  "<html><head><title>MyClass</title></head></html>",
				"opencover.xml": "<CoverageSession/>",
			},
			wantFile:  "index.html",
			wantTitle: "Summary - Coverage Report",
		},
		{
			name: "index.htm fallback",
			files: map[string]string{
				"index.htm": "<html><head><title>Coverage Report</title></head></html>",
			},
			wantFile:  "index.htm",
			wantTitle: "Coverage Report",
		},
		{
			name: "prefers index.html",
			files: map[string]string{
				"index.htm":  "<title>old</title>",
				"index.html": "<title>new</title>",
			},
			wantFile:  "index.html",
			wantTitle: "new",
		},
		{
			name: "no title",
			files: map[string]string{
				"index.html": "<html><body><h1>Report</h1></body></html>",
			},
			wantFile:  "index.html",
			wantTitle: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for name, content := range tt.files {
				writePage(t, dir, name, content)
			}

			ep, err := FindEntryPoint(filesystem.DefaultFS{}, dir)
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(dir, tt.wantFile), ep.Path)
			assert.Equal(t, tt.wantTitle, ep.Title)
		})
	}
}

func TestFindEntryPointMissing(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "opencover.xml", "<CoverageSession/>")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "index.html"), 0o755))

	_, err := FindEntryPoint(filesystem.DefaultFS{}, dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoEntryPoint))
}

var errUnreadable = errors.New("input/output error")

// unreadableFS finds pages but cannot open them.
type unreadableFS struct {
	filesystem.DefaultFS
}

func (unreadableFS) Open(string) (io.ReadCloser, error) { return nil, errUnreadable }

func TestFindEntryPointUsesFilesystem(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "index.html", "<title>Coverage Report</title>")

	_, err := FindEntryPoint(unreadableFS{}, dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, errUnreadable)
	assert.False(t, errors.Is(err, ErrNoEntryPoint))
}

// emptyFS has no files at all.
type emptyFS struct {
	filesystem.DefaultFS
}

func (emptyFS) Stat(name string) (fs.FileInfo, error) {
	return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
}

func TestFindEntryPointMissingOnFilesystem(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "index.html", "<title>Coverage Report</title>")

	_, err := FindEntryPoint(emptyFS{}, dir)
	assert.ErrorIs(t, err, ErrNoEntryPoint)
}
