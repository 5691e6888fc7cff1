// Package fs writes extracted plain-text results to a directory tree,
// one file per WARC record, mirroring the record's target URI as a path.
package fs

import (
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/webarchivetools/warctext"
	"github.com/webarchivetools/warctext/pipeline"
)

// URLToPath converts a WARC-Target-URI into a relative file path.
// Example: https://example.com/docs/api/users → example.com/docs/api/users.txt
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", warctext.Errorf(warctext.EINVALID, "invalid target URI: %v", err)
	}

	path := u.Host + u.Path
	if u.Host != "" && u.Path == "" {
		path += "/"
	}

	// Handle root or trailing slash → index.txt
	if path == "" || strings.HasSuffix(path, "/") {
		return path + "index.txt", nil
	}

	path = strings.TrimPrefix(path, "/")
	return path + ".txt", nil
}

// FormatResult renders a Result as a small header followed by its
// extracted text.
func FormatResult(res pipeline.Result) string {
	var b strings.Builder
	b.WriteString("source: ")
	b.WriteString(res.TargetURI)
	b.WriteString("\ntype: ")
	b.WriteString(res.RecordType.String())
	b.WriteString("\nlength: ")
	b.WriteString(strconv.FormatUint(res.ContentLength, 10))
	b.WriteString("\n\n")
	b.WriteString(res.Text)
	return b.String()
}

// Writer writes Results as text files under a base directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer rooted at baseDir.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// Write renders res and writes it to baseDir, creating parent directories
// as needed. The file is written to a temporary sibling path first and
// renamed into place, so a reader never observes a partially written file.
func (w *Writer) Write(res pipeline.Result) error {
	if res.TargetURI == "" {
		return warctext.Errorf(warctext.EINVALID, "result has no target URI")
	}

	relPath, err := URLToPath(res.TargetURI)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, relPath)
	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return warctext.Errorf(warctext.EIO, "creating output directory: %v", err)
	}

	tmp, err := os.CreateTemp(dir, ".writer-*.tmp")
	if err != nil {
		return warctext.Errorf(warctext.EIO, "creating temp file: %v", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(FormatResult(res)); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return warctext.Errorf(warctext.EIO, "writing output: %v", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return warctext.Errorf(warctext.EIO, "closing output: %v", err)
	}
	if err := os.Rename(tmpPath, fullPath); err != nil {
		os.Remove(tmpPath)
		return warctext.Errorf(warctext.EIO, "committing output: %v", err)
	}
	return nil
}
