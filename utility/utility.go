package utility

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/wal-g/tracelog"
)

func LoggedClose(c io.Closer, errmsg string) {
	err := c.Close()
	if errmsg == "" {
		errmsg = "Problem with closing object"
	}
	if err != nil {
		tracelog.ErrorLogger.Printf(errmsg+": %v", err)
	}
}

// ReadAllAndClose drains the reader and closes it, logging a close failure.
func ReadAllAndClose(rc io.ReadCloser, errmsg string) ([]byte, error) {
	defer LoggedClose(rc, errmsg)
	return io.ReadAll(rc)
}

func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func IsSuccessfulStatus(code int) bool {
	return code >= 200 && code < 300
}

// TruncateBody shortens a response body for log and error messages.
func TruncateBody(body []byte, limit int) string {
	text := strings.TrimSpace(string(body))
	if limit <= 0 || len(text) <= limit {
		return text
	}
	return text[:limit] + "..."
}

// AbsolutePath returns an absolute form of path, or path itself when it
// cannot be resolved.
func AbsolutePath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
