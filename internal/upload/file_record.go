package upload

import (
	"crypto/sha256"
	"encoding/hex"
	"os"

	"github.com/pkg/errors"
)

// FileRecord holds a selected file in memory for the duration of one attempt.
type FileRecord struct {
	Path    string
	Content []byte
	SHA256  string
}

func NewFileRecord(path string) (*FileRecord, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	return &FileRecord{Path: path, Content: content, SHA256: Digest(content)}, nil
}

// Digest returns the lowercase hex SHA-256 of content.
func Digest(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}
