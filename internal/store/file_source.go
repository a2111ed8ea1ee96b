package store

import (
	"fmt"
	"os"

	"polyshare/internal/domain"
	"polyshare/internal/share"
)

// FileSource reads share documents from disk. A missing or malformed file
// is reported to the caller, never papered over.
type FileSource struct{}

func NewFileSource() *FileSource { return &FileSource{} }

// Load reads and parses the document at path.
func (s *FileSource) Load(path string) (domain.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Document{}, fmt.Errorf("read %s: %w", path, err)
	}
	doc, err := share.ParseDocument(data)
	if err != nil {
		return domain.Document{}, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Compile-time assertion that FileSource implements domain.ShareSource.
var _ domain.ShareSource = (*FileSource)(nil)
