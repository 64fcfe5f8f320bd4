// Package credentials implements the teacher credential source consulted
// during login.
package credentials

import (
	"encoding/json"
	"fmt"
	"os"

	"example.com/mergington/internal/session"
)

// File reads credentials from a JSON file of shape
// {"teachers": [{"username": ..., "password": ...}]}. The file is
// re-read on every call, so edits take effect without a restart.
type File struct {
	path string
}

// NewFile constructs a File source for the given path.
func NewFile(path string) *File {
	return &File{path: path}
}

// Teachers implements session.CredentialSource.
func (f *File) Teachers() ([]session.Credentials, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("read teachers file: %w", err)
	}

	var doc struct {
		Teachers []session.Credentials `json:"teachers"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse teachers file %s: %w", f.path, err)
	}
	return doc.Teachers, nil
}
