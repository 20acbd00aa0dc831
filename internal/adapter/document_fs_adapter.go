// Package adapter contains filesystem and persistence adapters for the splice CLI.
package adapter

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"

	m "github.com/mouse-blink/splice/internal/model"
)

// DocumentFSAdapter abstracts the filesystem operations the domain layer
// relies on when reading and rewriting documents. It hides direct `os` access
// so the workflow logic can be tested without touching the disk.
type DocumentFSAdapter interface {
	// ReadDocument loads a whole file, decodes it with the named encoding and
	// splits it into lines.
	ReadDocument(path m.Path, encoding string) (m.Document, error)

	// WriteDocument encodes the document and overwrites the file at doc.Path.
	// The file's permission bits are kept. There is no backup and no atomic swap.
	WriteDocument(doc m.Document) error

	// ReadText loads a file as a single decoded string.
	ReadText(path m.Path, encoding string) (string, error)

	// HashFile returns the SHA-256 hex digest of the file at path.
	HashFile(path m.Path) (string, error)

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)
}

// LocalDocumentFSAdapter is the os-backed DocumentFSAdapter.
type LocalDocumentFSAdapter struct{}

// NewLocalDocumentFSAdapter constructs a LocalDocumentFSAdapter instance ready
// to be wired into the workflow.
func NewLocalDocumentFSAdapter() *LocalDocumentFSAdapter {
	return &LocalDocumentFSAdapter{}
}

// ReadDocument loads and decodes a document.
func (a *LocalDocumentFSAdapter) ReadDocument(path m.Path, encoding string) (m.Document, error) {
	// #nosec G304 - path is the document the user asked to rewrite
	raw, err := os.ReadFile(string(path))
	if err != nil {
		return m.Document{}, err
	}

	text, err := decodeText(raw, encoding)
	if err != nil {
		return m.Document{}, fmt.Errorf("read %s: %w", path, err)
	}

	sum := sha256.Sum256(raw)

	if encoding == "" {
		encoding = m.DefaultEncoding
	}

	return m.Document{
		Path:     path,
		Encoding: encoding,
		Hash:     fmt.Sprintf("%x", sum[:]),
		Lines:    m.SplitLines(text),
	}, nil
}

// WriteDocument encodes the document and overwrites its file.
func (a *LocalDocumentFSAdapter) WriteDocument(doc m.Document) error {
	data, err := encodeText(doc.Text(), doc.Encoding)
	if err != nil {
		return fmt.Errorf("write %s: %w", doc.Path, err)
	}

	perm := os.FileMode(0o644)
	if info, err := os.Stat(string(doc.Path)); err == nil {
		perm = info.Mode().Perm()
	}

	return os.WriteFile(string(doc.Path), data, perm)
}

// ReadText loads a file as decoded text.
func (a *LocalDocumentFSAdapter) ReadText(path m.Path, encoding string) (string, error) {
	// #nosec G304 - replacement files are named by the user's recipe
	raw, err := os.ReadFile(string(path))
	if err != nil {
		return "", err
	}

	text, err := decodeText(raw, encoding)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	return text, nil
}

// HashFile returns the SHA-256 hash of the file at the provided path.
func (a *LocalDocumentFSAdapter) HashFile(path m.Path) (string, error) {
	f, err := os.Open(filepath.Clean(string(path)))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalDocumentFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}
