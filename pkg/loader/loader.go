package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ai-course-be/pkg/apperr"
)

// DocumentKind classifies a source file by extension.
type DocumentKind string

const (
	KindMarkdown DocumentKind = "markdown"
	KindText     DocumentKind = "text"
)

// Document is one loaded source file.
type Document struct {
	FileName string
	Kind     DocumentKind
	Content  string
}

// FileLoader reads course source files from a base directory. Stored
// paths are relative to that directory.
type FileLoader struct {
	baseDir string
}

func NewFileLoader(baseDir string) *FileLoader {
	return &FileLoader{baseDir: baseDir}
}

// DetectKind maps a file name to its document kind. Unknown extensions
// are rejected so binary uploads never reach the summarizer.
func DetectKind(fileName string) (DocumentKind, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".md", ".markdown":
		return KindMarkdown, nil
	case ".txt", ".text":
		return KindText, nil
	default:
		return "", fmt.Errorf("unsupported source file type: %s", fileName)
	}
}

// Load reads one stored file. A missing file is a NotFoundError so the
// caller can distinguish it from IO failures.
func (l *FileLoader) Load(storagePath string) (*Document, error) {
	kind, err := DetectKind(storagePath)
	if err != nil {
		return nil, err
	}

	fullPath := filepath.Join(l.baseDir, storagePath)
	content, err := os.ReadFile(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperr.NewNotFound("course file", storagePath)
		}
		return nil, fmt.Errorf("read source file %s: %w", storagePath, err)
	}

	return &Document{
		FileName: filepath.Base(storagePath),
		Kind:     kind,
		Content:  string(content),
	}, nil
}

// LoadAll reads every stored file. A file that has gone missing since
// registration is skipped and its path returned, so the caller can
// record a warning and keep going. Other IO failures abort the load.
func (l *FileLoader) LoadAll(storagePaths []string) ([]Document, []string, error) {
	documents := make([]Document, 0, len(storagePaths))
	var skipped []string
	for _, path := range storagePaths {
		doc, err := l.Load(path)
		if err != nil {
			if apperr.IsNotFound(err) {
				skipped = append(skipped, path)
				continue
			}
			return nil, nil, err
		}
		documents = append(documents, *doc)
	}
	return documents, skipped, nil
}
