package ingest

import (
	"context"
	"fmt"
	"os"
)

// Source yields the UTF-8 text of one uploaded corpus file. The pipeline
// treats file reading as the only operation that may block; everything after
// the reads is synchronous CPU work.
type Source interface {
	Name() string
	ReadText(ctx context.Context) (string, error)
}

// BlobSource is an in-memory Source, used by upload handlers that already
// hold the file contents.
type BlobSource struct {
	FileName string
	Content  string
}

func (b BlobSource) Name() string { return b.FileName }

func (b BlobSource) ReadText(_ context.Context) (string, error) { return b.Content, nil }

// FileSource reads a file from the local filesystem, used by the offline
// ingestion command.
type FileSource struct {
	Path string
}

func (f FileSource) Name() string { return f.Path }

func (f FileSource) ReadText(_ context.Context) (string, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", f.Path, err)
	}
	return string(data), nil
}
