package documentsrv

import (
	"bytes"
	"context"
	"io"
	"path"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abraxas-365/chamba/pkg/errx"
	"github.com/Abraxas-365/chamba/pkg/kernel"
	"github.com/Abraxas-365/chamba/tracking/document"
	"github.com/Abraxas-365/chamba/tracking/process"
)

// memoryFS keeps uploaded bytes in a map
type memoryFS struct {
	files   map[string][]byte
	deleted []string
}

func newMemoryFS() *memoryFS {
	return &memoryFS{files: make(map[string][]byte)}
}

func (f *memoryFS) Join(parts ...string) string { return path.Join(parts...) }

func (f *memoryFS) WriteFile(_ context.Context, p string, data []byte) error {
	f.files[p] = data
	return nil
}

func (f *memoryFS) ReadFileStream(_ context.Context, p string) (io.ReadCloser, error) {
	data, ok := f.files[p]
	if !ok {
		return nil, io.ErrUnexpectedEOF
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (f *memoryFS) DeleteFile(_ context.Context, p string) error {
	delete(f.files, p)
	f.deleted = append(f.deleted, p)
	return nil
}

// fakeRepository stores metadata rows keyed by document ID
type fakeRepository struct {
	docs       map[kernel.DocumentID]*document.Document
	failCreate bool
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{docs: make(map[kernel.DocumentID]*document.Document)}
}

func (f *fakeRepository) Create(_ context.Context, _ kernel.UserID, doc *document.Document) error {
	if f.failCreate {
		return process.ErrProcessNotFound()
	}
	f.docs[doc.ID] = doc
	return nil
}

func (f *fakeRepository) GetByID(_ context.Context, id kernel.DocumentID, _ kernel.ProcessID, _ kernel.UserID) (*document.Document, error) {
	doc, ok := f.docs[id]
	if !ok {
		return nil, document.ErrDocumentNotFound()
	}
	return doc, nil
}

func (f *fakeRepository) ListByProcess(context.Context, kernel.ProcessID, kernel.UserID) ([]document.Document, error) {
	docs := make([]document.Document, 0, len(f.docs))
	for _, d := range f.docs {
		docs = append(docs, *d)
	}
	return docs, nil
}

func (f *fakeRepository) Delete(_ context.Context, id kernel.DocumentID, _ kernel.ProcessID, _ kernel.UserID) (*document.Document, error) {
	doc, ok := f.docs[id]
	if !ok {
		return nil, document.ErrDocumentNotFound()
	}
	delete(f.docs, id)
	return doc, nil
}

var (
	processID = kernel.NewProcessID("proc-1")
	userID    = kernel.NewUserID("user-1")
)

func TestUploadDocument(t *testing.T) {
	t.Run("writes bytes and metadata", func(t *testing.T) {
		fs := newMemoryFS()
		svc := NewService(newFakeRepository(), fs)

		doc, err := svc.UploadDocument(context.Background(), processID, userID,
			"cv-2026.pdf", "application/pdf", []byte("%PDF-1.7"))

		require.NoError(t, err)
		assert.Equal(t, "cv-2026.pdf", doc.FileName)
		assert.Equal(t, int64(8), doc.SizeBytes)
		assert.True(t, strings.HasSuffix(doc.StoragePath.String(), ".pdf"))
		assert.Contains(t, fs.files, doc.StoragePath.String())
	})

	t.Run("rejects an empty file", func(t *testing.T) {
		svc := NewService(newFakeRepository(), newMemoryFS())

		_, err := svc.UploadDocument(context.Background(), processID, userID,
			"empty.pdf", "application/pdf", nil)

		require.Error(t, err)
		assert.True(t, errx.IsType(err, errx.TypeValidation))
	})

	t.Run("compensates storage when the row insert fails", func(t *testing.T) {
		fs := newMemoryFS()
		repo := newFakeRepository()
		repo.failCreate = true
		svc := NewService(repo, fs)

		_, err := svc.UploadDocument(context.Background(), processID, userID,
			"cv.pdf", "application/pdf", []byte("%PDF-1.7"))

		require.Error(t, err)
		assert.True(t, errx.IsType(err, errx.TypeNotFound))
		assert.Empty(t, fs.files, "orphaned object should have been removed")
		assert.Len(t, fs.deleted, 1)
	})

	t.Run("strips directory components from the file name", func(t *testing.T) {
		svc := NewService(newFakeRepository(), newMemoryFS())

		doc, err := svc.UploadDocument(context.Background(), processID, userID,
			"../../etc/passwd.txt", "text/plain", []byte("data"))

		require.NoError(t, err)
		assert.Equal(t, "passwd.txt", doc.FileName)
	})
}

func TestDownloadDocument(t *testing.T) {
	t.Run("streams the stored bytes", func(t *testing.T) {
		fs := newMemoryFS()
		repo := newFakeRepository()
		svc := NewService(repo, fs)

		uploaded, err := svc.UploadDocument(context.Background(), processID, userID,
			"offer.pdf", "application/pdf", []byte("offer letter"))
		require.NoError(t, err)

		doc, stream, err := svc.DownloadDocument(context.Background(), uploaded.ID, processID, userID)
		require.NoError(t, err)
		defer stream.Close()

		data, err := io.ReadAll(stream)
		require.NoError(t, err)
		assert.Equal(t, "offer letter", string(data))
		assert.Equal(t, "application/pdf", doc.ContentType)
	})

	t.Run("unknown document is not-found", func(t *testing.T) {
		svc := NewService(newFakeRepository(), newMemoryFS())

		_, _, err := svc.DownloadDocument(context.Background(), kernel.NewDocumentID("nope"), processID, userID)

		require.Error(t, err)
		assert.True(t, errx.IsType(err, errx.TypeNotFound))
	})
}

func TestDeleteDocument(t *testing.T) {
	t.Run("removes both row and bytes", func(t *testing.T) {
		fs := newMemoryFS()
		repo := newFakeRepository()
		svc := NewService(repo, fs)

		uploaded, err := svc.UploadDocument(context.Background(), processID, userID,
			"cv.pdf", "application/pdf", []byte("%PDF-1.7"))
		require.NoError(t, err)

		require.NoError(t, svc.DeleteDocument(context.Background(), uploaded.ID, processID, userID))

		assert.Empty(t, repo.docs)
		assert.Empty(t, fs.files)
	})
}
