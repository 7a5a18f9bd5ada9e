package documentsrv

import (
	"context"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/Abraxas-365/chamba/pkg/fsx"
	"github.com/Abraxas-365/chamba/pkg/kernel"
	"github.com/Abraxas-365/chamba/pkg/logx"
	"github.com/Abraxas-365/chamba/tracking/document"
)

// MaxFileSize caps a single uploaded document
const MaxFileSize = 10 << 20 // 10 MiB

// Service orchestrates document uploads, downloads and deletion. The
// metadata row is authoritative: bytes are written to storage first
// and compensated away if the row cannot be inserted.
type Service struct {
	repo document.Repository
	fs   fsx.FileSystem
}

// NewService creates a new document service
func NewService(repo document.Repository, fs fsx.FileSystem) *Service {
	return &Service{
		repo: repo,
		fs:   fs,
	}
}

// UploadDocument stores the file bytes and records the metadata row
func (s *Service) UploadDocument(ctx context.Context, processID kernel.ProcessID, userID kernel.UserID, fileName, contentType string, data []byte) (*document.Document, error) {
	if len(data) == 0 {
		return nil, document.ErrEmptyFile()
	}
	if len(data) > MaxFileSize {
		return nil, document.ErrFileTooLarge().
			WithDetail("size_bytes", len(data)).
			WithDetail("max_bytes", MaxFileSize)
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	docID := kernel.NewDocumentID(uuid.NewString())
	storagePath := s.fs.Join(userID.String(), processID.String(), docID.String()+filepath.Ext(fileName))

	if err := s.fs.WriteFile(ctx, storagePath, data); err != nil {
		return nil, document.ErrStorageFailure().WithCause(err)
	}

	doc := &document.Document{
		ID:              docID,
		HiringProcessID: processID,
		FileName:        filepath.Base(fileName),
		ContentType:     contentType,
		SizeBytes:       int64(len(data)),
		StoragePath:     kernel.StoragePath(storagePath),
		UploadedAt:      time.Now(),
	}

	if err := s.repo.Create(ctx, userID, doc); err != nil {
		// Compensate the orphaned object; losing the cleanup only
		// costs storage, never correctness
		if cleanupErr := s.fs.DeleteFile(ctx, storagePath); cleanupErr != nil {
			logx.Warnf("failed to clean up orphaned document %s: %v", storagePath, cleanupErr)
		}
		return nil, err
	}

	logx.Infof("uploaded document %s (%d bytes) to process %s", doc.ID, doc.SizeBytes, processID)
	return doc, nil
}

// ListDocuments retrieves the documents of a hiring process
func (s *Service) ListDocuments(ctx context.Context, processID kernel.ProcessID, userID kernel.UserID) ([]document.Document, error) {
	return s.repo.ListByProcess(ctx, processID, userID)
}

// DownloadDocument opens the stored bytes of a document for streaming.
// The caller owns the returned reader.
func (s *Service) DownloadDocument(ctx context.Context, id kernel.DocumentID, processID kernel.ProcessID, userID kernel.UserID) (*document.Document, io.ReadCloser, error) {
	doc, err := s.repo.GetByID(ctx, id, processID, userID)
	if err != nil {
		return nil, nil, err
	}

	stream, err := s.fs.ReadFileStream(ctx, doc.StoragePath.String())
	if err != nil {
		return nil, nil, document.ErrStorageFailure().WithCause(err)
	}

	return doc, stream, nil
}

// DeleteDocument removes the metadata row and then the stored bytes.
// A failed storage delete leaves an unreferenced object behind, which
// is preferable to a dangling metadata row.
func (s *Service) DeleteDocument(ctx context.Context, id kernel.DocumentID, processID kernel.ProcessID, userID kernel.UserID) error {
	doc, err := s.repo.Delete(ctx, id, processID, userID)
	if err != nil {
		return err
	}

	if err := s.fs.DeleteFile(ctx, doc.StoragePath.String()); err != nil {
		logx.Warnf("failed to delete stored document %s: %v", doc.StoragePath, err)
	}

	return nil
}
