package document

import (
	"time"

	"github.com/Abraxas-365/chamba/pkg/kernel"
)

// DocumentResponse - DTO for returning document metadata
type DocumentResponse struct {
	ID              kernel.DocumentID `json:"id"`
	HiringProcessID kernel.ProcessID  `json:"hiring_process_id"`
	FileName        string            `json:"file_name"`
	ContentType     string            `json:"content_type"`
	SizeBytes       int64             `json:"size_bytes"`
	UploadedAt      time.Time         `json:"uploaded_at"`
}
