package document

import (
	"time"

	"github.com/Abraxas-365/chamba/pkg/kernel"
)

// Document is a file attached to a hiring process: a CV version, an
// offer letter, an assessment brief. The bytes live in object storage;
// this entity is the metadata row pointing at them.
type Document struct {
	ID              kernel.DocumentID  `db:"id" json:"id"`
	HiringProcessID kernel.ProcessID   `db:"hiring_process_id" json:"hiring_process_id"`
	FileName        string             `db:"file_name" json:"file_name"`
	ContentType     string             `db:"content_type" json:"content_type"`
	SizeBytes       int64              `db:"size_bytes" json:"size_bytes"`
	StoragePath     kernel.StoragePath `db:"storage_path" json:"-"`
	UploadedAt      time.Time          `db:"uploaded_at" json:"uploaded_at"`
}
