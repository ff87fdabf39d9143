package registrations

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/communityday/registrations/internal/models"
	"github.com/communityday/registrations/pkg/storage"
)

// ObjectUploader is the slice of storage.S3 used by S3Repository.
type ObjectUploader interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader, contentLength int64) (string, error)
}

// S3Repository stores each registration as a JSON object.
type S3Repository struct {
	uploader ObjectUploader
	prefix   string
}

// NewS3Repository creates an S3-backed store writing under prefix.
func NewS3Repository(uploader ObjectUploader, prefix string) *S3Repository {
	return &S3Repository{uploader: uploader, prefix: prefix}
}

// Put uploads the registration to {prefix}{id}.json, overwriting any existing object.
func (r *S3Repository) Put(ctx context.Context, reg *models.Registration) error {
	doc, err := document(reg)
	if err != nil {
		return err
	}
	key := storage.RegistrationKey(r.prefix, reg.ID)
	if _, err := r.uploader.Upload(ctx, key, "application/json", bytes.NewReader(doc), int64(len(doc))); err != nil {
		return fmt.Errorf("upload registration: %w", err)
	}
	return nil
}
