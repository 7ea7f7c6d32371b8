package entity

import (
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	errs "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/error"
)

// MaxProofSize is the largest accepted payment proof image (5 MiB)
const MaxProofSize = 5 << 20

// ProofStoragePrefix is the object-store folder for proofs awaiting review
const ProofStoragePrefix = "payment-proofs/pending"

// ProofFile is an uploaded payment proof image
type ProofFile struct {
	Filename    string
	ContentType string // As declared by the client
	Size        int64
	Data        []byte
}

// Validate checks the declared type, the sniffed type and the size
func (f ProofFile) Validate() error {
	if f.Size <= 0 || len(f.Data) == 0 {
		return fmt.Errorf("%w: file is empty", errs.ErrInvalidFile)
	}
	if f.Size > MaxProofSize || len(f.Data) > MaxProofSize {
		return errs.ErrFileTooLarge
	}
	if !strings.HasPrefix(strings.ToLower(f.ContentType), "image/") {
		return fmt.Errorf("%w: declared type %q", errs.ErrInvalidFile, f.ContentType)
	}

	detected := mimetype.Detect(f.Data)
	if !strings.HasPrefix(detected.String(), "image/") {
		return fmt.Errorf("%w: detected type %q", errs.ErrInvalidFile, detected.String())
	}
	// SVG is markup and can carry script when served from the public bucket
	if detected.Is("image/svg+xml") || strings.Contains(strings.ToLower(f.ContentType), "svg") {
		return fmt.Errorf("%w: svg images are not accepted", errs.ErrInvalidFile)
	}
	return nil
}

// Extension returns the extension of the sniffed content type. The client
// filename is ignored.
func (f ProofFile) Extension() string {
	return mimetype.Detect(f.Data).Extension()
}

// ProofObjectPath builds the storage path for a user's proof object
func ProofObjectPath(userID, objectID, ext string) string {
	return fmt.Sprintf("%s/%s/%s%s", ProofStoragePrefix, userID, objectID, ext)
}
