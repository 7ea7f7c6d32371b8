package external

import (
	"context"
	"io"
)

// FileStorage stores uploaded objects and hands back a public URL
type FileStorage interface {
	Upload(ctx context.Context, objectPath string, content io.Reader) (string, error)
}
