package entity

import (
	"bytes"
	"testing"

	errs "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/error"
	"github.com/stretchr/testify/assert"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\x0dIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

var svgImage = []byte(`<svg xmlns="http://www.w3.org/2000/svg"><script>alert(1)</script></svg>`)

func TestProofFileValidate(t *testing.T) {
	testCases := []struct {
		name string
		file ProofFile
		err  error
	}{
		{
			name: "png image",
			file: ProofFile{Filename: "receipt.png", ContentType: "image/png", Size: int64(len(pngHeader)), Data: pngHeader},
		},
		{
			name: "declared pdf",
			file: ProofFile{Filename: "receipt.pdf", ContentType: "application/pdf", Size: int64(len(pngHeader)), Data: pngHeader},
			err:  errs.ErrInvalidFile,
		},
		{
			name: "text disguised as image",
			file: ProofFile{Filename: "receipt.png", ContentType: "image/png", Size: 11, Data: []byte("hello world")},
			err:  errs.ErrInvalidFile,
		},
		{
			name: "svg image",
			file: ProofFile{
				Filename:    "receipt.svg",
				ContentType: "image/svg+xml",
				Size:        int64(len(svgImage)),
				Data:        svgImage,
			},
			err: errs.ErrInvalidFile,
		},
		{
			name: "empty file",
			file: ProofFile{Filename: "receipt.png", ContentType: "image/png"},
			err:  errs.ErrInvalidFile,
		},
		{
			name: "too large",
			file: ProofFile{
				Filename:    "receipt.png",
				ContentType: "image/png",
				Size:        MaxProofSize + 1,
				Data:        append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, MaxProofSize)...),
			},
			err: errs.ErrFileTooLarge,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.file.Validate()
			if tc.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.err)
			assert.True(t, errs.IsValidationError(err))
		})
	}
}

func TestProofFileExtension(t *testing.T) {
	assert.Equal(t, ".png", ProofFile{Filename: "receipt", Data: pngHeader}.Extension())
	assert.Equal(t, ".png", ProofFile{Filename: "proof.html", Data: pngHeader}.Extension())
	assert.Equal(t, ".png", ProofFile{Filename: "Receipt.JPG", Data: pngHeader}.Extension())
}

func TestProofObjectPath(t *testing.T) {
	assert.Equal(t, "payment-proofs/pending/u-1/obj.png", ProofObjectPath("u-1", "obj", ".png"))
}
