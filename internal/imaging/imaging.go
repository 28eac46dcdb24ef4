// Package imaging validates uploaded photos before they are stored.
//
// Accepted types are JPEG, PNG, WebP and GIF up to MaxSize bytes. HEIC/HEIF uploads are
// handed to a Converter and come back as JPEG.
package imaging

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
)

// MaxSize is the largest accepted upload.
const MaxSize = 10 * 1024 * 1024

const sniffLen = 512

var (
	ErrUnsupportedType  = errors.New("unsupported image type")
	ErrTooLarge         = errors.New("image too large")
	ErrConversionFailed = errors.New("heic conversion failed")
	ErrHEICUnsupported  = errors.New("heic conversion is not available")
)

var allowedTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"image/gif":  "gif",
}

// Image is an uploaded file. Size is -1 when unknown.
type Image struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Ext returns the file extension used for the storage key, without the dot.
func (i Image) Ext() string {
	if ext := strings.TrimPrefix(path.Ext(i.Filename), "."); ext != "" {
		return ext
	}
	if ext, ok := allowedTypes[i.ContentType]; ok {
		return ext
	}
	return "bin"
}

// Converter turns a HEIC/HEIF image into JPEG bytes.
type Converter interface {
	ConvertHEIC(ctx context.Context, r io.Reader) ([]byte, error)
}

// UnsupportedConverter rejects every HEIC upload.
type UnsupportedConverter struct{}

func (UnsupportedConverter) ConvertHEIC(context.Context, io.Reader) ([]byte, error) {
	return nil, ErrHEICUnsupported
}

// Preparer validates uploads and converts HEIC photos.
type Preparer struct {
	converter Converter
}

// NewPreparer creates a Preparer. A nil converter rejects HEIC uploads.
func NewPreparer(c Converter) *Preparer {
	if c == nil {
		c = UnsupportedConverter{}
	}
	return &Preparer{converter: c}
}

// Prepare returns an image ready for upload or one of the package errors.
func (p *Preparer) Prepare(ctx context.Context, img Image) (Image, error) {
	if img.Body == nil {
		return Image{}, fmt.Errorf("%w: empty body", ErrUnsupportedType)
	}

	img.ContentType = strings.ToLower(strings.TrimSpace(img.ContentType))
	if img.ContentType == "" || img.ContentType == "application/octet-stream" {
		br := bufio.NewReaderSize(img.Body, sniffLen)
		head, _ := br.Peek(sniffLen)
		img.ContentType = http.DetectContentType(head)
		img.Body = br
	}

	if isHEIC(img) {
		jpeg, err := p.converter.ConvertHEIC(ctx, img.Body)
		if err != nil {
			return Image{}, fmt.Errorf("%w: %v", ErrConversionFailed, err)
		}
		return Image{
			Filename:    jpegName(img.Filename),
			ContentType: "image/jpeg",
			Size:        int64(len(jpeg)),
			Body:        bytes.NewReader(jpeg),
		}, nil
	}

	if _, ok := allowedTypes[img.ContentType]; !ok {
		return Image{}, fmt.Errorf("%w: %s", ErrUnsupportedType, img.ContentType)
	}
	if img.Size > MaxSize {
		return Image{}, fmt.Errorf("%w: %d bytes", ErrTooLarge, img.Size)
	}
	return img, nil
}

// Message returns the user-facing text for an error returned by Prepare.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrConversionFailed):
		return "Could not convert HEIC file. Please try a JPG or PNG instead."
	case errors.Is(err, ErrTooLarge):
		return "Photo must be under 10MB"
	case errors.Is(err, ErrUnsupportedType):
		return "Please use JPG, PNG, WebP, GIF, or HEIC."
	default:
		return ""
	}
}

func isHEIC(img Image) bool {
	if img.ContentType == "image/heic" || img.ContentType == "image/heif" {
		return true
	}
	name := strings.ToLower(img.Filename)
	return strings.HasSuffix(name, ".heic") || strings.HasSuffix(name, ".heif")
}

func jpegName(name string) string {
	lower := strings.ToLower(name)
	for _, ext := range []string{".heic", ".heif"} {
		if strings.HasSuffix(lower, ext) {
			return name[:len(name)-len(ext)] + ".jpg"
		}
	}
	return name
}
