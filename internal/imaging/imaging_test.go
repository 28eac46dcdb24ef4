package imaging

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\x0D\x0A\x1A\x0A\x00\x00\x00\x0DIHDR")

type fakeConverter struct {
	out []byte
	err error
}

func (f fakeConverter) ConvertHEIC(_ context.Context, r io.Reader) ([]byte, error) {
	_, _ = io.Copy(io.Discard, r)
	return f.out, f.err
}

func TestPreparer_Prepare(t *testing.T) {
	ctx := context.Background()
	p := NewPreparer(nil)

	t.Run("accepts declared jpeg", func(t *testing.T) {
		img, err := p.Prepare(ctx, Image{Filename: "rex.JPG", ContentType: "image/jpeg", Size: 1024, Body: strings.NewReader("x")})
		require.NoError(t, err)
		assert.Equal(t, "image/jpeg", img.ContentType)
		assert.Equal(t, "JPG", img.Ext())
	})

	t.Run("sniffs octet-stream", func(t *testing.T) {
		img, err := p.Prepare(ctx, Image{Filename: "photo", ContentType: "application/octet-stream", Size: int64(len(pngHeader)), Body: bytes.NewReader(pngHeader)})
		require.NoError(t, err)
		assert.Equal(t, "image/png", img.ContentType)
		assert.Equal(t, "png", img.Ext())

		body, err := io.ReadAll(img.Body)
		require.NoError(t, err)
		assert.Equal(t, pngHeader, body)
	})

	t.Run("rejects other types", func(t *testing.T) {
		_, err := p.Prepare(ctx, Image{Filename: "doc.pdf", ContentType: "application/pdf", Size: 10, Body: strings.NewReader("%PDF")})
		assert.ErrorIs(t, err, ErrUnsupportedType)
		assert.Equal(t, "Please use JPG, PNG, WebP, GIF, or HEIC.", Message(err))
	})

	t.Run("rejects large files", func(t *testing.T) {
		_, err := p.Prepare(ctx, Image{Filename: "big.png", ContentType: "image/png", Size: MaxSize + 1, Body: strings.NewReader("x")})
		assert.ErrorIs(t, err, ErrTooLarge)
		assert.Equal(t, "Photo must be under 10MB", Message(err))
	})

	t.Run("accepts exactly max size", func(t *testing.T) {
		_, err := p.Prepare(ctx, Image{Filename: "ok.gif", ContentType: "image/gif", Size: MaxSize, Body: strings.NewReader("x")})
		assert.NoError(t, err)
	})

	t.Run("heic without converter", func(t *testing.T) {
		_, err := p.Prepare(ctx, Image{Filename: "IMG_1.HEIC", ContentType: "", Size: 10, Body: strings.NewReader("ftypheic")})
		assert.ErrorIs(t, err, ErrConversionFailed)
		assert.Equal(t, "Could not convert HEIC file. Please try a JPG or PNG instead.", Message(err))
	})

	t.Run("heic converted", func(t *testing.T) {
		conv := NewPreparer(fakeConverter{out: []byte("jpeg-bytes")})
		img, err := conv.Prepare(ctx, Image{Filename: "IMG_1.HEIC", ContentType: "image/heic", Size: 10, Body: strings.NewReader("heic")})
		require.NoError(t, err)
		assert.Equal(t, "IMG_1.jpg", img.Filename)
		assert.Equal(t, "image/jpeg", img.ContentType)
		assert.Equal(t, int64(10), img.Size)
		assert.Equal(t, "jpg", img.Ext())
	})

	t.Run("converter error", func(t *testing.T) {
		conv := NewPreparer(fakeConverter{err: errors.New("boom")})
		_, err := conv.Prepare(ctx, Image{Filename: "a.heif", ContentType: "image/heif", Body: strings.NewReader("x")})
		assert.ErrorIs(t, err, ErrConversionFailed)
	})
}

func TestMessage_Unknown(t *testing.T) {
	assert.Equal(t, "", Message(errors.New("other")))
}
