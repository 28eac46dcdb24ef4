package handler

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"petparrk/internal/imaging"
)

// flexString accepts a JSON string or number, keeping the text as typed.
// Form-style inputs such as prices arrive as either.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*f = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

func isMultipart(c *fiber.Ctx) bool {
	return strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm)
}

// validID reports whether the route parameter is a well-formed UUID.
func validID(c *fiber.Ctx, param string) bool {
	_, err := uuid.Parse(c.Params(param))
	return err == nil
}

// formImage opens the uploaded file in field. The caller must close the returned closer.
func formImage(c *fiber.Ctx, field string) (imaging.Image, func() error, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return imaging.Image{}, nil, err
	}
	f, err := fh.Open()
	if err != nil {
		return imaging.Image{}, nil, err
	}
	img := imaging.Image{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(fiber.HeaderContentType),
		Size:        fh.Size,
		Body:        f,
	}
	return img, f.Close, nil
}
