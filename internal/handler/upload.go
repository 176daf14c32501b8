package handler

import (
	stderrors "errors"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"nerd/internal/errors"
)

type uploadedFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// readUpload reads the multipart "file" field. A missing field yields an
// empty upload so the service reports it as a validation error.
func readUpload(c echo.Context, maxBytes int64) (*uploadedFile, error) {
	header, err := c.FormFile("file")
	if stderrors.Is(err, http.ErrMissingFile) {
		return &uploadedFile{}, nil
	}
	if err != nil {
		return nil, invalidRequest("invalid multipart form")
	}
	if maxBytes > 0 && header.Size > maxBytes {
		return nil, echo.NewHTTPError(http.StatusRequestEntityTooLarge, errors.ErrorResponse{
			Error: fmt.Sprintf("file exceeds %d bytes", maxBytes),
			Code:  "FILE_TOO_LARGE",
		})
	}

	f, err := header.Open()
	if err != nil {
		return nil, invalidRequest("cannot read uploaded file")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, invalidRequest("cannot read uploaded file")
	}
	contentType := header.Header.Get(echo.HeaderContentType)
	if contentType == "" || contentType == echo.MIMEOctetStream {
		contentType = http.DetectContentType(data)
	}
	return &uploadedFile{Name: header.Filename, ContentType: contentType, Data: data}, nil
}
