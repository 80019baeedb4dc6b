package upstream

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
)

// Upload is a file part attached to a multipart mutation (brand/category
// thumbnails, product images).
type Upload struct {
	Filename string
	Content  io.Reader
}

// form accumulates a multipart body. The writer's content type carries the
// boundary, so callers pass it through to call() unchanged.
type form struct {
	buf *bytes.Buffer
	mw  *multipart.Writer
	err error
}

func newForm() *form {
	buf := &bytes.Buffer{}
	return &form{buf: buf, mw: multipart.NewWriter(buf)}
}

func (f *form) field(name, value string) {
	if f.err != nil {
		return
	}
	f.err = f.mw.WriteField(name, value)
}

func (f *form) file(name string, up Upload) {
	if f.err != nil {
		return
	}
	part, err := f.mw.CreateFormFile(name, up.Filename)
	if err != nil {
		f.err = err
		return
	}
	if _, err := io.Copy(part, up.Content); err != nil {
		f.err = err
	}
}

// close finalizes the body and returns the content type (with boundary) and
// the reader to send.
func (f *form) close() (string, io.Reader, error) {
	if f.err != nil {
		return "", nil, fmt.Errorf("build multipart form: %w", f.err)
	}
	if err := f.mw.Close(); err != nil {
		return "", nil, fmt.Errorf("finalize multipart form: %w", err)
	}
	return f.mw.FormDataContentType(), f.buf, nil
}
