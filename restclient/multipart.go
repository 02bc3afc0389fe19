package restclient

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
)

// FileFieldName is the fixed multipart field name for uploaded files.
const FileFieldName = "File"

// MultipartBody represents a multipart/form-data request body.
// Pass it as the Body field of a Request to get multipart encoding with the
// correct Content-Type header.
type MultipartBody struct {
	// Fields are simple key-value form fields.
	Fields map[string]string
	// Files are file upload fields.
	Files []FileField
}

// FileField represents one file part of a multipart request.
type FileField struct {
	// FieldName is the form field name.
	FieldName string
	// FileName is the file name sent to the server.
	FileName string
	// ContentType is the MIME type. If empty, application/octet-stream.
	ContentType string
	// Data is the file content. Used if Reader is nil.
	Data []byte
	// Reader is an alternative to Data for large files.
	Reader io.Reader
}

// FilesBody builds a multipart body from local file paths.
//
// Every path is checked for existence before anything is read: a single
// missing path fails the whole call with a file-not-found error and no
// network request is ever issued. Each existing file is attached under the
// fixed field name "File" with its original basename.
func FilesBody(paths ...string) (*MultipartBody, error) {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			return nil, NewFileNotFoundError(path, err)
		}
	}

	body := &MultipartBody{Files: make([]FileField, 0, len(paths))}
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, NewFileNotFoundError(path, err)
		}
		body.Files = append(body.Files, FileField{
			FieldName: FileFieldName,
			FileName:  filepath.Base(path),
			Data:      data,
		})
	}
	return body, nil
}

// encode builds the multipart body and returns the reader and content-type.
func (m *MultipartBody) encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for k, v := range m.Fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, "", err
		}
	}

	for _, f := range m.Files {
		var part io.Writer
		var err error

		if f.ContentType != "" {
			header := make(textproto.MIMEHeader)
			header.Set("Content-Disposition",
				`form-data; name="`+escapeQuotes(f.FieldName)+`"; filename="`+escapeQuotes(f.FileName)+`"`)
			header.Set("Content-Type", f.ContentType)
			part, err = w.CreatePart(header)
		} else {
			part, err = w.CreateFormFile(f.FieldName, f.FileName)
		}
		if err != nil {
			return nil, "", err
		}

		if f.Data != nil {
			if _, err := part.Write(f.Data); err != nil {
				return nil, "", err
			}
		} else if f.Reader != nil {
			if _, err := io.Copy(part, f.Reader); err != nil {
				return nil, "", err
			}
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}

	return &buf, w.FormDataContentType(), nil
}

// escapeQuotes replaces special characters in header values.
func escapeQuotes(s string) string {
	var buf bytes.Buffer
	for _, b := range []byte(s) {
		if b == '"' || b == '\\' {
			buf.WriteByte('\\')
		}
		buf.WriteByte(b)
	}
	return buf.String()
}
