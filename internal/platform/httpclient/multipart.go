package httpclient

import (
	"io"
	"mime/multipart"
	"net/textproto"
	"sort"
	"strings"
)

// Multipart es un cuerpo multipart/form-data con un archivo y campos de texto.
type Multipart struct {
	Fields map[string]string

	FileField   string
	FileName    string
	ContentType string
	File        io.Reader
}

// reader arma el cuerpo en streaming con io.Pipe para no cargar el archivo entero en memoria.
func (m *Multipart) reader() (io.Reader, string) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		pw.CloseWithError(m.write(mw))
	}()

	return pr, mw.FormDataContentType()
}

func (m *Multipart) write(mw *multipart.Writer) error {
	keys := make([]string, 0, len(m.Fields))
	for k := range m.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if err := mw.WriteField(k, m.Fields[k]); err != nil {
			return err
		}
	}

	if m.File != nil {
		field := m.FileField
		if field == "" {
			field = "file"
		}
		ct := m.ContentType
		if ct == "" {
			ct = "application/octet-stream"
		}

		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="`+escapeQuotes(field)+`"; filename="`+escapeQuotes(m.FileName)+`"`)
		h.Set("Content-Type", ct)

		part, err := mw.CreatePart(h)
		if err != nil {
			return err
		}
		if _, err := io.Copy(part, m.File); err != nil {
			return err
		}
	}

	return mw.Close()
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
