package medtapapi

import (
	"context"
	"net/http"

	"medtap-client/internal/domain/documents"
	"medtap-client/internal/platform/httpclient"
)

const documentsPath = "/documents"

func (c *Client) ListDocuments(ctx context.Context) ([]documents.Document, error) {
	var out []documents.Document
	if err := c.do(ctx, httpclient.Request{Method: http.MethodGet, Path: documentsPath}, &out); err != nil {
		return nil, err
	}
	if err := checkAll(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetDocument(ctx context.Context, id string) (documents.Document, error) {
	return getOne[documents.Document](ctx, c, documentsPath, id)
}

// UploadDocument sube el archivo como multipart (parte "file" + campos de metadata).
func (c *Client) UploadDocument(ctx context.Context, in documents.UploadInput) (documents.Document, error) {
	fields := map[string]string{
		"documentType": string(in.DocumentType),
		"title":        in.Title,
	}
	if in.Description != "" {
		fields["description"] = in.Description
	}

	var out documents.Document
	err := c.do(ctx, httpclient.Request{
		Method: http.MethodPost,
		Path:   documentsPath + "/upload",
		Multipart: &httpclient.Multipart{
			Fields:      fields,
			FileField:   "file",
			FileName:    in.FileName,
			ContentType: in.ContentType,
			File:        in.File,
		},
	}, &out)
	if err != nil {
		return documents.Document{}, err
	}
	if err := checkOne(out); err != nil {
		return documents.Document{}, err
	}
	return out, nil
}

func (c *Client) SignDocument(ctx context.Context, id, signatureData string) (documents.Document, error) {
	p, err := itemPath(documentsPath, id)
	if err != nil {
		return documents.Document{}, err
	}
	return sendOne[documents.Document](ctx, c, http.MethodPost, p+"/sign", documents.SignInput{SignatureData: signatureData})
}

func (c *Client) DeleteDocument(ctx context.Context, id string) error {
	return c.deleteOne(ctx, documentsPath, id)
}
