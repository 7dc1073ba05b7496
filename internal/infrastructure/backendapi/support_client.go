package backendapi

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/dias012rrr/fooddelivery/internal/domain/repository"
)

// SupportClient implements repository.SupportRepository over the backend's
// multipart /support endpoint.
type SupportClient struct {
	c *Client
}

// NewSupportClient builds the support client.
func NewSupportClient(c *Client) *SupportClient {
	return &SupportClient{c: c}
}

// Send relays a support request, streaming attachments through unchanged.
func (s *SupportClient) Send(ctx context.Context, email, message string, attachments []repository.Attachment) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	if err := mw.WriteField("email", email); err != nil {
		return err
	}
	if err := mw.WriteField("message", message); err != nil {
		return err
	}
	for _, att := range attachments {
		part, err := mw.CreateFormFile("attachments", att.Filename)
		if err != nil {
			return err
		}
		if _, err := io.Copy(part, att.Reader); err != nil {
			return err
		}
	}
	if err := mw.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.c.baseURL+"/support", &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := s.c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp)
	}
	return nil
}
