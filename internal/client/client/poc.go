package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/bootlang/internal/client/models"
)

// DemoUserID is the fixed owner the scaffold builder sends.
const DemoUserID = "demo_user"

func (c *Client) CreateDemoPOC(ctx context.Context, description string) (*models.DemoPOC, error) {
	body := map[string]string{"description": description, "user_id": DemoUserID}
	var resp models.DemoPOC
	if err := c.doJSON(ctx, http.MethodPost, "/api/poc/create", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UploadDocument sends r as the multipart "file" field.
func (c *Client) UploadDocument(ctx context.Context, filename string, r io.Reader) (*models.Document, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("error creating form file: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("error reading %s: %w", filename, err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("error closing multipart body: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, "/api/poc/upload", &buf, mw.FormDataContentType())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var doc models.Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("error decoding upload response: %w", err)
	}
	return &doc, nil
}

func (c *Client) ListDocuments(ctx context.Context) ([]models.Document, error) {
	var docs []models.Document
	if err := c.doJSON(ctx, http.MethodGet, "/api/poc/documents", nil, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (c *Client) DeleteDocument(ctx context.Context, id int64) (string, error) {
	var resp struct {
		Message string `json:"message"`
	}
	if err := c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/poc/documents/%d", id), nil, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *Client) Chat(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	var resp models.ChatResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/poc/chat", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) GeneratePOC(ctx context.Context, requirements map[string]any) (*models.POCResult, error) {
	body := map[string]any{"requirements": requirements}
	var resp models.POCResult
	if err := c.doJSON(ctx, http.MethodPost, "/api/poc/generate", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ListPOCs(ctx context.Context) ([]models.POCSummary, error) {
	var pocs []models.POCSummary
	if err := c.doJSON(ctx, http.MethodGet, "/api/poc/list", nil, &pocs); err != nil {
		return nil, err
	}
	return pocs, nil
}

func (c *Client) POCFiles(ctx context.Context, pocID string) (*models.POCFiles, error) {
	var resp models.POCFiles
	if err := c.doJSON(ctx, http.MethodGet, "/api/poc/"+url.PathEscape(pocID)+"/files", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DownloadPOC streams the zip archive of a POC into w.
func (c *Client) DownloadPOC(ctx context.Context, pocID string, w io.Writer) (int64, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/poc/"+url.PathEscape(pocID)+"/download", nil, "")
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	n, err := io.Copy(w, resp.Body)
	if err != nil {
		return n, fmt.Errorf("error writing archive: %w", err)
	}
	return n, nil
}

// UpdatePOC regenerates a POC from new requirements and returns its directory.
func (c *Client) UpdatePOC(ctx context.Context, pocID string, requirements map[string]any) (string, error) {
	body := map[string]any{"requirements": requirements}
	var resp struct {
		Message   string `json:"message"`
		Directory string `json:"directory"`
	}
	if err := c.doJSON(ctx, http.MethodPut, "/api/poc/"+url.PathEscape(pocID)+"/update", body, &resp); err != nil {
		return "", err
	}
	return resp.Directory, nil
}
