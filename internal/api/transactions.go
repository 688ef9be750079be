package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/epeers/portview/internal/models"
)

// ListTransactions fetches transactions, restricted to one portfolio when portfolioID is non-zero
func (c *Client) ListTransactions(ctx context.Context, portfolioID int64) ([]models.Transaction, error) {
	params := url.Values{}
	if portfolioID != 0 {
		params.Set("portfolio_id", strconv.FormatInt(portfolioID, 10))
	}

	var transactions []models.Transaction
	if err := c.getJSON(ctx, "/transactions/", params, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

// CreateTransaction records a transaction and returns it as stored by the backend
func (c *Client) CreateTransaction(ctx context.Context, req *models.CreateTransactionRequest) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := c.sendJSON(ctx, http.MethodPost, "/transactions/", nil, req, &transaction); err != nil {
		return nil, err
	}
	return &transaction, nil
}

// ImportTransactions uploads a CSV file of transactions as a multipart form (part name "file")
func (c *Client) ImportTransactions(ctx context.Context, filename string, r io.Reader) (*models.ImportResult, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create file part: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("failed to write file part: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart writer: %w", err)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/import/transactions/", nil, &buf, writer.FormDataContentType())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var result models.ImportResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return &result, nil
}
