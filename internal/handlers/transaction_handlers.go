package handlers

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/epeers/portview/internal/api"
	"github.com/epeers/portview/internal/models"
	"github.com/epeers/portview/internal/store"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// maxImportSize bounds the size of an uploaded transactions file
const maxImportSize = 10 << 20

// TransactionHandler handles transaction endpoints
type TransactionHandler struct {
	store *store.Store
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(s *store.Store) *TransactionHandler {
	return &TransactionHandler{
		store: s,
	}
}

// List handles GET /api/transactions
// @Summary List transactions
// @Description Refresh transactions, optionally for one portfolio, with the by-action and most-recent views
// @Tags transactions
// @Produce json
// @Param portfolio_id query int false "Restrict to one portfolio"
// @Success 200 {object} models.TransactionsResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /api/transactions [get]
func (h *TransactionHandler) List(c *gin.Context) {
	var portfolioID int64
	if raw := c.Query("portfolio_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "bad_request",
				Message: "invalid portfolio ID",
			})
			return
		}
		portfolioID = id
	}

	h.store.FetchTransactions(c.Request.Context(), portfolioID)

	transactions := h.store.Transactions()
	if transactions == nil {
		if h.store.Status(store.OpFetchTransactions).Err != "" {
			writeStaleError(c, h.store, store.OpFetchTransactions)
			return
		}
		transactions = []models.Transaction{}
	}

	c.JSON(http.StatusOK, models.TransactionsResponse{
		Transactions: transactions,
		ByType:       h.store.TransactionsByType(),
		Recent:       h.store.RecentTransactions(),
	})
}

// Create handles POST /api/transactions
// @Summary Record a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body models.CreateTransactionRequest true "Transaction to record"
// @Success 201 {object} models.Transaction
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /api/transactions [post]
func (h *TransactionHandler) Create(c *gin.Context) {
	var req models.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}
	if req.TradeDate.IsZero() {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: "trade_date is required",
		})
		return
	}

	transaction, err := h.store.CreateTransaction(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, transaction)
}

// Import handles POST /api/transactions/import
// @Summary Import transactions from CSV
// @Description Check a CSV file locally (trade_date, action and amount columns required) and upload it to the backend
// @Tags transactions
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Success 200 {object} models.ImportResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /api/transactions/import [post]
func (h *TransactionHandler) Import(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: "file is required",
		})
		return
	}
	if fh.Size > maxImportSize {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: fmt.Sprintf("file exceeds %d bytes", maxImportSize),
		})
		return
	}

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: "failed to open uploaded file",
		})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: "failed to read uploaded file",
		})
		return
	}

	rows, err := api.CheckTransactionsCSV(bytes.NewReader(data))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_csv",
			Message: err.Error(),
		})
		return
	}
	log.Infof("Importing %d transaction rows from %s", rows, fh.Filename)

	result, err := h.store.ImportTransactions(c.Request.Context(), fh.Filename, bytes.NewReader(data))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ImportResponse{
		Rows:    rows,
		Message: result.Message,
	})
}
