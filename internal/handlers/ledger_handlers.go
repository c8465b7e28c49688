package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smartfin/smartfin/internal/middleware"
	"github.com/smartfin/smartfin/internal/models"
	"github.com/smartfin/smartfin/internal/service"
)

// LedgerHandler serves the personal income/expense ledger and the
// dashboard summary built from it.
type LedgerHandler struct {
	ledger *service.LedgerService
}

// NewLedgerHandler creates a LedgerHandler.
func NewLedgerHandler(ledger *service.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledger: ledger}
}

func entryInput(req entryRequest) service.EntryInput {
	return service.EntryInput{
		Amount:      req.Amount,
		Category:    req.Category,
		SubCategory: req.SubCategory,
		Type:        models.TransactionType(req.Type),
		Note:        req.Note,
		Merchant:    req.Merchant,
	}
}

// List returns the user's ledger entries, newest first.
func (h *LedgerHandler) List(c echo.Context) error {
	entries, err := h.ledger.List(c.Request().Context(), middleware.GetUserID(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, entries)
}

// Create records a new ledger entry.
func (h *LedgerHandler) Create(c echo.Context) error {
	var req entryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	entry, err := h.ledger.Create(c.Request().Context(), middleware.GetUserID(c), entryInput(req))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, entry)
}

// Update edits an existing entry in place, keeping its id and date.
func (h *LedgerHandler) Update(c echo.Context) error {
	var req entryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	entry, err := h.ledger.Update(c.Request().Context(), middleware.GetUserID(c), c.Param("id"), entryInput(req))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, entry)
}

// Delete removes an entry from the ledger.
func (h *LedgerHandler) Delete(c echo.Context) error {
	if err := h.ledger.Delete(c.Request().Context(), middleware.GetUserID(c), c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Summary returns the dashboard aggregates over the full ledger.
func (h *LedgerHandler) Summary(c echo.Context) error {
	summary, err := h.ledger.Summary(c.Request().Context(), middleware.GetUserID(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, summary)
}

// ImportSMS parses a bank notification and records the transaction it
// describes. A text the parser cannot read yields 422 and no entry.
func (h *LedgerHandler) ImportSMS(c echo.Context) error {
	var req smsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	entry, err := h.ledger.ImportSMS(c.Request().Context(), middleware.GetUserID(c), req.Text)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, entry)
}
