package handlers

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smartfin/smartfin/internal/middleware"
	"github.com/smartfin/smartfin/internal/models"
	"github.com/smartfin/smartfin/internal/service"
)

// maxImportBytes bounds the accepted export file size.
const maxImportBytes = 8 << 20

// FinanceHandler serves EMIs, budgets, goals, investments, branding and
// the whole-document export/import routes.
type FinanceHandler struct {
	finance *service.FinanceService
}

// NewFinanceHandler creates a FinanceHandler.
func NewFinanceHandler(finance *service.FinanceService) *FinanceHandler {
	return &FinanceHandler{finance: finance}
}

// Document returns the user's full finance document.
func (h *FinanceHandler) Document(c echo.Context) error {
	doc, err := h.finance.Document(c.Request().Context(), middleware.GetUserID(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, doc)
}

// AddEMI registers a new loan to track.
func (h *FinanceHandler) AddEMI(c echo.Context) error {
	var req models.EMI
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	emi, err := h.finance.AddEMI(c.Request().Context(), middleware.GetUserID(c), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, emi)
}

// MarkEMIPaid records one more paid installment on a loan.
func (h *FinanceHandler) MarkEMIPaid(c echo.Context) error {
	emi, err := h.finance.MarkEMIPaid(c.Request().Context(), middleware.GetUserID(c), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, emi)
}

// DeleteEMI removes a tracked loan.
func (h *FinanceHandler) DeleteEMI(c echo.Context) error {
	if err := h.finance.DeleteEMI(c.Request().Context(), middleware.GetUserID(c), c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// AddBudget sets a per-category monthly limit.
func (h *FinanceHandler) AddBudget(c echo.Context) error {
	var req models.Budget
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	budget, err := h.finance.AddBudget(c.Request().Context(), middleware.GetUserID(c), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, budget)
}

// AddGoal creates a savings goal.
func (h *FinanceHandler) AddGoal(c echo.Context) error {
	var req models.Goal
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	goal, err := h.finance.AddGoal(c.Request().Context(), middleware.GetUserID(c), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, goal)
}

// AddToGoal adds a contribution toward a savings goal.
func (h *FinanceHandler) AddToGoal(c echo.Context) error {
	var req contributionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	goal, err := h.finance.AddToGoal(c.Request().Context(), middleware.GetUserID(c), c.Param("id"), req.Amount)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, goal)
}

// AddInvestment records an invested position.
func (h *FinanceHandler) AddInvestment(c echo.Context) error {
	var req models.Investment
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	inv, err := h.finance.AddInvestment(c.Request().Context(), middleware.GetUserID(c), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, inv)
}

// UpdateBranding changes the product identity shown in the shell.
func (h *FinanceHandler) UpdateBranding(c echo.Context) error {
	var req models.Branding
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := h.finance.UpdateBranding(c.Request().Context(), middleware.GetUserID(c), req); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, req)
}

// Export streams the user's document as a downloadable JSON backup.
func (h *FinanceHandler) Export(c echo.Context) error {
	payload, err := h.finance.Export(c.Request().Context(), middleware.GetUserID(c))
	if err != nil {
		return httpError(err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="smartfin-backup.json"`)
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, payload)
}

// Import replaces the user's document with an uploaded backup. Unreadable
// fields fall back to their defaults rather than failing the whole import.
func (h *FinanceHandler) Import(c echo.Context) error {
	payload, err := io.ReadAll(io.LimitReader(c.Request().Body, maxImportBytes))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := h.finance.Import(c.Request().Context(), middleware.GetUserID(c), payload); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
