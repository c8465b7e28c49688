package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smartfin/smartfin/internal/calculator"
	"github.com/smartfin/smartfin/internal/middleware"
	"github.com/smartfin/smartfin/internal/service"
)

// GroupHandler serves group lifecycle and shared-expense routes.
type GroupHandler struct {
	groups *service.GroupService
	splits *service.SplitService
}

// NewGroupHandler creates a GroupHandler.
func NewGroupHandler(groups *service.GroupService, splits *service.SplitService) *GroupHandler {
	return &GroupHandler{groups: groups, splits: splits}
}

// Create makes a new group owned by the authenticated user.
func (h *GroupHandler) Create(c echo.Context) error {
	var req groupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	group, err := h.groups.Create(c.Request().Context(), middleware.GetUserID(c), req.Name, req.Description)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, group)
}

// List returns all of the user's groups.
func (h *GroupHandler) List(c echo.Context) error {
	groups, err := h.groups.List(c.Request().Context(), middleware.GetUserID(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, groups)
}

// Get returns one group by id.
func (h *GroupHandler) Get(c echo.Context) error {
	group, err := h.groups.Get(c.Request().Context(), middleware.GetUserID(c), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, group)
}

// Rename updates the group's name and description.
func (h *GroupHandler) Rename(c echo.Context) error {
	var req groupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	group, err := h.groups.Rename(c.Request().Context(), middleware.GetUserID(c), c.Param("id"), req.Name, req.Description)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, group)
}

// AddMember appends a member to the group.
func (h *GroupHandler) AddMember(c echo.Context) error {
	var req memberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	group, err := h.groups.AddMember(c.Request().Context(), middleware.GetUserID(c), c.Param("id"), req.Name, req.Contact)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, group)
}

// RemoveMember removes a member, honoring the settlement guard. Clients
// confirm removal of members with history via the confirmed query param.
func (h *GroupHandler) RemoveMember(c echo.Context) error {
	confirmed := c.QueryParam("confirmed") == "true"
	group, err := h.groups.RemoveMember(
		c.Request().Context(),
		middleware.GetUserID(c),
		c.Param("id"),
		c.Param("memberId"),
		confirmed,
	)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, group)
}

// Balances returns per-member net positions and settle-up suggestions.
func (h *GroupHandler) Balances(c echo.Context) error {
	userID := middleware.GetUserID(c)
	groupID := c.Param("id")

	group, err := h.groups.Get(c.Request().Context(), userID, groupID)
	if err != nil {
		return httpError(err)
	}
	balances, edges, err := h.groups.Balances(c.Request().Context(), userID, groupID)
	if err != nil {
		return httpError(err)
	}

	// Respond in member order, not map order.
	members := make([]memberBalance, 0, len(group.Members))
	for _, m := range group.Members {
		bal := balances[m.ID]
		members = append(members, memberBalance{
			MemberID: m.ID,
			Name:     m.Name,
			Balance:  bal,
			Settled:  calculator.IsSettled(bal),
		})
	}

	debts := make([]debtEdge, 0, len(edges))
	for _, e := range edges {
		debts = append(debts, debtEdge{FromID: e.FromID, ToID: e.ToID, Amount: e.Amount})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"members": members,
		"debts":   debts,
	})
}

// RedeemInvite joins the authenticated user to the group carrying the code.
func (h *GroupHandler) RedeemInvite(c echo.Context) error {
	var req redeemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	group, alreadyMember, err := h.groups.RedeemInvite(c.Request().Context(), middleware.GetUserID(c), req.Code)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"group":         group,
		"alreadyMember": alreadyMember,
	})
}

// CreateExpense adds a shared expense to the group.
func (h *GroupHandler) CreateExpense(c echo.Context) error {
	var req splitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	group, err := h.splits.Create(c.Request().Context(), middleware.GetUserID(c), c.Param("id"), service.SplitInput{
		Description:     req.Description,
		Amount:          req.Amount,
		PaidByID:        req.PaidByID,
		SplitBetweenIDs: req.SplitBetweenIDs,
		Category:        req.Category,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, group)
}

// UpdateExpense edits a shared expense in place.
func (h *GroupHandler) UpdateExpense(c echo.Context) error {
	var req splitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	group, err := h.splits.Update(c.Request().Context(), middleware.GetUserID(c), c.Param("id"), c.Param("txId"), service.SplitInput{
		Description:     req.Description,
		Amount:          req.Amount,
		PaidByID:        req.PaidByID,
		SplitBetweenIDs: req.SplitBetweenIDs,
		Category:        req.Category,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, group)
}

// DeleteExpense removes a shared expense. The client confirms the
// destructive action before calling.
func (h *GroupHandler) DeleteExpense(c echo.Context) error {
	group, err := h.splits.Delete(c.Request().Context(), middleware.GetUserID(c), c.Param("id"), c.Param("txId"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, group)
}
