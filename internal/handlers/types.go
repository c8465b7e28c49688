// Package handlers exposes the service layer over HTTP.
package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smartfin/smartfin/internal/service"
	"github.com/smartfin/smartfin/internal/smsparse"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type profileRequest struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Avatar string `json:"avatar"`
}

type groupRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type memberRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

type redeemRequest struct {
	Code string `json:"code"`
}

type splitRequest struct {
	Description     string   `json:"description"`
	Amount          float64  `json:"amount"`
	PaidByID        string   `json:"paidById"`
	SplitBetweenIDs []string `json:"splitBetweenIds"`
	Category        string   `json:"category"`
}

type entryRequest struct {
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	SubCategory string  `json:"subCategory"`
	Type        string  `json:"type"`
	Note        string  `json:"note"`
	Merchant    string  `json:"merchant"`
}

type smsRequest struct {
	Text string `json:"text"`
}

type contributionRequest struct {
	Amount float64 `json:"amount"`
}

type memberBalance struct {
	MemberID string  `json:"memberId"`
	Name     string  `json:"name"`
	Balance  float64 `json:"balance"`
	Settled  bool    `json:"settled"`
}

type debtEdge struct {
	FromID string  `json:"fromId"`
	ToID   string  `json:"toId"`
	Amount float64 `json:"amount"`
}

// httpError maps domain errors onto HTTP statuses. Validation failures are
// 400s, lookup misses 404s, and settlement/confirmation conflicts 409s; the
// error text is surfaced as-is since every domain error is user-facing.
func httpError(err error) error {
	var unsettled *service.UnsettledBalanceError
	switch {
	case errors.Is(err, service.ErrEmptyName),
		errors.Is(err, service.ErrEmptyDescription),
		errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrEmptySplit),
		errors.Is(err, service.ErrDuplicateSplit),
		errors.Is(err, service.ErrCategoryRequired),
		errors.Is(err, service.ErrPayerNotMember),
		errors.Is(err, service.ErrSplitNotMember):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())

	case errors.Is(err, service.ErrGroupNotFound),
		errors.Is(err, service.ErrMemberNotFound),
		errors.Is(err, service.ErrTransactionNotFound),
		errors.Is(err, service.ErrEMINotFound),
		errors.Is(err, service.ErrGoalNotFound),
		errors.Is(err, service.ErrInviteNotFound),
		errors.Is(err, service.ErrInviteExpired):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())

	case errors.As(err, &unsettled),
		errors.Is(err, service.ErrConfirmationRequired):
		return echo.NewHTTPError(http.StatusConflict, err.Error())

	case errors.Is(err, smsparse.ErrParseFailed):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())

	case service.IsUserNotFound(err):
		return echo.NewHTTPError(http.StatusUnauthorized, "unknown user")
	}
	return echo.NewHTTPError(http.StatusInternalServerError, "something went wrong, please try again")
}
