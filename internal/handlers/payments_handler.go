package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/BellaSalonPL/salon-scheduler/internal/domain/booking"
	"github.com/BellaSalonPL/salon-scheduler/internal/httperr"
	"github.com/BellaSalonPL/salon-scheduler/internal/middleware"
	"github.com/BellaSalonPL/salon-scheduler/internal/payments"
	"github.com/BellaSalonPL/salon-scheduler/internal/usecase/booking"
)

type PaymentsHandler struct {
	list    *booking.ListPayments
	repo    domain.Repository
	deposit *payments.DepositLinker
}

// NewPaymentsHandler takes a nil deposit linker when checkout links are not
// configured; the endpoint then answers 503.
func NewPaymentsHandler(
	list *booking.ListPayments,
	repo domain.Repository,
	deposit *payments.DepositLinker,
) *PaymentsHandler {
	return &PaymentsHandler{list: list, repo: repo, deposit: deposit}
}

// List returns the filtered payment rows plus header totals computed over
// the same filtered set.
func (h *PaymentsHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	rows, err := h.list.Execute(
		c.Request.Context(), userID, c.Query("status"), c.Query("query"),
	)
	if err != nil {
		var be httperr.BusinessError
		if errors.As(err, &be) {
			httperr.BadRequest(c, be.Code, "Nieprawidłowy filtr płatności.")
			return
		}
		httperr.Internal(c, "payments_failed", "Nie udało się pobrać płatności.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"payments": rows,
		"summary":  booking.Summarize(rows),
	})
}

// Summary returns the header totals alone, over the same optional filters as
// List.
func (h *PaymentsHandler) Summary(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	rows, err := h.list.Execute(
		c.Request.Context(), userID, c.Query("status"), c.Query("query"),
	)
	if err != nil {
		var be httperr.BusinessError
		if errors.As(err, &be) {
			httperr.BadRequest(c, be.Code, "Nieprawidłowy filtr płatności.")
			return
		}
		httperr.Internal(c, "payments_failed", "Nie udało się pobrać płatności.")
		return
	}

	c.JSON(http.StatusOK, booking.Summarize(rows))
}

type DepositLinkRequest struct {
	Amount float64 `json:"amount" binding:"required"`
}

// DepositLink creates a checkout link for an appointment's deposit.
func (h *PaymentsHandler) DepositLink(c *gin.Context) {
	if h.deposit == nil {
		httperr.Unavailable(c, "payments_disabled",
			"Linki do zadatków nie są skonfigurowane.")
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(uint)

	appointmentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Nieprawidłowy identyfikator wizyty.")
		return
	}

	var req DepositLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Amount <= 0 {
		httperr.BadRequest(c, "invalid_amount", "Kwota zadatku musi być dodatnia.")
		return
	}

	ap, err := h.repo.GetAppointmentForOwner(
		c.Request.Context(), uint(appointmentID), userID,
	)
	if err != nil {
		httperr.NotFound(c, "appointment_not_found", "Nie znaleziono wizyty.")
		return
	}

	link, err := h.deposit.CreateForAppointment(c.Request.Context(), ap, req.Amount)
	if err != nil {
		httperr.Internal(c, "deposit_link_failed", "Nie udało się utworzyć linku do płatności.")
		return
	}

	c.JSON(http.StatusCreated, link)
}
