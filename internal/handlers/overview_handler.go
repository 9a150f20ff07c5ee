package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BellaSalonPL/salon-scheduler/internal/httperr"
	"github.com/BellaSalonPL/salon-scheduler/internal/middleware"
	"github.com/BellaSalonPL/salon-scheduler/internal/usecase/booking"
)

type OverviewHandler struct {
	overview *booking.GetOverview
}

func NewOverviewHandler(overview *booking.GetOverview) *OverviewHandler {
	return &OverviewHandler{overview: overview}
}

func (h *OverviewHandler) Get(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	out, err := h.overview.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "overview_failed", "Nie udało się pobrać podsumowania.")
		return
	}

	c.JSON(http.StatusOK, out)
}
