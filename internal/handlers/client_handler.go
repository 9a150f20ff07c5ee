package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/BellaSalonPL/salon-scheduler/internal/domain/booking"
	"github.com/BellaSalonPL/salon-scheduler/internal/httperr"
	"github.com/BellaSalonPL/salon-scheduler/internal/middleware"
)

type ClientHandler struct {
	repo domain.Repository
}

func NewClientHandler(repo domain.Repository) *ClientHandler {
	return &ClientHandler{repo: repo}
}

// List returns the salon's clients, optionally filtered by a free-text query
// over name, instagram handle, email and phone.
func (h *ClientHandler) List(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	clients, err := h.repo.ListClients(c.Request.Context(), salonID, c.Query("query"))
	if err != nil {
		httperr.Internal(c, "failed_to_list_clients", "Nie udało się pobrać klientek.")
		return
	}

	c.JSON(http.StatusOK, clients)
}

// Appointments returns one client's visit history for the logged-in owner.
func (h *ClientHandler) Appointments(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	clientID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_client_id", "Nieprawidłowy identyfikator klientki.")
		return
	}

	appointments, err := h.repo.ListAppointmentsForClient(
		c.Request.Context(), userID, uint(clientID),
	)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Nie udało się pobrać wizyt.")
		return
	}

	c.JSON(http.StatusOK, appointments)
}
