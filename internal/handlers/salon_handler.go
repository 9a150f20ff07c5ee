package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BellaSalonPL/salon-scheduler/internal/httperr"
	"github.com/BellaSalonPL/salon-scheduler/internal/middleware"
	"github.com/BellaSalonPL/salon-scheduler/internal/models"
)

type SalonHandler struct {
	db *gorm.DB
}

func NewSalonHandler(db *gorm.DB) *SalonHandler {
	return &SalonHandler{db: db}
}

type UpdateSalonRequest struct {
	Name    *string `json:"name"`
	Tagline *string `json:"tagline"`
	About   *string `json:"about"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	Address *string `json:"address"`

	DayStartHour *int `json:"day_start_hour"`
	DayEndHour   *int `json:"day_end_hour"`
}

func (h *SalonHandler) Get(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var salon models.Salon
	if err := h.db.First(&salon, salonID).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Nie znaleziono salonu.")
		return
	}

	c.JSON(http.StatusOK, salon)
}

func (h *SalonHandler) Update(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var req UpdateSalonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Nieprawidłowe dane.")
		return
	}

	var salon models.Salon
	if err := h.db.First(&salon, salonID).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Nie znaleziono salonu.")
		return
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			httperr.BadRequest(c, "invalid_name", "Nazwa salonu nie może być pusta.")
			return
		}
		salon.Name = name
	}
	if req.Tagline != nil {
		salon.Tagline = strings.TrimSpace(*req.Tagline)
	}
	if req.About != nil {
		salon.About = strings.TrimSpace(*req.About)
	}
	if req.Phone != nil {
		salon.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Email != nil {
		salon.Email = strings.TrimSpace(*req.Email)
	}
	if req.Address != nil {
		salon.Address = strings.TrimSpace(*req.Address)
	}

	start, end := salon.DayStartHour, salon.DayEndHour
	if req.DayStartHour != nil {
		start = *req.DayStartHour
	}
	if req.DayEndHour != nil {
		end = *req.DayEndHour
	}
	if start < 0 || end > 24 || start >= end {
		httperr.BadRequest(c, "invalid_day_bounds", "Godziny kalendarza są nieprawidłowe.")
		return
	}
	salon.DayStartHour = start
	salon.DayEndHour = end

	if err := h.db.Save(&salon).Error; err != nil {
		httperr.Internal(c, "failed_to_update_salon", "Nie udało się zapisać zmian.")
		return
	}

	c.JSON(http.StatusOK, salon)
}
