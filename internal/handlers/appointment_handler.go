package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/BellaSalonPL/salon-scheduler/internal/domain/booking"
	"github.com/BellaSalonPL/salon-scheduler/internal/httperr"
	"github.com/BellaSalonPL/salon-scheduler/internal/httpresp"
	"github.com/BellaSalonPL/salon-scheduler/internal/middleware"
	"github.com/BellaSalonPL/salon-scheduler/internal/schedule"
	"github.com/BellaSalonPL/salon-scheduler/internal/usecase/booking"
)

type AppointmentHandler struct {
	create      *booking.CreateAppointment
	daySchedule *booking.GetDaySchedule
	listRange   *booking.ListAppointmentsByRange
	listMonth   *booking.ListAppointmentsByMonth
	editPayment *booking.UpdateAppointmentPayment
	remove      *booking.DeleteAppointment
}

func NewAppointmentHandler(
	create *booking.CreateAppointment,
	daySchedule *booking.GetDaySchedule,
	listRange *booking.ListAppointmentsByRange,
	listMonth *booking.ListAppointmentsByMonth,
	editPayment *booking.UpdateAppointmentPayment,
	remove *booking.DeleteAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:      create,
		daySchedule: daySchedule,
		listRange:   listRange,
		listMonth:   listMonth,
		editPayment: editPayment,
		remove:      remove,
	}
}

// --------- Requests ---------

type CreateAppointmentRequest struct {
	ClientInstagram string `json:"client_instagram"`
	ClientName      string `json:"client_name"`
	ClientEmail     string `json:"client_email"`
	ClientPhone     string `json:"client_phone"`

	ServiceType    string `json:"service_type"`
	ServiceDetails string `json:"service_details" binding:"required"`

	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`

	Price         float64 `json:"price" binding:"required"`
	DepositPaid   bool    `json:"deposit_paid"`
	PaymentStatus string  `json:"payment_status"`
	Notes         string  `json:"notes"`
}

type UpdatePaymentRequest struct {
	Price         *float64 `json:"price"`
	DepositPaid   *bool    `json:"deposit_paid"`
	PaymentStatus *string  `json:"payment_status"`
}

// --------- Handlers ---------

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Nieprawidłowe dane wizyty.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), booking.CreateAppointmentInput{
		SalonID:         salonID,
		OwnerID:         userID,
		ClientInstagram: req.ClientInstagram,
		ClientName:      req.ClientName,
		ClientEmail:     req.ClientEmail,
		ClientPhone:     req.ClientPhone,
		ServiceType:     req.ServiceType,
		ServiceDetails:  req.ServiceDetails,
		Date:            req.Date,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		Price:           req.Price,
		DepositPaid:     req.DepositPaid,
		PaymentStatus:   req.PaymentStatus,
		Notes:           req.Notes,
	})
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// Day returns the packed calendar layout for ?date=YYYY-MM-DD.
func (h *AppointmentHandler) Day(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Parametr date jest wymagany.")
		return
	}

	day, err := h.daySchedule.Execute(c.Request.Context(), userID, salonID, date)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	httpresp.OK(c, day)
}

func (h *AppointmentHandler) ListRange(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		httperr.BadRequest(c, "missing_range", "Parametry from i to są wymagane.")
		return
	}

	items, err := h.listRange.Execute(c.Request.Context(), userID, from, to)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	httpresp.List(c, items)
}

func (h *AppointmentHandler) ListMonth(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	year, err1 := strconv.Atoi(c.Query("year"))
	month, err2 := strconv.Atoi(c.Query("month"))
	if err1 != nil || err2 != nil {
		httperr.BadRequest(c, "invalid_month", "Parametry year i month są wymagane.")
		return
	}

	items, err := h.listMonth.Execute(c.Request.Context(), userID, year, month)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	httpresp.List(c, items)
}

func (h *AppointmentHandler) UpdatePayment(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	appointmentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Nieprawidłowy identyfikator wizyty.")
		return
	}

	var req UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Nieprawidłowe dane płatności.")
		return
	}

	ap, err := h.editPayment.Execute(c.Request.Context(), booking.UpdatePaymentInput{
		SalonID:       salonID,
		OwnerID:       userID,
		AppointmentID: uint(appointmentID),
		Price:         req.Price,
		DepositPaid:   req.DepositPaid,
		PaymentStatus: req.PaymentStatus,
	})
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	appointmentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Nieprawidłowy identyfikator wizyty.")
		return
	}

	if err := h.remove.Execute(
		c.Request.Context(), salonID, userID, uint(appointmentID),
	); err != nil {
		mapBookingError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// --------- Error mapping ---------

// mapBookingError translates use-case errors into the HTTP envelope. The
// availability-unknown case is a 503, never a 409: the day could not be read,
// so claiming a conflict (or its absence) would be a lie.
func mapBookingError(c *gin.Context, err error) {
	var malformed *schedule.MalformedTimeError
	if errors.As(err, &malformed) {
		httperr.BadRequest(c, "malformed_time",
			"Godzina musi mieć format HH:MM (24h).")
		return
	}

	if errors.Is(err, schedule.ErrEndNotAfterStart) {
		httperr.BadRequest(c, "invalid_time_range",
			"Godzina zakończenia musi być po godzinie rozpoczęcia.")
		return
	}

	var conflict *domain.ConflictError
	if errors.As(err, &conflict) {
		c.JSON(http.StatusConflict, gin.H{
			"error_code": "time_conflict",
			"message":    "Ten termin koliduje z istniejącą wizytą.",
			"conflict": gin.H{
				"date":  conflict.Date,
				"start": conflict.Start,
				"end":   conflict.End,
			},
		})
		return
	}

	var unavailable *domain.AvailabilityUnknownError
	if errors.As(err, &unavailable) {
		httperr.Unavailable(c, "availability_unknown",
			"Nie udało się sprawdzić dostępności terminu. Spróbuj ponownie.")
		return
	}

	var be httperr.BusinessError
	if errors.As(err, &be) {
		if be.Code == "appointment_not_found" {
			httperr.NotFound(c, be.Code, "Nie znaleziono wizyty.")
			return
		}
		httperr.BadRequest(c, be.Code, "Nieprawidłowe dane.")
		return
	}

	httperr.Internal(c, "internal_error", "Wystąpił błąd serwera.")
}
