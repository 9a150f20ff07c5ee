package booking

import (
	"context"

	"github.com/BellaSalonPL/salon-scheduler/internal/models"
)

// ClientContact carries whatever identifying fields the booking form supplied.
type ClientContact struct {
	InstagramName string
	Name          string
	Email         string
	Phone         string
}

type Repository interface {
	// -------- Salon --------
	GetSalonByID(
		ctx context.Context,
		id uint,
	) (*models.Salon, error)

	GetSalonBySlug(
		ctx context.Context,
		slug string,
	) (*models.Salon, error)

	// -------- Client --------
	GetOrCreateClient(
		ctx context.Context,
		salonID uint,
		contact ClientContact,
	) (*models.Client, error)

	ListClients(
		ctx context.Context,
		salonID uint,
		search string,
	) ([]models.Client, error)

	// -------- Appointment --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointmentForOwner(
		ctx context.Context,
		appointmentID uint,
		ownerID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// ListAppointmentsForDay returns one owner's appointments for a single
	// calendar date, ordered by start time with primary key as tie-break.
	ListAppointmentsForDay(
		ctx context.Context,
		ownerID uint,
		date string,
	) ([]models.Appointment, error)

	// ListAppointmentsForRange covers [from, to] inclusive, both "YYYY-MM-DD".
	ListAppointmentsForRange(
		ctx context.Context,
		ownerID uint,
		from string,
		to string,
	) ([]models.Appointment, error)

	ListAppointmentsForClient(
		ctx context.Context,
		ownerID uint,
		clientID uint,
	) ([]models.Appointment, error)

	// ListPayments returns all of an owner's appointments newest-date first,
	// for the payments table.
	ListPayments(
		ctx context.Context,
		ownerID uint,
	) ([]models.Appointment, error)
}
