package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BellaSalonPL/salon-scheduler/internal/domain/booking"
	"github.com/BellaSalonPL/salon-scheduler/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Salon
// --------------------------------------------------

func (r *BookingGormRepository) GetSalonByID(
	ctx context.Context,
	id uint,
) (*models.Salon, error) {

	var salon models.Salon
	if err := r.db.WithContext(ctx).First(&salon, id).Error; err != nil {
		return nil, err
	}
	return &salon, nil
}

func (r *BookingGormRepository) GetSalonBySlug(
	ctx context.Context,
	slug string,
) (*models.Salon, error) {

	var salon models.Salon
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&salon).Error; err != nil {
		return nil, err
	}
	return &salon, nil
}

// --------------------------------------------------
// Client
// --------------------------------------------------

// GetOrCreateClient looks the client up by the strongest identifier the form
// supplied (instagram, then email, then phone, then name) and creates a new
// card when nothing matches.
func (r *BookingGormRepository) GetOrCreateClient(
	ctx context.Context,
	salonID uint,
	contact domain.ClientContact,
) (*models.Client, error) {

	q := r.db.WithContext(ctx).Where("salon_id = ?", salonID)

	switch {
	case contact.InstagramName != "":
		q = q.Where("instagram_name = ?", contact.InstagramName)
	case contact.Email != "":
		q = q.Where("email = ?", contact.Email)
	case contact.Phone != "":
		q = q.Where("phone = ?", contact.Phone)
	case contact.Name != "":
		q = q.Where("name = ?", contact.Name)
	default:
		q = nil
	}

	if q != nil {
		var client models.Client
		if err := q.First(&client).Error; err == nil {
			return &client, nil
		}
	}

	client := models.Client{
		SalonID:       salonID,
		InstagramName: contact.InstagramName,
		Name:          contact.Name,
		Email:         contact.Email,
		Phone:         contact.Phone,
	}

	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, err
	}

	return &client, nil
}

func (r *BookingGormRepository) ListClients(
	ctx context.Context,
	salonID uint,
	search string,
) ([]models.Client, error) {

	q := r.db.WithContext(ctx).Where("salon_id = ?", salonID)

	if search != "" {
		like := "%" + search + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR LOWER(instagram_name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?",
			like, like, like, like,
		)
	}

	var clients []models.Client
	if err := q.
		Order("created_at DESC").
		Find(&clients).Error; err != nil {
		return nil, err
	}

	return clients, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *BookingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *BookingGormRepository) GetAppointmentForOwner(
	ctx context.Context,
	appointmentID uint,
	ownerID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Where("id = ? AND owner_id = ?", appointmentID, ownerID).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *BookingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *BookingGormRepository) DeleteAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Delete(ap).Error
}

func (r *BookingGormRepository) ListAppointmentsForDay(
	ctx context.Context,
	ownerID uint,
	date string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Where("owner_id = ? AND date = ?", ownerID, date).
		Order("start_time ASC, id ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *BookingGormRepository) ListAppointmentsForRange(
	ctx context.Context,
	ownerID uint,
	from string,
	to string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Where("owner_id = ? AND date >= ? AND date <= ?", ownerID, from, to).
		Order("date ASC, start_time ASC, id ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *BookingGormRepository) ListAppointmentsForClient(
	ctx context.Context,
	ownerID uint,
	clientID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND client_id = ?", ownerID, clientID).
		Order("date DESC, start_time DESC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *BookingGormRepository) ListPayments(
	ctx context.Context,
	ownerID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Where("owner_id = ?", ownerID).
		Order("date DESC, start_time DESC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
