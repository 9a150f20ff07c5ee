package booking

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/BellaSalonPL/salon-scheduler/internal/audit"
	domain "github.com/BellaSalonPL/salon-scheduler/internal/domain/booking"
	"github.com/BellaSalonPL/salon-scheduler/internal/dto"
	"github.com/BellaSalonPL/salon-scheduler/internal/httperr"
	"github.com/BellaSalonPL/salon-scheduler/internal/models"
	"github.com/BellaSalonPL/salon-scheduler/internal/schedule"
)

// ======================================================
// FAKES
// ======================================================

type fakeRepo struct {
	salon        models.Salon
	appointments []models.Appointment

	failDayList bool

	created *models.Appointment
	updated *models.Appointment
	deleted []uint
	nextID  uint
}

var _ domain.Repository = (*fakeRepo)(nil)

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		salon: models.Salon{
			ID:           1,
			Name:         "Salon Bella",
			Slug:         "bella",
			DayStartHour: 8,
			DayEndHour:   22,
		},
		nextID: 100,
	}
}

func (f *fakeRepo) GetSalonByID(_ context.Context, id uint) (*models.Salon, error) {
	if id != f.salon.ID {
		return nil, errors.New("salon not found")
	}
	s := f.salon
	return &s, nil
}

func (f *fakeRepo) GetSalonBySlug(_ context.Context, slug string) (*models.Salon, error) {
	if slug != f.salon.Slug {
		return nil, errors.New("salon not found")
	}
	s := f.salon
	return &s, nil
}

func (f *fakeRepo) GetOrCreateClient(_ context.Context, salonID uint, contact domain.ClientContact) (*models.Client, error) {
	return &models.Client{
		ID:            7,
		SalonID:       salonID,
		InstagramName: contact.InstagramName,
		Name:          contact.Name,
		Email:         contact.Email,
		Phone:         contact.Phone,
	}, nil
}

func (f *fakeRepo) ListClients(_ context.Context, _ uint, _ string) ([]models.Client, error) {
	return nil, nil
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	f.nextID++
	ap.ID = f.nextID
	f.created = ap
	f.appointments = append(f.appointments, *ap)
	return nil
}

func (f *fakeRepo) GetAppointmentForOwner(_ context.Context, appointmentID, ownerID uint) (*models.Appointment, error) {
	for i := range f.appointments {
		if f.appointments[i].ID == appointmentID && f.appointments[i].OwnerID == ownerID {
			ap := f.appointments[i]
			return &ap, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	f.updated = ap
	for i := range f.appointments {
		if f.appointments[i].ID == ap.ID {
			f.appointments[i] = *ap
		}
	}
	return nil
}

func (f *fakeRepo) DeleteAppointment(_ context.Context, ap *models.Appointment) error {
	f.deleted = append(f.deleted, ap.ID)
	return nil
}

func (f *fakeRepo) ListAppointmentsForDay(_ context.Context, ownerID uint, date string) ([]models.Appointment, error) {
	if f.failDayList {
		return nil, errors.New("connection refused")
	}
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.OwnerID == ownerID && ap.Date == date {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAppointmentsForRange(_ context.Context, ownerID uint, from, to string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.OwnerID == ownerID && ap.Date >= from && ap.Date <= to {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAppointmentsForClient(_ context.Context, ownerID, clientID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.OwnerID == ownerID && ap.ClientID == clientID {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListPayments(_ context.Context, ownerID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.OwnerID == ownerID {
			out = append(out, ap)
		}
	}
	return out, nil
}

type fakeCache struct {
	store       map[string]*dto.DaySchedule
	sets        int
	invalidated []string
}

var _ DayCache = (*fakeCache)(nil)

func newFakeCache() *fakeCache {
	return &fakeCache{store: map[string]*dto.DaySchedule{}}
}

func cacheKey(ownerID uint, date string) string {
	return fmt.Sprintf("%d:%s", ownerID, date)
}

func (f *fakeCache) Get(_ context.Context, ownerID uint, date string) (*dto.DaySchedule, error) {
	return f.store[cacheKey(ownerID, date)], nil
}

func (f *fakeCache) Set(_ context.Context, ownerID uint, date string, s *dto.DaySchedule) error {
	f.sets++
	f.store[cacheKey(ownerID, date)] = s
	return nil
}

func (f *fakeCache) Invalidate(_ context.Context, ownerID uint, date string) error {
	f.invalidated = append(f.invalidated, date)
	delete(f.store, cacheKey(ownerID, date))
	return nil
}

type fakeAuditor struct {
	events []audit.Event
}

func (f *fakeAuditor) Dispatch(ev audit.Event) {
	f.events = append(f.events, ev)
}

func (f *fakeAuditor) actions() []string {
	out := make([]string, 0, len(f.events))
	for _, ev := range f.events {
		out = append(out, ev.Action)
	}
	return out
}

// ======================================================
// HELPERS
// ======================================================

func seedAppointment(repo *fakeRepo, date, start, end string) models.Appointment {
	repo.nextID++
	ap := models.Appointment{
		ID:            repo.nextID,
		SalonID:       1,
		OwnerID:       1,
		ClientID:      7,
		Date:          date,
		StartTime:     start,
		EndTime:       end,
		Price:         200,
		PaymentStatus: models.PaymentUnpaid,
		Client:        models.Client{ID: 7, Name: "Anna Kowalska"},
	}
	repo.appointments = append(repo.appointments, ap)
	return ap
}

func createInput(date, start, end string) CreateAppointmentInput {
	return CreateAppointmentInput{
		SalonID:        1,
		OwnerID:        1,
		ClientName:     "Magda Nowak",
		ServiceType:    "nails",
		ServiceDetails: "Manicure hybrydowy",
		Date:           date,
		StartTime:      start,
		EndTime:        end,
		Price:          150,
	}
}

// ======================================================
// CREATE
// ======================================================

func TestCreateAppointmentRejectsOverlap(t *testing.T) {
	repo := newFakeRepo()
	seedAppointment(repo, "2025-03-10", "10:00", "11:00")

	auditor := &fakeAuditor{}
	days := newFakeCache()
	uc := NewCreateAppointment(repo, auditor, days)

	_, err := uc.Execute(context.Background(), createInput("2025-03-10", "10:30", "11:30"))

	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)
	require.Equal(t, "2025-03-10", conflict.Date)
	require.Equal(t, "10:00", conflict.Start)
	require.Equal(t, "11:00", conflict.End)

	require.Nil(t, repo.created, "conflicting appointment must not be persisted")
	require.Contains(t, auditor.actions(), "appointment_conflict")
	require.Empty(t, days.invalidated)
}

func TestCreateAppointmentAllowsBackToBack(t *testing.T) {
	repo := newFakeRepo()
	seedAppointment(repo, "2025-03-10", "09:00", "10:00")

	auditor := &fakeAuditor{}
	days := newFakeCache()
	uc := NewCreateAppointment(repo, auditor, days)

	ap, err := uc.Execute(context.Background(), createInput("2025-03-10", "10:00", "11:00"))
	require.NoError(t, err)
	require.NotNil(t, repo.created)
	require.Equal(t, 60, ap.DurationMin)
	require.Equal(t, models.PaymentUnpaid, ap.PaymentStatus)

	require.Contains(t, auditor.actions(), "appointment_created")
	require.Equal(t, []string{"2025-03-10"}, days.invalidated)
}

func TestCreateAppointmentBlocksWhenDayFetchFails(t *testing.T) {
	repo := newFakeRepo()
	repo.failDayList = true

	uc := NewCreateAppointment(repo, &fakeAuditor{}, newFakeCache())

	_, err := uc.Execute(context.Background(), createInput("2025-03-10", "10:00", "11:00"))

	var unknown *domain.AvailabilityUnknownError
	require.ErrorAs(t, err, &unknown)
	require.Nil(t, repo.created, "a failed availability check must block the booking")
}

func TestCreateAppointmentBlocksOnMalformedStoredTime(t *testing.T) {
	repo := newFakeRepo()
	seedAppointment(repo, "2025-03-10", "25:99", "11:00")

	uc := NewCreateAppointment(repo, &fakeAuditor{}, newFakeCache())

	_, err := uc.Execute(context.Background(), createInput("2025-03-10", "12:00", "13:00"))

	var unknown *domain.AvailabilityUnknownError
	require.ErrorAs(t, err, &unknown)
	require.Nil(t, repo.created)
}

func TestCreateAppointmentRejectsMalformedCandidateTime(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateAppointment(repo, &fakeAuditor{}, newFakeCache())

	_, err := uc.Execute(context.Background(), createInput("2025-03-10", "9:00", "10:00"))

	var malformed *schedule.MalformedTimeError
	require.ErrorAs(t, err, &malformed)
	require.Equal(t, "9:00", malformed.Value)
}

func TestCreateAppointmentRejectsInvertedRange(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateAppointment(repo, &fakeAuditor{}, newFakeCache())

	_, err := uc.Execute(context.Background(), createInput("2025-03-10", "11:00", "10:00"))
	require.ErrorIs(t, err, schedule.ErrEndNotAfterStart)
}

func TestCreateAppointmentRequiresClientIdentifier(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateAppointment(repo, &fakeAuditor{}, newFakeCache())

	in := createInput("2025-03-10", "10:00", "11:00")
	in.ClientName = ""

	_, err := uc.Execute(context.Background(), in)
	require.True(t, httperr.IsBusiness(err, "missing_client_identifier"))
}

// ======================================================
// DAY SCHEDULE
// ======================================================

func TestGetDayScheduleLaysOutOverlapsInColumns(t *testing.T) {
	repo := newFakeRepo()
	seedAppointment(repo, "2025-03-10", "09:00", "10:00")
	seedAppointment(repo, "2025-03-10", "09:30", "10:15")

	uc := NewGetDaySchedule(repo, newFakeCache())

	day, err := uc.Execute(context.Background(), 1, 1, "2025-03-10")
	require.NoError(t, err)
	require.Len(t, day.Items, 2)

	require.Equal(t, 0, day.Items[0].ColumnIndex)
	require.Equal(t, 1, day.Items[1].ColumnIndex)
	require.Equal(t, 2, day.Items[0].TotalColumns)
	require.Equal(t, 2, day.Items[1].TotalColumns)

	require.Equal(t, 8, day.DayStartHour)
	require.Equal(t, 22, day.DayEndHour)
}

func TestGetDayScheduleServesSecondReadFromCache(t *testing.T) {
	repo := newFakeRepo()
	seedAppointment(repo, "2025-03-10", "09:00", "10:00")

	days := newFakeCache()
	uc := NewGetDaySchedule(repo, days)

	first, err := uc.Execute(context.Background(), 1, 1, "2025-03-10")
	require.NoError(t, err)
	require.Equal(t, 1, days.sets)

	// New rows appear in the repo, but within the TTL the cached layout wins.
	seedAppointment(repo, "2025-03-10", "11:00", "12:00")

	second, err := uc.Execute(context.Background(), 1, 1, "2025-03-10")
	require.NoError(t, err)
	require.Equal(t, 1, days.sets)
	require.Equal(t, first, second)
}

func TestGetDayScheduleReportsMalformedRecordsAsSkipped(t *testing.T) {
	repo := newFakeRepo()
	seedAppointment(repo, "2025-03-10", "09:00", "10:00")
	broken := seedAppointment(repo, "2025-03-10", "25:99", "26:00")

	uc := NewGetDaySchedule(repo, newFakeCache())

	day, err := uc.Execute(context.Background(), 1, 1, "2025-03-10")
	require.NoError(t, err)

	require.Len(t, day.Items, 1)
	require.Len(t, day.Skipped, 1)
	require.Equal(t, broken.ID, day.Skipped[0].ID)
	require.NotEmpty(t, day.Skipped[0].Reason)
}

func TestGetDayScheduleRejectsBadDate(t *testing.T) {
	uc := NewGetDaySchedule(newFakeRepo(), newFakeCache())

	_, err := uc.Execute(context.Background(), 1, 1, "10-03-2025")
	require.True(t, httperr.IsBusiness(err, "invalid_date"))
}

// ======================================================
// PAYMENT EDIT
// ======================================================

func TestUpdatePaymentEditsOnlyPaymentFields(t *testing.T) {
	repo := newFakeRepo()
	ap := seedAppointment(repo, "2025-03-10", "10:00", "11:00")

	auditor := &fakeAuditor{}
	days := newFakeCache()
	uc := NewUpdateAppointmentPayment(repo, auditor, days)

	price := 250.0
	paid := true
	status := models.PaymentCash

	got, err := uc.Execute(context.Background(), UpdatePaymentInput{
		SalonID:       1,
		OwnerID:       1,
		AppointmentID: ap.ID,
		Price:         &price,
		DepositPaid:   &paid,
		PaymentStatus: &status,
	})
	require.NoError(t, err)

	require.Equal(t, 250.0, got.Price)
	require.True(t, got.DepositPaid)
	require.Equal(t, models.PaymentCash, got.PaymentStatus)

	// Scheduling fields stay untouched.
	require.Equal(t, ap.Date, got.Date)
	require.Equal(t, ap.StartTime, got.StartTime)
	require.Equal(t, ap.EndTime, got.EndTime)

	require.Contains(t, auditor.actions(), "appointment_updated")
	require.Equal(t, []string{ap.Date}, days.invalidated)
}

func TestUpdatePaymentRejectsUnknownStatus(t *testing.T) {
	repo := newFakeRepo()
	ap := seedAppointment(repo, "2025-03-10", "10:00", "11:00")

	uc := NewUpdateAppointmentPayment(repo, &fakeAuditor{}, newFakeCache())

	status := "paypal"
	_, err := uc.Execute(context.Background(), UpdatePaymentInput{
		SalonID:       1,
		OwnerID:       1,
		AppointmentID: ap.ID,
		PaymentStatus: &status,
	})
	require.True(t, httperr.IsBusiness(err, "invalid_payment_status"))
	require.Nil(t, repo.updated)
}

func TestUpdatePaymentUnknownAppointment(t *testing.T) {
	uc := NewUpdateAppointmentPayment(newFakeRepo(), &fakeAuditor{}, newFakeCache())

	_, err := uc.Execute(context.Background(), UpdatePaymentInput{
		SalonID:       1,
		OwnerID:       1,
		AppointmentID: 999,
	})
	require.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

// ======================================================
// DELETE
// ======================================================

func TestDeleteAppointmentAuditsAndInvalidates(t *testing.T) {
	repo := newFakeRepo()
	ap := seedAppointment(repo, "2025-03-10", "10:00", "11:00")

	auditor := &fakeAuditor{}
	days := newFakeCache()
	uc := NewDeleteAppointment(repo, auditor, days)

	require.NoError(t, uc.Execute(context.Background(), 1, 1, ap.ID))

	require.Equal(t, []uint{ap.ID}, repo.deleted)
	require.Contains(t, auditor.actions(), "appointment_deleted")
	require.Equal(t, []string{ap.Date}, days.invalidated)
}

// ======================================================
// RANGE / MONTH
// ======================================================

func TestListAppointmentsByRangeValidatesBounds(t *testing.T) {
	uc := NewListAppointmentsByRange(newFakeRepo())
	ctx := context.Background()

	_, err := uc.Execute(ctx, 1, "2025-03-17", "2025-03-10")
	require.True(t, httperr.IsBusiness(err, "invalid_range"))

	_, err = uc.Execute(ctx, 1, "17-03-2025", "2025-03-18")
	require.True(t, httperr.IsBusiness(err, "invalid_date"))
}

func TestListAppointmentsByMonthCoversWholeMonth(t *testing.T) {
	repo := newFakeRepo()
	seedAppointment(repo, "2025-02-28", "10:00", "11:00")
	seedAppointment(repo, "2025-03-01", "10:00", "11:00")
	seedAppointment(repo, "2025-03-31", "10:00", "11:00")
	seedAppointment(repo, "2025-04-01", "10:00", "11:00")

	uc := NewListAppointmentsByMonth(repo)

	items, err := uc.Execute(context.Background(), 1, 2025, 3)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "2025-03-01", items[0].Date)
	require.Equal(t, "2025-03-31", items[1].Date)
}

// ======================================================
// OVERVIEW
// ======================================================

func TestOverviewStats(t *testing.T) {
	repo := newFakeRepo()

	// Wednesday 2025-03-12.
	now := time.Date(2025, 3, 12, 14, 0, 0, 0, time.UTC)

	monday := seedAppointment(repo, "2025-03-10", "10:00", "11:00")
	_ = monday
	today1 := seedAppointment(repo, "2025-03-12", "09:00", "10:00")
	today2 := seedAppointment(repo, "2025-03-12", "11:00", "12:00")
	_, _ = today1, today2
	seedAppointment(repo, "2025-03-20", "10:00", "11:00")
	seedAppointment(repo, "2025-04-02", "10:00", "11:00") // outside this month

	uc := NewGetOverview(repo, func() time.Time { return now })

	out, err := uc.Execute(context.Background(), 1)
	require.NoError(t, err)

	require.Equal(t, 2, out.Stats.TodayAppointments)
	require.Equal(t, 400.0, out.Stats.TodayRevenue)
	require.Equal(t, 3, out.Stats.WeekAppointments) // Mon + 2x Wed
	require.Equal(t, 800.0, out.Stats.MonthRevenue) // April row excluded
	require.Equal(t, 4, out.Stats.UnpaidCount)
	require.Equal(t, 1, out.Stats.TotalClients)

	require.Len(t, out.Today, 2)
	require.Len(t, out.Upcoming, 2)
	require.Equal(t, "2025-03-20", out.Upcoming[0].Date)
}

// ======================================================
// PAYMENTS
// ======================================================

func TestListPaymentsFiltersByStatusAndSearch(t *testing.T) {
	repo := newFakeRepo()

	paid := seedAppointment(repo, "2025-03-10", "10:00", "11:00")
	paid.PaymentStatus = models.PaymentCash
	paid.ServiceDetails = "Manicure hybrydowy"
	repo.appointments[0] = paid

	unpaid := seedAppointment(repo, "2025-03-11", "10:00", "11:00")
	unpaid.ServiceDetails = "Stylizacja brwi"
	repo.appointments[1] = unpaid

	uc := NewListPayments(repo)
	ctx := context.Background()

	rows, err := uc.Execute(ctx, 1, models.PaymentCash, "")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, paid.ID, rows[0].ID)

	rows, err = uc.Execute(ctx, 1, "", "brwi")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, unpaid.ID, rows[0].ID)

	_, err = uc.Execute(ctx, 1, "paypal", "")
	require.True(t, httperr.IsBusiness(err, "invalid_payment_status"))
}

func TestSummarize(t *testing.T) {
	rows := []dto.PaymentRow{
		{Price: 100, PaymentStatus: models.PaymentCash},
		{Price: 150, PaymentStatus: models.PaymentTransfer},
		{Price: 200, PaymentStatus: models.PaymentUnpaid},
	}

	s := Summarize(rows)
	require.Equal(t, 450.0, s.TotalRevenue)
	require.Equal(t, 2, s.PaidCount)
	require.Equal(t, 1, s.UnpaidCount)
}
