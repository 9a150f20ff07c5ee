package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/BellaSalonPL/salon-scheduler/internal/audit"
	"github.com/BellaSalonPL/salon-scheduler/internal/cache"
	"github.com/BellaSalonPL/salon-scheduler/internal/config"
	"github.com/BellaSalonPL/salon-scheduler/internal/handlers"
	infraRepo "github.com/BellaSalonPL/salon-scheduler/internal/infra/repository"
	"github.com/BellaSalonPL/salon-scheduler/internal/middleware"
	"github.com/BellaSalonPL/salon-scheduler/internal/payments"
	"github.com/BellaSalonPL/salon-scheduler/internal/storage"
	ucBooking "github.com/BellaSalonPL/salon-scheduler/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	dayCache := cache.NewDayCache(rdb)

	// ======================================================
	// USE CASES — BOOKING
	// ======================================================
	createAppointmentUC := ucBooking.NewCreateAppointment(
		bookingRepo,
		auditDispatcher,
		dayCache,
	)

	dayScheduleUC := ucBooking.NewGetDaySchedule(
		bookingRepo,
		dayCache,
	)

	listRangeUC := ucBooking.NewListAppointmentsByRange(bookingRepo)
	listMonthUC := ucBooking.NewListAppointmentsByMonth(bookingRepo)

	updatePaymentUC := ucBooking.NewUpdateAppointmentPayment(
		bookingRepo,
		auditDispatcher,
		dayCache,
	)

	deleteAppointmentUC := ucBooking.NewDeleteAppointment(
		bookingRepo,
		auditDispatcher,
		dayCache,
	)

	listPaymentsUC := ucBooking.NewListPayments(bookingRepo)
	overviewUC := ucBooking.NewGetOverview(bookingRepo, nil)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	salonHandler := handlers.NewSalonHandler(db)
	clientHandler := handlers.NewClientHandler(bookingRepo)
	serviceHandler := handlers.NewServiceHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		dayScheduleUC,
		listRangeUC,
		listMonthUC,
		updatePaymentUC,
		deleteAppointmentUC,
	)

	overviewHandler := handlers.NewOverviewHandler(overviewUC)

	var depositLinker *payments.DepositLinker
	if cfg.PaymentsEnabled() {
		var err error
		depositLinker, err = payments.NewDepositLinker(cfg.MercadoPagoToken)
		if err != nil {
			log.Println("deposit links disabled:", err)
		}
	}
	paymentsHandler := handlers.NewPaymentsHandler(listPaymentsUC, bookingRepo, depositLinker)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)
	publicHandler := handlers.NewPublicHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug", publicHandler.Profile)
			publicAPI.GET("/:slug/services", publicHandler.ListServices)
			publicAPI.GET("/:slug/gallery", publicHandler.ListGallery)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/me")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("", meHandler.GetMe)

			secured.GET("/salon", salonHandler.Get)
			secured.PATCH("/salon", salonHandler.Update)

			secured.GET("/clients", clientHandler.List)
			secured.GET("/clients/:id/appointments", clientHandler.Appointments)

			secured.GET("/services", serviceHandler.List)
			secured.POST("/services", serviceHandler.Create)
			secured.PATCH("/services/:id", serviceHandler.Update)

			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments/day", appointmentHandler.Day)
			secured.GET("/appointments", appointmentHandler.ListRange)
			secured.GET("/appointments/month", appointmentHandler.ListMonth)
			secured.PATCH("/appointments/:id", appointmentHandler.UpdatePayment)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)

			secured.GET("/payments", paymentsHandler.List)
			secured.GET("/payments/summary", paymentsHandler.Summary)
			secured.POST("/appointments/:id/deposit-link", paymentsHandler.DepositLink)

			secured.GET("/overview", overviewHandler.Get)

			secured.GET("/audit-logs", auditLogsHandler.List)

			if cfg.GalleryEnabled() {
				store := storage.NewGalleryStore(
					storage.NewS3Client(cfg),
					cfg.S3Bucket,
					cfg.S3PublicBaseURL,
				)
				galleryHandler := handlers.NewGalleryHandler(db, store)

				secured.GET("/gallery", galleryHandler.List)
				secured.POST("/gallery", galleryHandler.Upload)
				secured.PATCH("/gallery/:id", galleryHandler.Update)
				secured.DELETE("/gallery/:id", galleryHandler.Delete)
			}
		}
	}
}
