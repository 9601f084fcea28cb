package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/navalhaapp/barber-booking/internal/config"
	domain "github.com/navalhaapp/barber-booking/internal/domain/schedule"
	"github.com/navalhaapp/barber-booking/internal/handlers"
	infraRepo "github.com/navalhaapp/barber-booking/internal/infra/repository"
	"github.com/navalhaapp/barber-booking/internal/logger"
	"github.com/navalhaapp/barber-booking/internal/middleware"
	"github.com/navalhaapp/barber-booking/internal/notify"
	"github.com/navalhaapp/barber-booking/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)

	dispatcher := notify.NewDispatcher(db, rdb)

	defaultIntervals, err := domain.ParseIntervals(cfg.DefaultWorkIntervals)
	if err != nil {
		logger.L().Fatal("DEFAULT_WORK_INTERVALS inválido")
	}

	resolver := domain.NewResolver(cfg.DefaultOffWeekday, defaultIntervals)
	pricing := domain.NewPricingEngine(
		cfg.BirthdayDiscountEnabled,
		cfg.BirthdayDiscountPercent,
	)

	// ======================================================
	// 🧠 USE CASES — AGENDAMENTO
	// ======================================================
	bookUC := booking.NewBookAppointment(scheduleRepo, resolver, pricing, dispatcher)
	statusUC := booking.NewUpdateAppointmentStatus(scheduleRepo, pricing, dispatcher)
	cancelUC := booking.NewCancelByClient(scheduleRepo, dispatcher)
	listUC := booking.NewListAppointments(scheduleRepo)

	getAvailabilityUC := booking.NewGetAvailability(scheduleRepo, resolver)
	setAvailabilityUC := booking.NewSetAvailability(scheduleRepo)
	slotsUC := booking.NewGetAvailableSlots(scheduleRepo, resolver, cfg.SlotIntervalMinutes)

	priceUC := booking.NewGetPriceDetail(scheduleRepo, pricing)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(bookUC, statusUC, cancelUC, listUC)
	availabilityHandler := handlers.NewAvailabilityHandler(getAvailabilityUC, setAvailabilityUC, slotsUC)

	serviceHandler := handlers.NewServiceHandler(db, priceUC)
	userHandler := handlers.NewUserHandler(db)
	transactionHandler := handlers.NewTransactionHandler(db)
	notificationHandler := handlers.NewNotificationHandler(db)
	dashboardHandler := handlers.NewDashboardHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🌐 PÚBLICO
		// ------------------------------
		api.GET("/services", serviceHandler.List)
		api.GET("/services/:id", serviceHandler.Get)
		api.GET("/availability", availabilityHandler.GetByDate)
		api.GET("/availability/month", availabilityHandler.GetMonth)
		api.GET("/availability/slots", availabilityHandler.GetSlots)

		// ------------------------------
		// 🔐 PRIVADO (cliente logado)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/services/:id/price", serviceHandler.PriceDetail)

			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments/mine", appointmentHandler.ListMine)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.CancelMine)

			secured.GET("/notifications", notificationHandler.ListMine)
			secured.PATCH("/notifications/:id/read", notificationHandler.MarkRead)

			// ------------------------------
			// 🔑 ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireAdmin())
			{
				admin.POST("/appointments", appointmentHandler.AdminCreate)
				admin.GET("/appointments", appointmentHandler.ListAll)
				admin.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)

				admin.PUT("/availability", availabilityHandler.Set)

				admin.POST("/services", serviceHandler.Create)
				admin.PUT("/services/:id", serviceHandler.Update)
				admin.DELETE("/services/:id", serviceHandler.Delete)

				admin.GET("/users", userHandler.List)
				admin.POST("/users", userHandler.Create)
				admin.GET("/users/:id", userHandler.Get)
				admin.PATCH("/users/:id", userHandler.Update)
				admin.DELETE("/users/:id", userHandler.Delete)

				admin.GET("/transactions", transactionHandler.List)
				admin.GET("/transactions/:id", transactionHandler.Get)

				admin.GET("/dashboard", dashboardHandler.Summary)
			}
		}
	}
}
