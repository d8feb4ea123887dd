package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/healthyfeet/salon-scheduler/internal/archive"
	"github.com/healthyfeet/salon-scheduler/internal/audit"
	"github.com/healthyfeet/salon-scheduler/internal/config"
	"github.com/healthyfeet/salon-scheduler/internal/handlers"
	infraRepo "github.com/healthyfeet/salon-scheduler/internal/infra/repository"
	"github.com/healthyfeet/salon-scheduler/internal/middleware"
	"github.com/healthyfeet/salon-scheduler/internal/timezone"
	ucBooking "github.com/healthyfeet/salon-scheduler/internal/usecase/booking"
	ucReport "github.com/healthyfeet/salon-scheduler/internal/usecase/report"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	loc := timezone.Location(cfg.Timezone)

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	reportRepo := infraRepo.NewReportGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	archiveRecorder := archive.NewRecorder(db)
	archiveDispatcher := archive.NewDispatcher(archiveRecorder)

	// ======================================================
	// USE CASES: CITAS
	// ======================================================
	createAppointmentUC := ucBooking.NewCreateAppointment(
		bookingRepo,
		auditDispatcher,
		loc,
	)

	transitionAppointmentUC := ucBooking.NewTransitionAppointment(
		bookingRepo,
		archiveDispatcher,
		auditDispatcher,
		loc,
	)

	rescheduleAppointmentUC := ucBooking.NewRescheduleAppointment(
		bookingRepo,
		auditDispatcher,
		loc,
	)

	listAppointmentsByDateUC := ucBooking.NewListAppointmentsByDate(
		bookingRepo,
	)

	listAppointmentsByMonthUC := ucBooking.NewListAppointmentsByMonth(
		bookingRepo,
		loc,
	)

	// ======================================================
	// USE CASES: REPORTES
	// ======================================================
	reportService := ucReport.NewService(reportRepo, loc)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)

	clientHandler := handlers.NewClientHandler(db)
	employeeHandler := handlers.NewEmployeeHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		transitionAppointmentUC,
		rescheduleAppointmentUC,
		listAppointmentsByDateUC,
		listAppointmentsByMonthUC,
		loc,
	)

	saleHandler := handlers.NewSaleHandler(reportRepo, loc)
	reportHandler := handlers.NewReportHandler(reportService, loc)

	orthoticHandler := handlers.NewOrthoticHandler(db)
	templateHandler := handlers.NewTemplateHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			// ------------------------------
			// CLIENTES
			// ------------------------------
			secured.GET("/clients", clientHandler.List)
			secured.POST("/clients", clientHandler.Create)
			secured.PATCH("/clients/:id", clientHandler.Update)
			secured.DELETE("/clients/:id", middleware.AdminOnly(), clientHandler.Delete)

			// ------------------------------
			// EMPLEADOS
			// ------------------------------
			secured.GET("/employees", employeeHandler.List)
			secured.POST("/employees", employeeHandler.Create)
			secured.PATCH("/employees/:id", employeeHandler.Update)
			secured.PATCH("/employees/:id/deactivate", employeeHandler.Deactivate)
			secured.DELETE("/employees/:id", middleware.AdminOnly(), employeeHandler.Delete)

			// ------------------------------
			// SERVICIOS
			// ------------------------------
			secured.GET("/services", serviceHandler.List)
			secured.POST("/services", serviceHandler.Create)
			secured.PATCH("/services/:id", serviceHandler.Update)
			secured.PATCH("/services/:id/deactivate", serviceHandler.Deactivate)

			// ------------------------------
			// CITAS
			// ------------------------------
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments", appointmentHandler.ListByDate)
			secured.GET("/appointments/month", appointmentHandler.ListByMonth)
			secured.PATCH("/appointments/:id/confirm", appointmentHandler.Confirm)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/appointments/:id/finalize", appointmentHandler.Finalize)
			secured.PATCH("/appointments/:id/no-show", appointmentHandler.NoShow)
			secured.PUT("/appointments/:id", appointmentHandler.Reschedule)

			// ------------------------------
			// VENTAS Y REPORTES
			// ------------------------------
			secured.GET("/sales", saleHandler.List)
			secured.GET("/reports/monthly-sales", reportHandler.MonthlySales)
			secured.GET("/reports/top-clients", reportHandler.TopClients)
			secured.GET("/dashboard", reportHandler.Dashboard)

			// ------------------------------
			// PLANTILLAS ORTOPÉDICAS
			// ------------------------------
			secured.POST("/orthotics", orthoticHandler.Create)
			secured.GET("/orthotics", orthoticHandler.List)
			secured.PATCH("/orthotics/:id/status", orthoticHandler.UpdateStatus)

			// ------------------------------
			// PLANTILLAS DE MENSAJE
			// ------------------------------
			secured.GET("/templates", templateHandler.List)
			secured.POST("/templates", templateHandler.Create)
			secured.PATCH("/templates/:id", templateHandler.Update)
			secured.DELETE("/templates/:id", templateHandler.Delete)

			secured.GET("/audit-logs", middleware.AdminOnly(), auditLogsHandler.List)
		}
	}
}
