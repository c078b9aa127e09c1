package handler

import (
	"net/http"

	"mindcare-booking/internal/domain/user"
	"mindcare-booking/internal/handler/api"
	"mindcare-booking/internal/handler/middleware"
	"mindcare-booking/internal/pkg/config"
	"mindcare-booking/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Availability *api.AvailabilityHandler
	Booking      *api.BookingHandler
	Reservation  *api.ReservationHandler
	Payment      *api.PaymentHandler
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	m *metrics.Metrics,
	h Handlers,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg, logger, m)
	setupRoutes(engine, cfg, m, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	if cfg.Metrics.Enabled {
		engine.Use(middleware.Metrics(m))
	}
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, m *metrics.Metrics, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if cfg.Metrics.Enabled {
		engine.GET(cfg.Metrics.Path, gin.WrapH(m.Handler()))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	professionalOnly := authMiddleware.RequireRole(user.RoleProfessional)
	clientOnly := authMiddleware.RequireRole(user.RoleClient)

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/windows/:id", Handler: h.Availability.Get},
			{Method: http.MethodGet, Path: "/windows/:id/slots", Handler: h.Availability.FreeSlots},
			{Method: http.MethodGet, Path: "/professionals/:id/windows", Handler: h.Availability.ListByProfessional},
			{Method: http.MethodPost, Path: "/payments/webhook", Handler: h.Payment.Webhook},
		})

		authRequired := apiGroup.Group("")
		authRequired.Use(authMiddleware.RequireAuth())
		addRoutes(authRequired, []route{
			{Method: http.MethodPost, Path: "/windows", Handler: h.Availability.Create, Mw: []gin.HandlerFunc{professionalOnly}},
			{Method: http.MethodPut, Path: "/windows/:id", Handler: h.Availability.Update, Mw: []gin.HandlerFunc{professionalOnly}},
			{Method: http.MethodDelete, Path: "/windows/:id", Handler: h.Availability.Delete, Mw: []gin.HandlerFunc{professionalOnly}},
			{Method: http.MethodPost, Path: "/windows/:id/bookings", Handler: h.Booking.Book, Mw: []gin.HandlerFunc{clientOnly}},

			{Method: http.MethodGet, Path: "/reservations", Handler: h.Reservation.List},
			{Method: http.MethodGet, Path: "/reservations/:id", Handler: h.Reservation.Get},
			{Method: http.MethodPost, Path: "/reservations/:id/validate", Handler: h.Reservation.Validate},
			{Method: http.MethodPost, Path: "/reservations/:id/refuse", Handler: h.Reservation.Refuse},
			{Method: http.MethodPost, Path: "/reservations/:id/cancel", Handler: h.Reservation.Cancel},
			{Method: http.MethodPost, Path: "/reservations/:id/payment", Handler: h.Reservation.InitiatePayment, Mw: []gin.HandlerFunc{clientOnly}},
			{Method: http.MethodGet, Path: "/reservations/:id/consultation", Handler: h.Reservation.GetConsultation},
			{Method: http.MethodPut, Path: "/reservations/:id/consultation/video-link", Handler: h.Reservation.SetVideoLink},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
