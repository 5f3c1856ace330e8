package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/eventdesk/eventdesk-api/docs"
	v1 "github.com/eventdesk/eventdesk-api/internal/api/handler/v1"
	"github.com/eventdesk/eventdesk-api/internal/api/middleware"
	"github.com/eventdesk/eventdesk-api/internal/config"
	"github.com/eventdesk/eventdesk-api/internal/domain"
	"github.com/eventdesk/eventdesk-api/internal/mail"
	"github.com/eventdesk/eventdesk-api/internal/repository"
	"github.com/eventdesk/eventdesk-api/internal/repository/dao"
	"github.com/eventdesk/eventdesk-api/internal/service"
	"github.com/eventdesk/eventdesk-api/internal/viewcache"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine

	cache *viewcache.Cache
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
		cache:  viewcache.New(),
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(db)
	userHandler := s.initUserHandler(db)
	eventHandler := s.initEventHandler(db)
	contactHandler := s.initContactHandler(db)
	sessionHandler := s.initSessionHandler(db)
	speakerHandler := s.initSpeakerHandler(db)
	invoiceHandler := s.initInvoiceHandler(db)
	qrCodeHandler := s.initQRCodeHandler(db)
	countryHandler := s.initCountryHandler(db)
	dashboardHandler := s.initDashboardHandler(db)
	s.MountHandlers(authHandler, userHandler, eventHandler, contactHandler, sessionHandler,
		speakerHandler, invoiceHandler, qrCodeHandler, countryHandler, dashboardHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	repo := repository.NewUserRepository(dao.NewUserDAO(db))
	svc := service.NewAuthService(repo)

	return v1.NewAuthHandler(s.Config.API, svc)
}

func (s *Server) initUserHandler(db *gorm.DB) *v1.UserHandler {
	repo := repository.NewUserRepository(dao.NewUserDAO(db))
	svc := service.NewUserService(repo)

	return v1.NewUserHandler(svc, s.cache)
}

func (s *Server) initEventHandler(db *gorm.DB) *v1.EventHandler {
	repo := repository.NewEventRepository(dao.NewEventDAO(db))
	svc := service.NewEventService(repo)

	return v1.NewEventHandler(svc, s.cache)
}

func (s *Server) initContactHandler(db *gorm.DB) *v1.ContactHandler {
	repo := repository.NewContactRepository(dao.NewContactDAO(db))
	eventRepo := repository.NewEventRepository(dao.NewEventDAO(db))
	mailer := mail.NewMailer(s.Config.Mail)
	svc := service.NewContactService(repo, eventRepo, mailer)

	return v1.NewContactHandler(svc, s.cache)
}

func (s *Server) initSessionHandler(db *gorm.DB) *v1.SessionHandler {
	repo := repository.NewSessionRepository(dao.NewSessionDAO(db))
	eventRepo := repository.NewEventRepository(dao.NewEventDAO(db))
	svc := service.NewSessionService(repo, eventRepo)

	return v1.NewSessionHandler(svc, s.cache)
}

func (s *Server) initSpeakerHandler(db *gorm.DB) *v1.SpeakerHandler {
	repo := repository.NewSpeakerRepository(dao.NewSpeakerDAO(db))
	svc := service.NewSpeakerService(repo)

	return v1.NewSpeakerHandler(svc, s.cache)
}

func (s *Server) initInvoiceHandler(db *gorm.DB) *v1.InvoiceHandler {
	repo := repository.NewInvoiceRepository(dao.NewInvoiceDAO(db))
	svc := service.NewInvoiceService(repo)

	return v1.NewInvoiceHandler(svc, s.cache)
}

func (s *Server) initQRCodeHandler(db *gorm.DB) *v1.QRCodeHandler {
	repo := repository.NewQRCodeRepository(dao.NewQRCodeDAO(db))
	svc := service.NewQRCodeService(repo)

	return v1.NewQRCodeHandler(svc, s.cache)
}

func (s *Server) initCountryHandler(db *gorm.DB) *v1.CountryHandler {
	repo := repository.NewCountryRepository(dao.NewCountryDAO(db))
	svc := service.NewCountryService(repo)

	return v1.NewCountryHandler(svc)
}

func (s *Server) initDashboardHandler(db *gorm.DB) *v1.DashboardHandler {
	events := repository.NewEventRepository(dao.NewEventDAO(db))
	contacts := repository.NewContactRepository(dao.NewContactDAO(db))
	speakers := repository.NewSpeakerRepository(dao.NewSpeakerDAO(db))
	invoices := repository.NewInvoiceRepository(dao.NewInvoiceDAO(db))
	svc := service.NewDashboardService(events, contacts, speakers, invoices)

	return v1.NewDashboardHandler(svc)
}

func (s *Server) MountMiddlewares() {
	s.Router.Use(middleware.RequestLogger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(otelgin.Middleware(s.Config.Tracing.ServiceName))
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	userHandler *v1.UserHandler,
	eventHandler *v1.EventHandler,
	contactHandler *v1.ContactHandler,
	sessionHandler *v1.SessionHandler,
	speakerHandler *v1.SpeakerHandler,
	invoiceHandler *v1.InvoiceHandler,
	qrCodeHandler *v1.QRCodeHandler,
	countryHandler *v1.CountryHandler,
	dashboardHandler *v1.DashboardHandler,
) {
	const basePath = "/api/v1"

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/signup", authHandler.HandleSignup)
		auth.POST("/auth/login", authHandler.HandleLogin)
	}

	verifyJWT := middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT()

	// Cached views hold protected bodies, so the cache middleware must sit
	// behind the JWT guard (and behind the role guard for the users group).
	cacheViews := middleware.CacheViews(s.cache)

	events := s.Router.Group(basePath, verifyJWT, cacheViews)
	{
		events.GET("/events", eventHandler.HandleListEvents)
		events.GET("/events/stats", eventHandler.HandleGetEventStats)
		events.GET("/events/:eventID", eventHandler.HandleGetEvent)
		events.POST("/events", eventHandler.HandleCreateEvent)
		events.PUT("/events/:eventID", eventHandler.HandleUpdateEvent)
		events.PATCH("/events/:eventID/status", eventHandler.HandleUpdateEventStatus)
		events.DELETE("/events/:eventID", eventHandler.HandleDeleteEvent)

		events.GET("/events/:eventID/contacts", contactHandler.HandleListContacts)
		events.GET("/events/:eventID/contacts/countries", contactHandler.HandleGetCountryBreakdown)
		events.POST("/events/:eventID/contacts", contactHandler.HandleCreateContact)
		events.GET("/contacts/:contactID", contactHandler.HandleGetContact)
		events.PUT("/contacts/:contactID", contactHandler.HandleUpdateContact)
		events.POST("/contacts/:contactID/approve", contactHandler.HandleApproveContact)
		events.POST("/contacts/:contactID/reject", contactHandler.HandleRejectContact)
		events.DELETE("/contacts/:contactID", contactHandler.HandleDeleteContact)

		events.GET("/events/:eventID/sessions", sessionHandler.HandleListSessions)
		events.POST("/events/:eventID/sessions", sessionHandler.HandleCreateSession)
		events.GET("/sessions/:sessionID", sessionHandler.HandleGetSession)
		events.PUT("/sessions/:sessionID", sessionHandler.HandleUpdateSession)
		events.DELETE("/sessions/:sessionID", sessionHandler.HandleDeleteSession)

		events.GET("/speakers", speakerHandler.HandleListSpeakers)
		events.GET("/speakers/:speakerID", speakerHandler.HandleGetSpeaker)
		events.POST("/speakers", speakerHandler.HandleCreateSpeaker)
		events.PUT("/speakers/:speakerID", speakerHandler.HandleUpdateSpeaker)
		events.DELETE("/speakers/:speakerID", speakerHandler.HandleDeleteSpeaker)

		events.GET("/events/:eventID/invoices", invoiceHandler.HandleListInvoices)
		events.POST("/events/:eventID/invoices", invoiceHandler.HandleCreateInvoice)
		events.GET("/invoices/:invoiceID", invoiceHandler.HandleGetInvoice)
		events.PUT("/invoices/:invoiceID", invoiceHandler.HandleUpdateInvoice)
		events.DELETE("/invoices/:invoiceID", invoiceHandler.HandleDeleteInvoice)

		events.GET("/events/:eventID/qrcodes", qrCodeHandler.HandleListQRCodes)
		events.POST("/events/:eventID/qrcodes", qrCodeHandler.HandleCreateQRCode)
		events.GET("/qrcodes/:qrcodeID", qrCodeHandler.HandleGetQRCode)
		events.PUT("/qrcodes/:qrcodeID", qrCodeHandler.HandleUpdateQRCode)
		events.DELETE("/qrcodes/:qrcodeID", qrCodeHandler.HandleDeleteQRCode)

		events.GET("/countries", countryHandler.HandleListCountries)

		events.GET("/dashboard/stats", dashboardHandler.HandleGetDashboardStats)
	}

	users := s.Router.Group(basePath, verifyJWT, middleware.RequireRole(string(domain.RoleAdmin)), cacheViews)
	{
		users.GET("/users", userHandler.HandleListUsers)
		users.GET("/users/:userID", userHandler.HandleGetUser)
		users.POST("/users", userHandler.HandleCreateUser)
		users.PUT("/users/:userID", userHandler.HandleUpdateUser)
		users.DELETE("/users/:userID", userHandler.HandleDeleteUser)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "EventDesk API"
	docs.SwaggerInfo.Description = "Administrative API for event management."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
