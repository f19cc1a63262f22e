package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	_ "github.com/Astemirdum/library-lending/library/docs"
	md "github.com/Astemirdum/library-lending/pkg/middleware"
	"github.com/Astemirdum/library-lending/pkg/validate"
)

type Handler struct {
	librarySvc LibraryService
	log        *zap.Logger
}

func New(librarySvc LibraryService, log *zap.Logger) *Handler {
	return &Handler{
		librarySvc: librarySvc,
		log:        log.Named("handler"),
	}
}

// @title       Library lending API
// @version     1.0
// @BasePath    /api/v1
// @securityDefinitions.apikey Session
// @in          header
// @name        Authorization
func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
		h.identify,
	)

	users := api.Group("/users")
	users.POST("/register", h.Register)
	users.POST("/login", h.Login)
	users.POST("/logout", h.Logout)
	users.GET("/me", h.Me)

	books := api.Group("/books")
	books.GET("/list", h.ListBooks)
	books.GET("/list/:page", h.ListBooks)
	books.GET("/:isbn", h.GetBook)
	books.POST("/rental", h.Checkout)

	rentals := api.Group("/rentals")
	rentals.GET("", h.History)
	rentals.GET("/users/:userId", h.UserHistory)
	rentals.POST("/:rentalId/return", h.Return)

	search := api.Group("/search")
	search.GET("/author", h.SearchAuthor)
	search.GET("/publisher", h.SearchPublisher)

	admin := api.Group("/admin")
	admin.POST("/author", h.CreateAuthor)
	admin.PUT("/author", h.UpdateAuthor)
	admin.DELETE("/author", h.DeleteAuthor)
	admin.POST("/publisher", h.CreatePublisher)
	admin.PUT("/publisher", h.UpdatePublisher)
	admin.DELETE("/publisher", h.DeletePublisher)
	admin.POST("/book", h.CreateBook)
	admin.PUT("/book", h.UpdateBook)
	admin.DELETE("/book", h.DeleteBook)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
