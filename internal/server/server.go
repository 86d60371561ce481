package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/Aijazali515/AgriFarma/internal/handler"
	"github.com/Aijazali515/AgriFarma/internal/middleware"
	"github.com/Aijazali515/AgriFarma/internal/service"
)

type Handlers struct {
	Auth        *handler.AuthHandler
	Profile     *handler.ProfileHandler
	Shop        *handler.ShopHandler
	Cart        *handler.CartHandler
	Order       *handler.OrderHandler
	Forum       *handler.ForumHandler
	Blog        *handler.BlogHandler
	Consultancy *handler.ConsultancyHandler
	Admin       *handler.AdminHandler
	Media       *handler.MediaHandler
	Search      *handler.SearchHandler
}

type Server struct {
	echo        *echo.Echo
	handlers    Handlers
	authService service.AuthService
}

func NewServer(handlers Handlers, authService service.AuthService, logger *zap.Logger) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(requestLogger(logger))
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	s := &Server{
		echo:        e,
		handlers:    handlers,
		authService: authService,
	}

	s.setupRoutes()
	return s
}

func requestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogURI:    true,
		LogMethod: true,
		LogStatus: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}
			logger.Info("request", fields...)
			return nil
		},
	})
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")
	authed := middleware.RequireAuth(s.authService)

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	api.GET("/search", s.handlers.Search.Search)

	// -------- auth --------
	auth := api.Group("/auth")
	auth.POST("/register", s.handlers.Auth.Register)
	auth.POST("/login", s.handlers.Auth.Login)
	auth.POST("/forgot-password", s.handlers.Auth.ForgotPassword)
	auth.POST("/reset-password", s.handlers.Auth.ResetPassword)

	// -------- profiles --------
	profile := api.Group("/profile", authed)
	profile.GET("/me", s.handlers.Profile.Me)
	profile.PUT("/me", s.handlers.Profile.Update)
	profile.POST("/me/picture", s.handlers.Profile.UploadDisplayPicture)
	api.GET("/users/:id/profile", s.handlers.Profile.ViewUser, authed)

	// -------- shop --------
	products := api.Group("/products")
	products.GET("", s.handlers.Shop.ListProducts)
	products.GET("/:id", s.handlers.Shop.GetProduct)
	products.POST("", s.handlers.Shop.CreateProduct, authed)
	products.PUT("/:id", s.handlers.Shop.UpdateProduct, authed)
	products.DELETE("/:id", s.handlers.Shop.DeleteProduct, authed)
	products.POST("/:id/reviews", s.handlers.Shop.SubmitReview, authed)

	cart := api.Group("/cart", authed)
	cart.GET("", s.handlers.Cart.ViewCart)
	cart.POST("/items", s.handlers.Cart.AddToCart)
	cart.PUT("/items/:id", s.handlers.Cart.UpdateItem)
	cart.DELETE("/items/:id", s.handlers.Cart.RemoveItem)
	cart.POST("/checkout", s.handlers.Cart.Checkout)

	orders := api.Group("/orders", authed)
	orders.GET("", s.handlers.Order.History)
	orders.GET("/:id", s.handlers.Order.Get)

	// -------- forum --------
	forum := api.Group("/forum")
	forum.GET("/categories", s.handlers.Forum.Categories)
	forum.GET("/threads", s.handlers.Forum.ListThreads)
	forum.GET("/threads/:id", s.handlers.Forum.ViewThread)
	forum.POST("/threads", s.handlers.Forum.CreateThread, authed)
	forum.DELETE("/threads/:id", s.handlers.Forum.DeleteThread, authed)
	forum.POST("/threads/:id/posts", s.handlers.Forum.Reply, authed)
	forum.POST("/posts/:id/like", s.handlers.Forum.ToggleLike, authed)

	// -------- blog --------
	blog := api.Group("/blog")
	blog.GET("", s.handlers.Blog.List)
	blog.GET("/:id", s.handlers.Blog.View)
	blog.POST("", s.handlers.Blog.Create, authed)
	blog.POST("/:id/comments", s.handlers.Blog.Comment, authed)
	blog.POST("/:id/like", s.handlers.Blog.ToggleLike, authed)
	blog.POST("/media", s.handlers.Blog.UploadMedia, authed)

	// -------- consultancy / messaging --------
	consultants := api.Group("/consultants")
	consultants.GET("", s.handlers.Consultancy.Directory)
	consultants.POST("/apply", s.handlers.Consultancy.Apply, authed)
	consultants.GET("/me", s.handlers.Consultancy.MyApplication, authed)

	messages := api.Group("/messages", authed)
	messages.POST("", s.handlers.Consultancy.SendMessage)
	messages.GET("/inbox", s.handlers.Consultancy.Inbox)
	messages.GET("/sent", s.handlers.Consultancy.Sent)
	messages.PUT("/:id/read", s.handlers.Consultancy.MarkRead)
	messages.GET("/unread-count", s.handlers.Consultancy.UnreadCount)

	// -------- media --------
	s.echo.GET("/media/:filename", s.handlers.Media.Serve)

	// -------- admin --------
	admin := api.Group("/admin", authed, middleware.RequireAdmin())
	admin.GET("/dashboard", s.handlers.Admin.Dashboard)
	admin.GET("/report", s.handlers.Admin.Report)
	admin.GET("/report/sales.csv", s.handlers.Admin.ExportSalesCSV)
	admin.GET("/users", s.handlers.Admin.ListUsers)
	admin.PUT("/users/:id/active", s.handlers.Admin.SetUserActive)
	admin.GET("/moderation", s.handlers.Admin.ModerationQueue)
	admin.GET("/reviews/pending", s.handlers.Admin.PendingReviews)
	admin.PUT("/products/:id/moderate", s.handlers.Admin.ModerateProduct)
	admin.PUT("/blog/:id/moderate", s.handlers.Admin.ModerateBlogPost)
	admin.PUT("/reviews/:id/moderate", s.handlers.Admin.ModerateReview)
	admin.GET("/consultants/pending", s.handlers.Admin.PendingConsultants)
	admin.PUT("/consultants/:id/status", s.handlers.Admin.SetConsultantStatus)
}

func (s *Server) Echo() *echo.Echo {
	return s.echo
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
