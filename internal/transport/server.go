package transport

import (
	"net/http"

	"whitepepper-be/internal/cart"
	"whitepepper-be/internal/catalog"
	"whitepepper-be/internal/logger"
	appmw "whitepepper-be/internal/middleware"
	"whitepepper-be/internal/order"
	"whitepepper-be/internal/testimonial"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo               *echo.Echo
	catalogHandler     *CatalogHandler
	cartHandler        *CartHandler
	orderHandler       *OrderHandler
	testimonialHandler *TestimonialHandler
}

func NewServer(
	catalogSvc catalog.Service,
	cartSvc cart.Service,
	orderSvc order.Service,
	testimonialRepo testimonial.Repository,
) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(logger.Middleware())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(appmw.RateLimit())

	s := &Server{
		echo:               e,
		catalogHandler:     NewCatalogHandler(catalogSvc),
		cartHandler:        NewCartHandler(cartSvc),
		orderHandler:       NewOrderHandler(orderSvc),
		testimonialHandler: NewTestimonialHandler(testimonialRepo),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// -------- catalog --------
	api.GET("/categories", s.catalogHandler.ListCategories)
	api.GET("/categories/:slug", s.catalogHandler.GetCategoryBySlug)
	api.GET("/products", s.catalogHandler.ListProducts)
	api.GET("/products/best-sellers", s.catalogHandler.ListBestSellers)
	api.GET("/products/new-arrivals", s.catalogHandler.ListNewArrivals)
	api.GET("/products/:slug", s.catalogHandler.GetProductBySlug)
	api.GET("/testimonials", s.testimonialHandler.List)

	// -------- cart --------
	api.GET("/cart", s.cartHandler.GetCart)
	api.POST("/cart", s.cartHandler.AddItem)
	api.PUT("/cart/:id", s.cartHandler.UpdateQuantity)
	api.DELETE("/cart/:id", s.cartHandler.RemoveItem)
	api.DELETE("/cart", s.cartHandler.ClearCart)

	// -------- orders & payment --------
	api.POST("/orders", s.orderHandler.Checkout)
	api.GET("/orders", s.orderHandler.ListUserOrders)
	api.GET("/orders/:id", s.orderHandler.GetOrder)
	api.POST("/payment/intent", s.orderHandler.CreatePaymentIntent)
	api.POST("/payment/verify", s.orderHandler.VerifyPayment)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}

// Echo exposes the underlying router for tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}
