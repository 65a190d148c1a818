package transport

import (
	"net/http"

	"whitepepper-be/internal/testimonial"

	"github.com/labstack/echo/v4"
)

type TestimonialHandler struct {
	testimonials testimonial.Repository
}

func NewTestimonialHandler(repo testimonial.Repository) *TestimonialHandler {
	return &TestimonialHandler{testimonials: repo}
}

func (h *TestimonialHandler) List(c echo.Context) error {
	out, err := h.testimonials.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
