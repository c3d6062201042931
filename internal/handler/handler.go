package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/EricoBruner/drivent-back-fourth-sprint/internal/domain"
	"github.com/EricoBruner/drivent-back-fourth-sprint/internal/handler/dto"
	"github.com/EricoBruner/drivent-back-fourth-sprint/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type BookingSvc interface {
	Create(ctx context.Context, userID, roomID int) (int, error)
	Find(ctx context.Context, userID int) (*domain.BookingWithRoom, error)
	Update(ctx context.Context, userID, roomID, bookingID int) (int, error)
}

type Handler struct {
	bookingService BookingSvc
}

func NewHandler(bookingService BookingSvc) *Handler {
	return &Handler{bookingService: bookingService}
}

func (h *Handler) GetBooking(c *ginext.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		h.handleError(c, domain.ErrUnauthorized)
		return
	}

	booking, err := h.bookingService.Find(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) CreateBooking(c *ginext.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		h.handleError(c, domain.ErrUnauthorized)
		return
	}

	var req dto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, fmt.Errorf("%w: %s", domain.ErrValidation, err.Error()))
		return
	}

	bookingID, err := h.bookingService.Create(c.Request.Context(), userID, req.RoomID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BookingIDResponse{BookingID: bookingID})
}

func (h *Handler) UpdateBooking(c *ginext.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		h.handleError(c, domain.ErrUnauthorized)
		return
	}

	bookingID, err := strconv.Atoi(c.Param("bookingId"))
	if err != nil || bookingID <= 0 {
		h.handleError(c, fmt.Errorf("%w: invalid booking id", domain.ErrValidation))
		return
	}

	var req dto.BookingRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, fmt.Errorf("%w: %s", domain.ErrValidation, err.Error()))
		return
	}

	bookingID, err = h.bookingService.Update(c.Request.Context(), userID, req.RoomID, bookingID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BookingIDResponse{BookingID: bookingID})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrCannotBook):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
