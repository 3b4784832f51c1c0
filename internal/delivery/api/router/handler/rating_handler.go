package handler

import (
	"net/http"

	"comerciaya/internal/delivery/api/response"
	"comerciaya/internal/errors"
	"comerciaya/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RatingHandlerParams holds dependencies for RatingHandler, injected by Fx.
type RatingHandlerParams struct {
	fx.In

	RatingUC usecase.RatingUsecase
}

// RatingHandler serves rating writes. Every response carries the refreshed statistics.
type RatingHandler struct {
	ratingUC usecase.RatingUsecase
}

// NewRatingHandler is the constructor for RatingHandler.
func NewRatingHandler(params RatingHandlerParams) *RatingHandler {
	return &RatingHandler{ratingUC: params.RatingUC}
}

// Create rates a business the caller does not own.
func (h *RatingHandler) Create(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var input usecase.CreateRatingInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	out, err := h.ratingUC.Create(c.Request().Context(), identity.UserID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newRatingWriteView(out))
}

// Update changes the caller's own rating.
func (h *RatingHandler) Update(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}
	ratingID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.UpdateRatingInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	out, err := h.ratingUC.Update(c.Request().Context(), identity.UserID, ratingID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newRatingWriteView(out))
}

// Delete removes the caller's own rating.
func (h *RatingHandler) Delete(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}
	ratingID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	stats, err := h.ratingUC.Delete(c.Request().Context(), identity.UserID, ratingID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]StatsView{"stats": newStatsView(stats)})
}
