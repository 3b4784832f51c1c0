package handler

import (
	"net/http"

	"comerciaya/internal/delivery/api/response"
	"comerciaya/internal/errors"
	"comerciaya/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OfferingHandlerParams holds dependencies for OfferingHandler, injected by Fx.
type OfferingHandlerParams struct {
	fx.In

	OfferingUC usecase.OfferingUsecase
}

// OfferingHandler serves products and services.
type OfferingHandler struct {
	offeringUC usecase.OfferingUsecase
}

// NewOfferingHandler is the constructor for OfferingHandler.
func NewOfferingHandler(params OfferingHandlerParams) *OfferingHandler {
	return &OfferingHandler{offeringUC: params.OfferingUC}
}

// Create adds an offering to a business owned by the caller.
func (h *OfferingHandler) Create(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var input usecase.CreateOfferingInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	offering, err := h.offeringUC.Create(c.Request().Context(), identity.UserID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newOfferingView(offering))
}

// Update replaces the editable fields of an owned offering.
func (h *OfferingHandler) Update(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}
	offeringID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.UpdateOfferingInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	offering, err := h.offeringUC.Update(c.Request().Context(), identity.UserID, offeringID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newOfferingView(offering))
}

// Delete soft deletes an owned offering.
func (h *OfferingHandler) Delete(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}
	offeringID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.offeringUC.Delete(c.Request().Context(), identity.UserID, offeringID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Get returns one active offering.
func (h *OfferingHandler) Get(c echo.Context) error {
	offeringID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	offering, err := h.offeringUC.Get(c.Request().Context(), offeringID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newOfferingView(offering))
}

// ListMine returns the active offerings across the caller's businesses.
func (h *OfferingHandler) ListMine(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	offerings, err := h.offeringUC.ListMine(c.Request().Context(), identity.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newOfferingViews(offerings))
}

// UpdateImage stores the uploaded image as the offering picture.
func (h *OfferingHandler) UpdateImage(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}
	offeringID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	return withImage(c, func(upload *usecase.ImageUpload) error {
		offering, err := h.offeringUC.UpdateImage(c.Request().Context(), identity.UserID, offeringID, upload)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, newOfferingView(offering))
	})
}
