package handler

import (
	"net/http"

	"comerciaya/internal/delivery/api/response"
	"comerciaya/internal/errors"
	"comerciaya/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BusinessHandlerParams holds dependencies for BusinessHandler, injected by Fx.
type BusinessHandlerParams struct {
	fx.In

	BusinessUC usecase.BusinessUsecase
	OfferingUC usecase.OfferingUsecase
	RatingUC   usecase.RatingUsecase
}

// BusinessHandler serves businesses and the collections nested under them.
type BusinessHandler struct {
	businessUC usecase.BusinessUsecase
	offeringUC usecase.OfferingUsecase
	ratingUC   usecase.RatingUsecase
}

// NewBusinessHandler is the constructor for BusinessHandler.
func NewBusinessHandler(params BusinessHandlerParams) *BusinessHandler {
	return &BusinessHandler{
		businessUC: params.BusinessUC,
		offeringUC: params.OfferingUC,
		ratingUC:   params.RatingUC,
	}
}

// Create registers a business owned by the caller.
func (h *BusinessHandler) Create(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var input usecase.BusinessInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	business, err := h.businessUC.Create(c.Request().Context(), identity.UserID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newBusinessView(business))
}

// Update replaces the editable fields of an owned business.
func (h *BusinessHandler) Update(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}
	businessID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.BusinessInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	business, err := h.businessUC.Update(c.Request().Context(), identity.UserID, businessID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newBusinessView(business))
}

// Delete soft deletes an owned business together with its offerings.
func (h *BusinessHandler) Delete(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}
	businessID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.businessUC.Delete(c.Request().Context(), identity.UserID, businessID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Get returns one active business.
func (h *BusinessHandler) Get(c echo.Context) error {
	businessID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	business, err := h.businessUC.Get(c.Request().Context(), businessID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newBusinessView(business))
}

// ListMine returns the caller's active businesses.
func (h *BusinessHandler) ListMine(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	businesses, err := h.businessUC.ListMine(c.Request().Context(), identity.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newBusinessViews(businesses))
}

// Explore searches active businesses by name and category.
func (h *BusinessHandler) Explore(c echo.Context) error {
	var input usecase.ExploreInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Parámetros de búsqueda inválidos")
	}

	businesses, err := h.businessUC.Explore(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newBusinessViews(businesses))
}

// Categories lists the accepted business categories.
func (h *BusinessHandler) Categories(c echo.Context) error {
	categories := h.businessUC.Categories()

	names := make([]string, 0, len(categories))
	for _, category := range categories {
		names = append(names, string(category))
	}

	return response.Success(c, http.StatusOK, names)
}

// UpdateImage stores the uploaded image as the business picture.
func (h *BusinessHandler) UpdateImage(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}
	businessID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	return withImage(c, func(upload *usecase.ImageUpload) error {
		business, err := h.businessUC.UpdateImage(c.Request().Context(), identity.UserID, businessID, upload)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, newBusinessView(business))
	})
}

// QRCode renders a PNG linking to the business page.
func (h *BusinessHandler) QRCode(c echo.Context) error {
	businessID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	png, err := h.businessUC.QRCode(c.Request().Context(), businessID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// Offerings lists the active offerings of an active business.
func (h *BusinessHandler) Offerings(c echo.Context) error {
	businessID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	offerings, err := h.offeringUC.ListByBusiness(c.Request().Context(), businessID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newOfferingViews(offerings))
}

// Ratings lists the ratings of an active business, newest first.
func (h *BusinessHandler) Ratings(c echo.Context) error {
	businessID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	ratings, err := h.ratingUC.ListByBusiness(c.Request().Context(), businessID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newRatingViews(ratings))
}
