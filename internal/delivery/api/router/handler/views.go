package handler

import (
	"time"

	"comerciaya/internal/domain/entity"
	"comerciaya/internal/usecase"

	"github.com/google/uuid"
)

// UserView is the public shape of an account. The password hash never leaves the server.
type UserView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	BirthDate string    `json:"birthDate"`
	Gender    string    `json:"gender"`
	Phone     string    `json:"phone"`
	PhotoURL  string    `json:"photoUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func newUserView(u *entity.User) *UserView {
	if u == nil {
		return nil
	}

	view := &UserView{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Gender:    string(u.Gender),
		Phone:     u.Phone,
		PhotoURL:  u.PhotoURL,
		CreatedAt: u.CreatedAt,
	}
	if !u.BirthDate.IsZero() {
		view.BirthDate = u.BirthDate.Format(time.DateOnly)
	}

	return view
}

// BusinessView is a business as listed on the marketplace.
type BusinessView struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	OwnerUserID   uuid.UUID `json:"ownerUserId"`
	ImageURL      string    `json:"imageUrl,omitempty"`
	RatingCount   int       `json:"ratingCount"`
	RatingAverage float64   `json:"ratingAverage"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func newBusinessView(b *entity.Business) *BusinessView {
	return &BusinessView{
		ID:            b.ID,
		Name:          b.Name,
		Description:   b.Description,
		Category:      string(b.Category),
		OwnerUserID:   b.OwnerUserID,
		ImageURL:      b.ImageURL,
		RatingCount:   b.RatingCount,
		RatingAverage: b.RatingAverage,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func newBusinessViews(businesses []*entity.Business) []*BusinessView {
	views := make([]*BusinessView, 0, len(businesses))
	for _, b := range businesses {
		views = append(views, newBusinessView(b))
	}

	return views
}

// OfferingView is a product or service of a business.
type OfferingView struct {
	ID          uuid.UUID `json:"id"`
	BusinessID  uuid.UUID `json:"businessId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Kind        string    `json:"kind"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newOfferingView(o *entity.Offering) *OfferingView {
	return &OfferingView{
		ID:          o.ID,
		BusinessID:  o.BusinessID,
		Name:        o.Name,
		Description: o.Description,
		Kind:        string(o.Kind),
		ImageURL:    o.ImageURL,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

func newOfferingViews(offerings []*entity.Offering) []*OfferingView {
	views := make([]*OfferingView, 0, len(offerings))
	for _, o := range offerings {
		views = append(views, newOfferingView(o))
	}

	return views
}

// RatingView is one user's rating of a business.
type RatingView struct {
	ID          uuid.UUID `json:"id"`
	BusinessID  uuid.UUID `json:"businessId"`
	RaterUserID uuid.UUID `json:"raterUserId"`
	Score       int       `json:"score"`
	Comment     string    `json:"comment"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newRatingView(r *entity.Rating) *RatingView {
	return &RatingView{
		ID:          r.ID,
		BusinessID:  r.BusinessID,
		RaterUserID: r.RaterUserID,
		Score:       r.Score,
		Comment:     r.Comment,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func newRatingViews(ratings []*entity.Rating) []*RatingView {
	views := make([]*RatingView, 0, len(ratings))
	for _, r := range ratings {
		views = append(views, newRatingView(r))
	}

	return views
}

// StatsView carries the aggregate of a business after a rating write.
type StatsView struct {
	RatingCount   int     `json:"ratingCount"`
	RatingAverage float64 `json:"ratingAverage"`
}

func newStatsView(stats entity.RatingStats) StatsView {
	return StatsView{RatingCount: stats.Count, RatingAverage: stats.Average}
}

// RatingWriteView is returned by rating create and update.
type RatingWriteView struct {
	Rating *RatingView `json:"rating"`
	Stats  StatsView   `json:"stats"`
}

func newRatingWriteView(out *usecase.RatingOutput) *RatingWriteView {
	return &RatingWriteView{
		Rating: newRatingView(out.Rating),
		Stats:  newStatsView(out.Stats),
	}
}

// LoginView is the body returned by a successful login.
type LoginView struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      *UserView `json:"user"`
}

// IdentityView describes the caller behind a verified token.
type IdentityView struct {
	UserID    uuid.UUID `json:"userId"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expiresAt"`
}
