package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"comerciaya/config"
	"comerciaya/internal/delivery/api/middleware"
	"comerciaya/internal/delivery/api/router"
	"comerciaya/internal/delivery/api/router/handler"
	"comerciaya/internal/domain/service"
	"comerciaya/internal/infra/auth"
	"comerciaya/internal/infra/metrics"
	"comerciaya/internal/infra/persistence/memory"
	"comerciaya/internal/infra/pubsub"
	"comerciaya/internal/infra/qrcode"
	"comerciaya/internal/infra/storage"
	"comerciaya/internal/usecase/impl"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"gocloud.dev/blob/memblob"
)

const testSecret = "test-access-secret"

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Details any    `json:"details"`
	} `json:"error"`
}

type testAPI struct {
	t *testing.T
	e *echo.Echo
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "2MB"
	cfg.SecretKey.Access = testSecret
	cfg.Auth = &config.AuthConfig{BcryptCost: 4}
	cfg.Metrics = &config.MetricsConfig{Enabled: true}
	cfg.QRCode = &config.QRCodeConfig{BaseURL: "https://comerciaya.test/emprendimientos"}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	lc := fxtest.NewLifecycle(t)

	store := memory.NewStore()
	txManager := memory.NewTransactionManager(store)
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	images := storage.NewBlobImageStore(bucket, "http://cdn.test")

	m := metrics.New()
	publisher, err := pubsub.NewEventPublisher(pubsub.PublisherParams{Lc: lc, Ctx: context.Background(), Config: cfg, Logger: logger})
	require.NoError(t, err)
	var instrumented service.EventPublisher = m.InstrumentPublisher(publisher)

	authUC := impl.NewAuthService(impl.AuthServiceParams{
		TxManager:    txManager,
		Hasher:       auth.NewBcryptHasher(cfg),
		TokenService: tokens,
		Revoker:      auth.NewMemoryTokenRevoker(),
		Config:       cfg,
		Logger:       logger,
	})
	profileUC := impl.NewProfileService(impl.ProfileServiceParams{TxManager: txManager, ImageStore: images, Config: cfg, Logger: logger})
	businessUC := impl.NewBusinessService(impl.BusinessServiceParams{
		TxManager:  txManager,
		ImageStore: images,
		QRCode:     qrcode.NewQRCodeService(cfg),
		Publisher:  instrumented,
		Config:     cfg,
		Logger:     logger,
	})
	offeringUC := impl.NewOfferingService(impl.OfferingServiceParams{TxManager: txManager, ImageStore: images, Config: cfg, Logger: logger})
	ratingUC := impl.NewRatingService(impl.RatingServiceParams{TxManager: txManager, Publisher: instrumented, Logger: logger})

	srv, err := NewServer(ServerParams{
		Lc:      lc,
		Cfg:     cfg,
		Logger:  logger,
		Metrics: m,
		RouterParams: router.RouterParams{
			AuthHandler:     handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: authUC, Logger: logger}),
			UserHandler:     handler.NewUserHandler(handler.UserHandlerParams{ProfileUC: profileUC}),
			BusinessHandler: handler.NewBusinessHandler(handler.BusinessHandlerParams{BusinessUC: businessUC, OfferingUC: offeringUC, RatingUC: ratingUC}),
			OfferingHandler: handler.NewOfferingHandler(handler.OfferingHandlerParams{OfferingUC: offeringUC}),
			RatingHandler:   handler.NewRatingHandler(handler.RatingHandlerParams{RatingUC: ratingUC}),
			AuthMiddleware:  middleware.NewAuthMiddleware(authUC),
			Metrics:         m,
			Config:          cfg,
		},
	})
	require.NoError(t, err)

	return &testAPI{t: t, e: srv.(*apiServer).server}
}

func (a *testAPI) send(req *http.Request, token string) (int, envelope) {
	a.t.Helper()

	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)

	var body envelope
	if rec.Body.Len() > 0 && strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(a.t, json.Unmarshal(rec.Body.Bytes(), &body))
	}

	return rec.Code, body
}

func (a *testAPI) call(method, path, token string, payload any) (int, envelope) {
	a.t.Helper()

	var reader io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if payload != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	return a.send(req, token)
}

// signUp registers an account and returns its access token.
func (a *testAPI) signUp(email, firstName, phone string) string {
	a.t.Helper()

	code, _ := a.call(http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"email":     email,
		"password":  "secreto1",
		"firstName": firstName,
		"lastName":  "Gómez",
		"birthDate": "1992-06-15",
		"gender":    "Sin Especificar",
		"phone":     phone,
	})
	require.Equal(a.t, http.StatusCreated, code)

	code, body := a.call(http.MethodPost, "/api/v1/auth/login", "", map[string]string{"email": email, "password": "secreto1"})
	require.Equal(a.t, http.StatusOK, code)

	var login handler.LoginView
	decode(a.t, body, &login)

	return login.Token
}

func (a *testAPI) createBusiness(token, name string) handler.BusinessView {
	a.t.Helper()

	code, body := a.call(http.MethodPost, "/api/v1/businesses", token, map[string]string{
		"name":        name,
		"description": "Emprendimiento de prueba",
		"category":    "Comidas y Bebidas",
	})
	require.Equal(a.t, http.StatusCreated, code)

	var business handler.BusinessView
	decode(a.t, body, &business)

	return business
}

func decode(t *testing.T, body envelope, into any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(body.Data, into))
}

func TestAPI_RatingAggregation(t *testing.T) {
	api := newTestAPI(t)
	owner := api.signUp("ana@example.com", "Ana", "1155550001")
	bea := api.signUp("bea@example.com", "Beatriz", "1155550002")
	carlos := api.signUp("carlos@example.com", "Carlos", "1155550003")

	cafe := api.createBusiness(owner, "Café X")
	assert.Zero(t, cafe.RatingCount)
	assert.Zero(t, cafe.RatingAverage)

	rate := func(token string, score int) (int, envelope) {
		return api.call(http.MethodPost, "/api/v1/ratings", token, map[string]any{
			"businessId": cafe.ID,
			"score":      score,
			"comment":    "buen café",
		})
	}

	code, body := rate(bea, 4)
	require.Equal(t, http.StatusCreated, code)
	var beaRating handler.RatingWriteView
	decode(t, body, &beaRating)

	code, body = rate(carlos, 2)
	require.Equal(t, http.StatusCreated, code)
	var carlosRating handler.RatingWriteView
	decode(t, body, &carlosRating)
	assert.Equal(t, 2, carlosRating.Stats.RatingCount)
	assert.Equal(t, 3.0, carlosRating.Stats.RatingAverage)

	t.Run("owner cannot rate own business", func(t *testing.T) {
		code, body := rate(owner, 5)
		assert.Equal(t, http.StatusForbidden, code)
		assert.Equal(t, "SELF_RATING_FORBIDDEN", body.Error.Code)
	})

	t.Run("second rating by the same user conflicts", func(t *testing.T) {
		code, body := rate(bea, 5)
		assert.Equal(t, http.StatusConflict, code)
		assert.Equal(t, "DUPLICATE_RATING", body.Error.Code)
	})

	t.Run("score out of range", func(t *testing.T) {
		for _, score := range []int{0, 6} {
			code, body := api.call(http.MethodPut, "/api/v1/ratings/"+beaRating.Rating.ID.String(), bea, map[string]any{"score": score})
			assert.Equal(t, http.StatusBadRequest, code)
			assert.Equal(t, "INVALID_SCORE", body.Error.Code)
		}
	})

	t.Run("foreign rating is not found", func(t *testing.T) {
		code, _ := api.call(http.MethodDelete, "/api/v1/ratings/"+beaRating.Rating.ID.String(), carlos, nil)
		assert.Equal(t, http.StatusNotFound, code)
	})

	code, body = api.call(http.MethodDelete, "/api/v1/ratings/"+beaRating.Rating.ID.String(), bea, nil)
	require.Equal(t, http.StatusOK, code)
	var deleted map[string]handler.StatsView
	decode(t, body, &deleted)
	assert.Equal(t, handler.StatsView{RatingCount: 1, RatingAverage: 2.0}, deleted["stats"])

	code, body = api.call(http.MethodGet, "/api/v1/businesses/"+cafe.ID.String(), "", nil)
	require.Equal(t, http.StatusOK, code)
	var stored handler.BusinessView
	decode(t, body, &stored)
	assert.Equal(t, 1, stored.RatingCount)
	assert.Equal(t, 2.0, stored.RatingAverage)

	code, body = api.call(http.MethodGet, "/api/v1/businesses/"+cafe.ID.String()+"/ratings", "", nil)
	require.Equal(t, http.StatusOK, code)
	var ratings []handler.RatingView
	decode(t, body, &ratings)
	require.Len(t, ratings, 1)
	assert.Equal(t, carlosRating.Rating.ID, ratings[0].ID)
}

func TestAPI_ExploreIgnoresCaseAndAccents(t *testing.T) {
	api := newTestAPI(t)
	owner := api.signUp("ana@example.com", "Ana", "1155550001")

	panaderia := api.createBusiness(owner, "Panadería Doña Ñeca")
	api.createBusiness(owner, "Verdulería Central")

	for _, term := range []string{"panaderia", "PANADERÍA", "dona neca"} {
		code, body := api.call(http.MethodGet, "/api/v1/businesses?name="+url.QueryEscape(term), "", nil)
		require.Equal(t, http.StatusOK, code)

		var found []handler.BusinessView
		decode(t, body, &found)
		require.Len(t, found, 1, term)
		assert.Equal(t, panaderia.ID, found[0].ID)
	}

	code, body := api.call(http.MethodGet, "/api/v1/businesses?category=todas&sort=alfabetico", "", nil)
	require.Equal(t, http.StatusOK, code)
	var all []handler.BusinessView
	decode(t, body, &all)
	require.Len(t, all, 2)
	assert.Equal(t, "Panadería Doña Ñeca", all[0].Name)

	code, body = api.call(http.MethodGet, "/api/v1/businesses?category=Turismo", "", nil)
	require.Equal(t, http.StatusOK, code)
	var none []handler.BusinessView
	decode(t, body, &none)
	assert.Empty(t, none)

	code, body = api.call(http.MethodGet, "/api/v1/businesses?category=Joyas", "", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "INVALID_CATEGORY", body.Error.Code)
}

func TestAPI_SoftDeleteCascade(t *testing.T) {
	api := newTestAPI(t)
	owner := api.signUp("ana@example.com", "Ana", "1155550001")
	other := api.signUp("bea@example.com", "Beatriz", "1155550002")
	business := api.createBusiness(owner, "Café X")
	businessPath := "/api/v1/businesses/" + business.ID.String()

	code, body := api.call(http.MethodPost, "/api/v1/offerings", owner, map[string]any{
		"businessId": business.ID,
		"name":       "Medialunas",
		"kind":       "producto",
	})
	require.Equal(t, http.StatusCreated, code)
	var offering handler.OfferingView
	decode(t, body, &offering)

	t.Run("foreign owner sees not found", func(t *testing.T) {
		code, body := api.call(http.MethodDelete, businessPath, other, nil)
		assert.Equal(t, http.StatusNotFound, code)
		assert.Equal(t, "RESOURCE_NOT_FOUND", body.Error.Code)
	})

	code, _ = api.call(http.MethodDelete, businessPath, owner, nil)
	require.Equal(t, http.StatusNoContent, code)

	code, _ = api.call(http.MethodGet, "/api/v1/offerings/"+offering.ID.String(), "", nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = api.call(http.MethodGet, businessPath+"/offerings", "", nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, body = api.call(http.MethodGet, "/api/v1/businesses/mine", owner, nil)
	require.Equal(t, http.StatusOK, code)
	var mine []handler.BusinessView
	decode(t, body, &mine)
	assert.Empty(t, mine)

	code, _ = api.call(http.MethodDelete, businessPath, owner, nil)
	assert.Equal(t, http.StatusNotFound, code, "second delete")
}

func TestAPI_RejectsBlankNamesAndMiscasedKinds(t *testing.T) {
	api := newTestAPI(t)
	owner := api.signUp("olga@example.com", "Olga", "1155550010")
	business := api.createBusiness(owner, "Panadería Olga")

	code, body := api.call(http.MethodPost, "/api/v1/businesses", owner, map[string]string{
		"name":     "   ",
		"category": "Comidas y Bebidas",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.Contains(t, body.Error.Details, "name (notblank)")

	code, body = api.call(http.MethodPut, "/api/v1/businesses/"+business.ID.String(), owner, map[string]string{
		"name":     "\t",
		"category": "Comidas y Bebidas",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, body.Error.Details, "name (notblank)")

	code, body = api.call(http.MethodPost, "/api/v1/offerings", owner, map[string]any{
		"businessId": business.ID,
		"name":       " ",
		"kind":       "producto",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, body.Error.Details, "name (notblank)")

	for _, kind := range []string{"PRODUCT", "Servicio"} {
		code, body = api.call(http.MethodPost, "/api/v1/offerings", owner, map[string]any{
			"businessId": business.ID,
			"name":       "Medialunas",
			"kind":       kind,
		})
		assert.Equal(t, http.StatusBadRequest, code, kind)
		assert.Equal(t, "INVALID_OFFERING_KIND", body.Error.Code, kind)
	}
}

func TestAPI_Authentication(t *testing.T) {
	api := newTestAPI(t)
	token := api.signUp("ana@example.com", "Ana", "1155550001")

	t.Run("missing token", func(t *testing.T) {
		code, body := api.call(http.MethodGet, "/api/v1/users/me", "", nil)
		assert.Equal(t, http.StatusUnauthorized, code)
		assert.Equal(t, "TOKEN_MISSING", body.Error.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		code, body := api.call(http.MethodGet, "/api/v1/users/me", "not-a-jwt", nil)
		assert.Equal(t, http.StatusUnauthorized, code)
		assert.Equal(t, "TOKEN_MALFORMED", body.Error.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		issued := time.Now().Add(-48 * time.Hour)
		claims := &service.Claims{
			UserID: uuid.New(),
			Email:  "ana@example.com",
			RegisteredClaims: jwt.RegisteredClaims{
				ID:        uuid.NewString(),
				IssuedAt:  jwt.NewNumericDate(issued),
				ExpiresAt: jwt.NewNumericDate(issued.Add(24 * time.Hour)),
			},
		}
		expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)

		code, body := api.call(http.MethodGet, "/api/v1/users/me", expired, nil)
		assert.Equal(t, http.StatusUnauthorized, code)
		assert.Equal(t, "TOKEN_EXPIRED", body.Error.Code)
	})

	t.Run("profile and verify", func(t *testing.T) {
		code, body := api.call(http.MethodGet, "/api/v1/users/me", token, nil)
		require.Equal(t, http.StatusOK, code)
		var me handler.UserView
		decode(t, body, &me)
		assert.Equal(t, "ana@example.com", me.Email)
		assert.Equal(t, "1992-06-15", me.BirthDate)

		code, body = api.call(http.MethodGet, "/api/v1/auth/verify", token, nil)
		require.Equal(t, http.StatusOK, code)
		var identity handler.IdentityView
		decode(t, body, &identity)
		assert.Equal(t, me.ID, identity.UserID)
	})

	t.Run("register validation reports fields", func(t *testing.T) {
		code, body := api.call(http.MethodPost, "/api/v1/auth/register", "", map[string]string{
			"email":     "otra@example.com",
			"password":  "secreto1",
			"firstName": "R2D2",
			"lastName":  "Gómez",
			"birthDate": "2999-01-01",
			"gender":    "Mujer",
			"phone":     "1155550009",
		})
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
		assert.Contains(t, body.Error.Details, "firstName")
		assert.Contains(t, body.Error.Details, "birthDate")
	})

	t.Run("logout revokes the token", func(t *testing.T) {
		code, _ := api.call(http.MethodPost, "/api/v1/auth/logout", token, nil)
		require.Equal(t, http.StatusNoContent, code)

		code, body := api.call(http.MethodGet, "/api/v1/users/me", token, nil)
		assert.Equal(t, http.StatusUnauthorized, code)
		assert.Equal(t, "TOKEN_REVOKED", body.Error.Code)
	})
}

func TestAPI_BusinessImageAndQRCode(t *testing.T) {
	api := newTestAPI(t)
	owner := api.signUp("ana@example.com", "Ana", "1155550001")
	other := api.signUp("bea@example.com", "Beatriz", "1155550002")
	business := api.createBusiness(owner, "Café X")
	imagePath := "/api/v1/businesses/" + business.ID.String() + "/image"

	upload := func(token, filename string) (int, envelope) {
		var buf bytes.Buffer
		form := multipart.NewWriter(&buf)
		part, err := form.CreateFormFile("imagen", filename)
		require.NoError(t, err)
		_, err = part.Write([]byte("\x89PNG fake image"))
		require.NoError(t, err)
		require.NoError(t, form.Close())

		req := httptest.NewRequest(http.MethodPost, imagePath, &buf)
		req.Header.Set(echo.HeaderContentType, form.FormDataContentType())

		return api.send(req, token)
	}

	code, body := upload(owner, "logo.png")
	require.Equal(t, http.StatusOK, code)
	var updated handler.BusinessView
	decode(t, body, &updated)
	assert.True(t, strings.HasPrefix(updated.ImageURL, "http://cdn.test/businesses/"+business.ID.String()+"/"), updated.ImageURL)

	code, body = upload(owner, "logo.gif")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "INVALID_IMAGE", body.Error.Code)

	code, _ = upload(other, "logo.png")
	assert.Equal(t, http.StatusNotFound, code)

	rec := httptest.NewRecorder()
	api.e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/businesses/"+business.ID.String()+"/qr", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))

	code, body = api.call(http.MethodGet, "/api/v1/businesses/categories", "", nil)
	require.Equal(t, http.StatusOK, code)
	var categories []string
	decode(t, body, &categories)
	assert.Contains(t, categories, "Comidas y Bebidas")
}

func TestAPI_MetricsEndpoint(t *testing.T) {
	api := newTestAPI(t)

	rec := httptest.NewRecorder()
	api.e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	api.e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `http_requests_total{method="GET",route="/health",status="200"} 1`)
}
