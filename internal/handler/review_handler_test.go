package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/reuben-idan/alx-listing-app-04/internal/handler"
	"github.com/reuben-idan/alx-listing-app-04/internal/model"
	"github.com/reuben-idan/alx-listing-app-04/internal/repository"
	"github.com/reuben-idan/alx-listing-app-04/internal/service"
)

type fakeReviewStore struct {
	reviews   []model.Review
	findErr   error
	insertErr error
	clock     time.Time
}

func (f *fakeReviewStore) FindByProperty(_ context.Context, propertyID string) ([]model.Review, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	out := []model.Review{}
	for _, r := range f.reviews {
		if r.PropertyID == propertyID {
			out = append(out, r)
		}
	}
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].CreatedAt.After(out[i].CreatedAt) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}

func (f *fakeReviewStore) FindByPropertyAndUser(_ context.Context, propertyID, userID string) (*model.Review, error) {
	for i, r := range f.reviews {
		if r.PropertyID == propertyID && r.UserID == userID {
			return &f.reviews[i], nil
		}
	}
	return nil, nil
}

func (f *fakeReviewStore) Insert(_ context.Context, review *model.Review) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	review.ID = primitive.NewObjectID()
	if f.clock.IsZero() {
		f.clock = time.Now().UTC().Truncate(time.Millisecond)
	} else {
		f.clock = f.clock.Add(time.Second)
	}
	review.CreatedAt = f.clock
	review.UpdatedAt = f.clock
	f.reviews = append(f.reviews, *review)
	return nil
}

func setupRouter(store service.ReviewStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler.NewReviewHandler(service.NewReviewService(store)).RegisterRoutes(r)
	return r
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, model.ReviewAPIResponse) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var envelope model.ReviewAPIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope), "every response must be an envelope: %s", w.Body.String())
	return w, envelope
}

func validBody() map[string]interface{} {
	return map[string]interface{}{
		"userId":   "u1",
		"userName": "Ann",
		"rating":   5,
		"comment":  "Great stay",
	}
}

func TestListReviewsEmpty(t *testing.T) {
	router := setupRouter(&fakeReviewStore{})

	w, envelope := doJSON(t, router, http.MethodGet, "/api/properties/p1/reviews", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, envelope.Success)
	assert.NotNil(t, envelope.Data)
	assert.Empty(t, envelope.Data)
	assert.Contains(t, w.Body.String(), `"data":[]`)
}

func TestListReviewsSortedDescending(t *testing.T) {
	store := &fakeReviewStore{}
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	store.reviews = []model.Review{
		{ID: primitive.NewObjectID(), PropertyID: "p1", UserID: "u1", UserName: "A", Rating: 4, Comment: "ok", CreatedAt: base, UpdatedAt: base},
		{ID: primitive.NewObjectID(), PropertyID: "p1", UserID: "u2", UserName: "B", Rating: 5, Comment: "great", CreatedAt: base.Add(time.Hour), UpdatedAt: base.Add(time.Hour)},
	}
	router := setupRouter(store)

	w, envelope := doJSON(t, router, http.MethodGet, "/api/properties/p1/reviews", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, envelope.Data, 2)
	assert.True(t, envelope.Data[0].CreatedAt.After(envelope.Data[1].CreatedAt))
}

func TestListReviewsStoreFault(t *testing.T) {
	router := setupRouter(&fakeReviewStore{findErr: errors.New("no reachable servers")})

	w, envelope := doJSON(t, router, http.MethodGet, "/api/properties/p1/reviews", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.False(t, envelope.Success)
	assert.NotNil(t, envelope.Data)
	assert.Equal(t, "Failed to fetch reviews", envelope.Message)
}

func TestCreateReview(t *testing.T) {
	store := &fakeReviewStore{}
	router := setupRouter(store)

	w, envelope := doJSON(t, router, http.MethodPost, "/api/properties/p1/reviews", validBody())
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, envelope.Success)
	assert.Equal(t, "Review submitted successfully", envelope.Message)
	require.NotEmpty(t, envelope.Data)
	assert.Equal(t, float64(5), envelope.Data[0].Rating)
	assert.Equal(t, "Great stay", envelope.Data[0].Comment)
	assert.Equal(t, "p1", envelope.Data[0].PropertyID)

	// a subsequent list returns the identical set
	_, listed := doJSON(t, router, http.MethodGet, "/api/properties/p1/reviews", nil)
	require.Len(t, listed.Data, 1)
	assert.Equal(t, envelope.Data[0].ID, listed.Data[0].ID)
}

func TestCreateReviewDuplicate(t *testing.T) {
	store := &fakeReviewStore{}
	router := setupRouter(store)

	w, _ := doJSON(t, router, http.MethodPost, "/api/properties/p1/reviews", validBody())
	require.Equal(t, http.StatusCreated, w.Code)

	w, envelope := doJSON(t, router, http.MethodPost, "/api/properties/p1/reviews", validBody())
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, envelope.Success)
	assert.Contains(t, envelope.Message, "already reviewed")
	assert.Len(t, store.reviews, 1)
}

func TestCreateReviewLostRaceMapsToDuplicate(t *testing.T) {
	// The pre-check finds nothing but the unique index rejects the write.
	router := setupRouter(&fakeReviewStore{insertErr: repository.ErrAlreadyReviewed})

	w, envelope := doJSON(t, router, http.MethodPost, "/api/properties/p1/reviews", validBody())
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, envelope.Message, "already reviewed")
}

func TestCreateReviewMissingFields(t *testing.T) {
	for _, field := range []string{"userId", "userName", "rating", "comment"} {
		t.Run(field, func(t *testing.T) {
			store := &fakeReviewStore{}
			router := setupRouter(store)

			body := validBody()
			delete(body, field)

			w, envelope := doJSON(t, router, http.MethodPost, "/api/properties/p1/reviews", body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.False(t, envelope.Success)
			assert.NotEmpty(t, envelope.Message)
			assert.Empty(t, store.reviews, "no store mutation on validation failure")
		})
	}
}

func TestCreateReviewOptionalImage(t *testing.T) {
	store := &fakeReviewStore{}
	router := setupRouter(store)

	body := validBody()
	body["userImage"] = "https://example.com/ann.png"

	w, envelope := doJSON(t, router, http.MethodPost, "/api/properties/p1/reviews", body)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "https://example.com/ann.png", envelope.Data[0].UserImage)
}

func TestCreateReviewSchemaValidation(t *testing.T) {
	store := &fakeReviewStore{insertErr: &repository.SchemaError{Messages: []string{"Document failed validation"}}}
	router := setupRouter(store)

	body := validBody()
	body["rating"] = 9

	w, envelope := doJSON(t, router, http.MethodPost, "/api/properties/p1/reviews", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, envelope.Message, "Validation error")
	assert.Contains(t, envelope.Message, "Document failed validation")
}

func TestUnsupportedMethod(t *testing.T) {
	router := setupRouter(&fakeReviewStore{})

	for _, method := range []string{http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodTrace, http.MethodConnect} {
		t.Run(method, func(t *testing.T) {
			w, envelope := doJSON(t, router, method, "/api/properties/p1/reviews", validBody())
			assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
			assert.Equal(t, "GET, POST", w.Header().Get("Allow"))
			assert.False(t, envelope.Success)
			assert.NotNil(t, envelope.Data)
			assert.Contains(t, envelope.Message, method)
		})
	}
}
