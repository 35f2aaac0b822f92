package handlers_test

import (
	"net/http"
	"testing"

	"storerate_backend/internal/models"
	"storerate_backend/internal/services/dto"
	"storerate_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListStores_AnyAuthenticatedRole(t *testing.T) {
	r := newTestRouter(t, testServices{
		store: &stubStoreService{
			listStoresForUser: func(userID string, query *dto.ListQuery) (*dto.ListResponse, error) {
				return &dto.ListResponse{
					Data:       []dto.UserStoreResponse{},
					Pagination: dto.NewPagination(0, 1, 10),
				}, nil
			},
		},
	})

	for _, role := range []models.UserRole{models.UserRoleUser, models.UserRoleOwner, models.UserRoleAdmin} {
		w := performJSON(r, http.MethodGet, "/stores", bearerTokenFor(t, role), "")
		assert.Equal(t, http.StatusOK, w.Code, "role %s", role)
	}

	w := performJSON(r, http.MethodGet, "/stores", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetStore_RendersNullAggregates(t *testing.T) {
	r := newTestRouter(t, testServices{
		store: &stubStoreService{
			getStoreForUser: func(userID, storeID string) (*dto.UserStoreResponse, error) {
				resp := dto.UserStoreResponse{StoreResponse: dto.StoreResponse{ID: storeID, Name: "Riverside Coffee and Vinyl"}}
				return &resp, nil
			},
		},
	})

	w := performJSON(r, http.MethodGet, "/stores/store-1", bearerTokenFor(t, models.UserRoleUser), "")

	assert.Equal(t, http.StatusOK, w.Code)
	// Нет оценок - null в обоих полях, не 0 и не пропуск
	assert.Contains(t, w.Body.String(), `"avgRating":null`)
	assert.Contains(t, w.Body.String(), `"myRating":null`)
}

func TestGetStore_NotFound(t *testing.T) {
	r := newTestRouter(t, testServices{
		store: &stubStoreService{
			getStoreForUser: func(userID, storeID string) (*dto.UserStoreResponse, error) {
				return nil, notFoundErr("Store not found")
			},
		},
	})

	w := performJSON(r, http.MethodGet, "/stores/missing", bearerTokenFor(t, models.UserRoleUser), "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Store not found"}`, w.Body.String())
}

// Оценивать магазины может только роль USER
func TestRateStore_UserOnly(t *testing.T) {
	r := newTestRouter(t, testServices{
		rating: &stubRatingService{
			rate: func(userID, storeID string, value int) (*dto.RateResponse, error) {
				avg := 4.0
				return &dto.RateResponse{
					Message:   "Rating saved successfully",
					Rating:    dto.RatingResponse{Value: value, UserID: userID, StoreID: storeID},
					AvgRating: &avg,
				}, nil
			},
		},
	})

	body := `{"value":4}`

	w := performJSON(r, http.MethodPost, "/stores/store-1/ratings", bearerTokenFor(t, models.UserRoleUser), body)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"Rating saved successfully"`)
	assert.Contains(t, w.Body.String(), `"avgRating":4`)

	w = performJSON(r, http.MethodPost, "/stores/store-1/ratings", bearerTokenFor(t, models.UserRoleAdmin), body)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = performJSON(r, http.MethodPost, "/stores/store-1/ratings", bearerTokenFor(t, models.UserRoleOwner), body)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRateStore_ValueOutOfRange(t *testing.T) {
	r := newTestRouter(t, testServices{
		rating: &stubRatingService{
			rate: func(userID, storeID string, value int) (*dto.RateResponse, error) {
				return nil, apperrors.ValidationError("Rating value must be an integer between 1 and 5")
			},
		},
	})

	w := performJSON(r, http.MethodPost, "/stores/store-1/ratings", bearerTokenFor(t, models.UserRoleUser), `{"value":9}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Rating value must be an integer between 1 and 5"}`, w.Body.String())
}

func TestMyRatingEndpoint(t *testing.T) {
	r := newTestRouter(t, testServices{
		rating: &stubRatingService{
			myRating: func(userID, storeID string) (*dto.MyRatingResponse, error) {
				require.Equal(t, "store-1", storeID)
				return &dto.MyRatingResponse{
					StoreID: storeID,
					UserID:  userID,
					Rating:  dto.RatingResponse{Value: 3},
				}, nil
			},
		},
	})

	w := performJSON(r, http.MethodGet, "/stores/store-1/my-rating", bearerTokenFor(t, models.UserRoleUser), "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"value":3`)
}

func TestMyRatingEndpoint_NotFound(t *testing.T) {
	r := newTestRouter(t, testServices{
		rating: &stubRatingService{
			myRating: func(userID, storeID string) (*dto.MyRatingResponse, error) {
				return nil, notFoundErr("No rating found for this store by current user")
			},
		},
	})

	w := performJSON(r, http.MethodGet, "/stores/store-1/my-rating", bearerTokenFor(t, models.UserRoleUser), "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"No rating found for this store by current user"}`, w.Body.String())
}
