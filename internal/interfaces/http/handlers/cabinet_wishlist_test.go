// internal/interfaces/http/handlers/cabinet_wishlist_test.go
package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/y-store/cabinet-backend/internal/domain/product"
	"github.com/y-store/cabinet-backend/internal/domain/wishlist"
)

type stubWishlistService struct {
	response *wishlist.WishlistResponse
	err      error

	gotUserID    string
	gotProductID string
	addCalls     int
	removeCalls  int
}

func (s *stubWishlistService) GetWishlist(userID string) (*wishlist.WishlistResponse, error) {
	s.gotUserID = userID
	if s.err != nil {
		return nil, s.err
	}
	return s.response, nil
}

func (s *stubWishlistService) Add(userID, productID string) error {
	s.gotUserID = userID
	s.gotProductID = productID
	s.addCalls++
	return s.err
}

func (s *stubWishlistService) Remove(userID, productID string) error {
	s.gotUserID = userID
	s.gotProductID = productID
	s.removeCalls++
	return s.err
}

func newWishlistTestRouter(wishlists WishlistService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewCabinetWishlistHandler(wishlists)

	router := gin.New()
	group := router.Group("/v2/cabinet", injectAccount("user-1"))
	group.GET("/wishlist", handler.GetWishlist)
	group.POST("/wishlist/:product_id", handler.AddToWishlist)
	group.DELETE("/wishlist/:product_id", handler.RemoveFromWishlist)

	return router
}

func TestGetWishlist_EmptyListIsNotNull(t *testing.T) {
	stub := &stubWishlistService{
		response: &wishlist.WishlistResponse{Items: []product.Product{}},
	}
	router := newWishlistTestRouter(stub)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v2/cabinet/wishlist", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-1", stub.gotUserID)
	assert.JSONEq(t, `{"items":[]}`, rec.Body.String())
}

func TestGetWishlist_ReturnsProducts(t *testing.T) {
	stub := &stubWishlistService{
		response: &wishlist.WishlistResponse{
			Items: []product.Product{
				{ID: "p1", Title: "Phone"},
				{ID: "p2", Title: "Case"},
			},
		},
	}
	router := newWishlistTestRouter(stub)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v2/cabinet/wishlist", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Items []struct {
			ID string `json:"id"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Len(t, payload.Items, 2)
	assert.Equal(t, "p1", payload.Items[0].ID)
}

func TestAddToWishlist(t *testing.T) {
	stub := &stubWishlistService{}
	router := newWishlistTestRouter(stub)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v2/cabinet/wishlist/p7", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "p7", stub.gotProductID)
	assert.Equal(t, 1, stub.addCalls)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "Added to wishlist", payload["message"])
}

func TestRemoveFromWishlist(t *testing.T) {
	stub := &stubWishlistService{}
	router := newWishlistTestRouter(stub)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/v2/cabinet/wishlist/p7", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "p7", stub.gotProductID)
	assert.Equal(t, 1, stub.removeCalls)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "Removed from wishlist", payload["message"])
}
