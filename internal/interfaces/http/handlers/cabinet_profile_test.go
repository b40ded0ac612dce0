// internal/interfaces/http/handlers/cabinet_profile_test.go
package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/y-store/cabinet-backend/internal/domain/user"
)

type stubProfileService struct {
	updated *user.User
	err     error

	gotUserID  string
	gotRequest *user.UpdateProfileRequest
}

func (s *stubProfileService) UpdateProfile(userID string, req *user.UpdateProfileRequest) (*user.User, error) {
	s.gotUserID = userID
	s.gotRequest = req
	if s.err != nil {
		return nil, s.err
	}
	return s.updated, nil
}

func newProfileTestRouter(profiles ProfileService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewCabinetProfileHandler(profiles)

	router := gin.New()
	group := router.Group("/v2/cabinet", injectAccount("user-1"))
	group.GET("/profile", handler.GetProfile)
	group.PUT("/profile", handler.UpdateProfile)

	return router
}

func TestGetProfile_ReturnsContextAccount(t *testing.T) {
	router := newProfileTestRouter(&stubProfileService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v2/cabinet/profile", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "user-1", payload.ID)
	assert.Equal(t, "buyer@example.com", payload.Email)
}

func TestUpdateProfile_PassesParsedFields(t *testing.T) {
	stub := &stubProfileService{
		updated: &user.User{ID: "user-1", City: "Lviv"},
	}
	router := newProfileTestRouter(stub)

	body := strings.NewReader(`{"city":"Lviv","unknown_field":"ignored"}`)
	req := httptest.NewRequest(http.MethodPut, "/v2/cabinet/profile", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-1", stub.gotUserID)
	require.NotNil(t, stub.gotRequest)
	require.NotNil(t, stub.gotRequest.City)
	assert.Equal(t, "Lviv", *stub.gotRequest.City)
	assert.Nil(t, stub.gotRequest.FullName)

	var payload struct {
		City string `json:"city"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "Lviv", payload.City)
}

func TestUpdateProfile_RejectsMalformedBody(t *testing.T) {
	router := newProfileTestRouter(&stubProfileService{})

	req := httptest.NewRequest(http.MethodPut, "/v2/cabinet/profile", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateProfile_AccountGone(t *testing.T) {
	stub := &stubProfileService{err: user.ErrUserNotFound}
	router := newProfileTestRouter(stub)

	req := httptest.NewRequest(http.MethodPut, "/v2/cabinet/profile", strings.NewReader(`{"city":"Odesa"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
