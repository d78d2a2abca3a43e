package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/scamguard/blacklist-api/internal/handlers"
	"github.com/scamguard/blacklist-api/internal/models"
	"github.com/scamguard/blacklist-api/internal/utils"
)

// MockUserStore is a mock implementation of the blacklisted user store
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(ctx context.Context, record *models.BlacklistedUser) (*models.BlacklistedUser, error) {
	args := m.Called(ctx, record)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BlacklistedUser), args.Error(1)
}

func (m *MockUserStore) GetByKey(ctx context.Context, key int64) (*models.BlacklistedUser, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BlacklistedUser), args.Error(1)
}

func (m *MockUserStore) GetAll(ctx context.Context) ([]*models.BlacklistedUser, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.BlacklistedUser), args.Error(1)
}

func (m *MockUserStore) Delete(ctx context.Context, key int64) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockUserStore) SearchByUsername(ctx context.Context, fragment string) ([]*models.BlacklistedUser, error) {
	args := m.Called(ctx, fragment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.BlacklistedUser), args.Error(1)
}

func (m *MockUserStore) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// envelope mirrors the standard response format for assertions
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	return env
}

// withURLParam attaches a chi route parameter to the request context,
// reusing the route context when one is already present.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		rctx = chi.NewRouteContext()
	}
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestListHandlerList(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockStore := new(MockUserStore)
		handler := handlers.NewBlacklistedUserHandler(mockStore)

		expected := []*models.BlacklistedUser{
			{UserID: 1, Username: "scammer42", Reason: "spam", AddedBy: "mod_alice", AddedAt: time.Now()},
		}
		mockStore.On("GetAll", mock.Anything).Return(expected, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/blacklisted-users", nil)
		rr := httptest.NewRecorder()

		// Act
		handler.List(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		env := decodeEnvelope(t, rr)
		assert.True(t, env.Success)

		var users []*models.BlacklistedUser
		require.NoError(t, json.Unmarshal(env.Data, &users))
		require.Len(t, users, 1)
		assert.Equal(t, "scammer42", users[0].Username)
		mockStore.AssertExpectations(t)
	})

	t.Run("Store Error", func(t *testing.T) {
		// Arrange
		mockStore := new(MockUserStore)
		handler := handlers.NewBlacklistedUserHandler(mockStore)

		mockStore.On("GetAll", mock.Anything).Return(nil, errors.New("database error")).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/blacklisted-users", nil)
		rr := httptest.NewRecorder()

		// Act
		handler.List(rr, req)

		// Assert
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		env := decodeEnvelope(t, rr)
		assert.False(t, env.Success)
		require.NotNil(t, env.Error)
		assert.Equal(t, "internal_error", env.Error.Code)
		mockStore.AssertExpectations(t)
	})

	t.Run("Store Unavailable", func(t *testing.T) {
		// Arrange
		mockStore := new(MockUserStore)
		handler := handlers.NewBlacklistedUserHandler(mockStore)

		mockStore.On("GetAll", mock.Anything).
			Return(nil, errors.New("dial tcp: connection refused")).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/blacklisted-users", nil)
		rr := httptest.NewRecorder()

		// Act
		handler.List(rr, req)

		// Assert
		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
		env := decodeEnvelope(t, rr)
		require.NotNil(t, env.Error)
		assert.Equal(t, "service_unavailable", env.Error.Code)
		mockStore.AssertExpectations(t)
	})
}

func TestListHandlerGet(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockStore := new(MockUserStore)
		handler := handlers.NewBlacklistedUserHandler(mockStore)

		expected := &models.BlacklistedUser{UserID: 123, Username: "scammer42"}
		mockStore.On("GetByKey", mock.Anything, int64(123)).Return(expected, nil).Once()

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/blacklisted-users/123", nil), "id", "123")
		rr := httptest.NewRecorder()

		// Act
		handler.Get(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		env := decodeEnvelope(t, rr)
		var user models.BlacklistedUser
		require.NoError(t, json.Unmarshal(env.Data, &user))
		assert.Equal(t, int64(123), user.UserID)
		mockStore.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		// Arrange
		mockStore := new(MockUserStore)
		handler := handlers.NewBlacklistedUserHandler(mockStore)

		mockStore.On("GetByKey", mock.Anything, int64(42)).
			Return(nil, utils.NewNotFoundError("BlacklistedUser", int64(42))).Once()

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/blacklisted-users/42", nil), "id", "42")
		rr := httptest.NewRecorder()

		// Act
		handler.Get(rr, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)
		env := decodeEnvelope(t, rr)
		require.NotNil(t, env.Error)
		assert.Equal(t, "not_found", env.Error.Code)
		mockStore.AssertExpectations(t)
	})

	t.Run("Invalid ID", func(t *testing.T) {
		// Arrange
		mockStore := new(MockUserStore)
		handler := handlers.NewBlacklistedUserHandler(mockStore)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/blacklisted-users/abc", nil), "id", "abc")
		rr := httptest.NewRecorder()

		// Act
		handler.Get(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		env := decodeEnvelope(t, rr)
		require.NotNil(t, env.Error)
		assert.Equal(t, "validation_error", env.Error.Code)
		mockStore.AssertNotCalled(t, "GetByKey")
	})
}

func TestListHandlerCreate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockStore := new(MockUserStore)
		handler := handlers.NewBlacklistedUserHandler(mockStore)

		now := time.Now()
		mockStore.On("Create", mock.Anything, mock.MatchedBy(func(u *models.BlacklistedUser) bool {
			return u.UserID == 123 && u.Username == "scammer42"
		})).Return(&models.BlacklistedUser{
			UserID: 123, Username: "scammer42", Reason: "spam", AddedBy: "mod_alice", AddedAt: now,
		}, nil).Once()

		body := bytes.NewBufferString(`{"user_id":123,"username":"scammer42","reason":"spam","added_by":"mod_alice"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/blacklisted-users", body)
		rr := httptest.NewRecorder()

		// Act
		handler.Create(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)
		env := decodeEnvelope(t, rr)
		assert.True(t, env.Success)
		assert.Contains(t, string(env.Data), `"user_id":123`)
		assert.Contains(t, string(env.Data), `"message":"blacklisted user added"`)
		mockStore.AssertExpectations(t)
	})

	t.Run("Missing Fields", func(t *testing.T) {
		// Arrange
		mockStore := new(MockUserStore)
		handler := handlers.NewBlacklistedUserHandler(mockStore)

		body := bytes.NewBufferString(`{"user_id":123}`)
		req := httptest.NewRequest(http.MethodPost, "/api/blacklisted-users", body)
		rr := httptest.NewRecorder()

		// Act
		handler.Create(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		env := decodeEnvelope(t, rr)
		require.NotNil(t, env.Error)
		mockStore.AssertNotCalled(t, "Create")
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		// Arrange
		mockStore := new(MockUserStore)
		handler := handlers.NewBlacklistedUserHandler(mockStore)

		body := bytes.NewBufferString(`{"user_id":`)
		req := httptest.NewRequest(http.MethodPost, "/api/blacklisted-users", body)
		rr := httptest.NewRecorder()

		// Act
		handler.Create(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockStore.AssertNotCalled(t, "Create")
	})

	t.Run("Duplicate Key", func(t *testing.T) {
		// Arrange
		mockStore := new(MockUserStore)
		handler := handlers.NewBlacklistedUserHandler(mockStore)

		mockStore.On("Create", mock.Anything, mock.Anything).
			Return(nil, utils.NewDuplicateError("BlacklistedUser", "user_id", int64(123))).Once()

		body := bytes.NewBufferString(`{"user_id":123,"username":"scammer42","reason":"spam","added_by":"mod_alice"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/blacklisted-users", body)
		rr := httptest.NewRecorder()

		// Act
		handler.Create(rr, req)

		// Assert
		assert.Equal(t, http.StatusConflict, rr.Code)
		env := decodeEnvelope(t, rr)
		require.NotNil(t, env.Error)
		assert.Equal(t, "conflict", env.Error.Code)
		mockStore.AssertExpectations(t)
	})
}

func TestListHandlerDelete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockStore := new(MockUserStore)
		handler := handlers.NewBlacklistedUserHandler(mockStore)

		mockStore.On("Delete", mock.Anything, int64(123)).Return(nil).Once()

		req := withURLParam(httptest.NewRequest(http.MethodDelete, "/api/blacklisted-users/123", nil), "id", "123")
		rr := httptest.NewRecorder()

		// Act
		handler.Delete(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		env := decodeEnvelope(t, rr)
		assert.True(t, env.Success)
		mockStore.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		// Arrange
		mockStore := new(MockUserStore)
		handler := handlers.NewBlacklistedUserHandler(mockStore)

		mockStore.On("Delete", mock.Anything, int64(42)).
			Return(utils.NewNotFoundError("BlacklistedUser", int64(42))).Once()

		req := withURLParam(httptest.NewRequest(http.MethodDelete, "/api/blacklisted-users/42", nil), "id", "42")
		rr := httptest.NewRecorder()

		// Act
		handler.Delete(rr, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockStore.AssertExpectations(t)
	})
}
