package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"origo-server/internal/handler"
	"origo-server/internal/mocks"
	"origo-server/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupItemRouter(t *testing.T) (*gin.Engine, *mocks.MockItemRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mockItems := mocks.NewMockItemRepository(t)
	router := gin.New()
	h := handler.NewItemHandler(mockItems, zap.NewNop())
	h.RegisterRoutes(router)

	return router, mockItems
}

func TestItemEndpoints(t *testing.T) {
	now := time.Now().UTC()

	t.Run("Create returns the stored item", func(t *testing.T) {
		router, mockItems := setupItemRouter(t)

		mockItems.On("Create", mock.Anything, "buy milk").
			Return(&models.Item{ID: 1, Text: "buy milk", CreatedAt: now, UpdatedAt: now}, nil).Once()

		w := performRequest(router, http.MethodPost, "/api/items", bytes.NewBufferString(`{"text":"buy milk"}`))

		assert.Equal(t, http.StatusCreated, w.Code)

		var item models.Item
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
		assert.Equal(t, int64(1), item.ID)
		assert.Equal(t, "buy milk", item.Text)
	})

	t.Run("Create without text is a bad request", func(t *testing.T) {
		router, mockItems := setupItemRouter(t)

		w := performRequest(router, http.MethodPost, "/api/items", bytes.NewBufferString(`{}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockItems.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Get with non-numeric id is a bad request", func(t *testing.T) {
		router, mockItems := setupItemRouter(t)

		w := performRequest(router, http.MethodGet, "/api/items/abc", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockItems.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("Get unknown item returns 404", func(t *testing.T) {
		router, mockItems := setupItemRouter(t)

		mockItems.On("GetByID", mock.Anything, int64(42)).Return(nil, models.ErrNotFound).Once()

		w := performRequest(router, http.MethodGet, "/api/items/42", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Update returns the new text", func(t *testing.T) {
		router, mockItems := setupItemRouter(t)

		mockItems.On("Update", mock.Anything, int64(1), "buy bread").
			Return(&models.Item{ID: 1, Text: "buy bread", CreatedAt: now, UpdatedAt: now}, nil).Once()

		w := performRequest(router, http.MethodPut, "/api/items/1", bytes.NewBufferString(`{"text":"buy bread"}`))

		assert.Equal(t, http.StatusOK, w.Code)

		var item models.Item
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
		assert.Equal(t, "buy bread", item.Text)
	})

	t.Run("Delete returns no content", func(t *testing.T) {
		router, mockItems := setupItemRouter(t)

		mockItems.On("Delete", mock.Anything, int64(1)).Return(nil).Once()

		w := performRequest(router, http.MethodDelete, "/api/items/1", nil)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Empty list serializes as an empty array", func(t *testing.T) {
		router, mockItems := setupItemRouter(t)

		mockItems.On("List", mock.Anything).Return(nil, nil).Once()

		w := performRequest(router, http.MethodGet, "/api/items", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"items":[]}`, w.Body.String())
	})
}
