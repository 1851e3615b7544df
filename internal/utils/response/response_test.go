package response_test

import (
	"encoding/json"
	stdErrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	appErrors "github.com/discool/storefront/internal/errors"
	"github.com/discool/storefront/internal/utils/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, recorder *httptest.ResponseRecorder) response.APIResponse {
	t.Helper()

	var resp response.APIResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))

	return resp
}

func TestError(t *testing.T) {
	t.Run("Success - AppError Rendered With Details And Meta", func(t *testing.T) {
		// Arrange
		recorder := httptest.NewRecorder()
		err := appErrors.BelowMinimumError("50.00").WithDetail("subtotal: 40.00")

		// Act
		response.Error(recorder, err)

		// Assert
		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
		assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

		resp := decode(t, recorder)
		assert.False(t, resp.Success)
		require.NotNil(t, resp.Error)
		assert.Equal(t, appErrors.ErrCodeBelowMinimum, resp.Error.Code)
		assert.Equal(t, []string{"subtotal: 40.00"}, resp.Error.Details)
		assert.Equal(t, "50.00", resp.Error.Meta["threshold"])
	})

	t.Run("Success - Unknown Error Hidden Behind Generic Message", func(t *testing.T) {
		// Arrange
		recorder := httptest.NewRecorder()

		// Act
		response.Error(recorder, stdErrors.New("pq: relation \"coupons\" does not exist"))

		// Assert
		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		resp := decode(t, recorder)
		assert.Equal(t, appErrors.ErrCodeInternal, resp.Error.Code)
		assert.Equal(t, appErrors.GenericMessage, resp.Error.Message)
	})
}

func TestSuccess(t *testing.T) {
	// Arrange
	recorder := httptest.NewRecorder()

	// Act
	response.Success(recorder, http.StatusCreated, map[string]string{"order_id": "42"})

	// Assert
	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.JSONEq(t, `{"success":true,"data":{"order_id":"42"}}`, recorder.Body.String())
}
