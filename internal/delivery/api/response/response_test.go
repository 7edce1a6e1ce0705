package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "usermgmt/internal/delivery/context"
	"usermgmt/internal/domain/entity"
	"usermgmt/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetRequestID(c, "req-123")

	return c, rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestUserView_NeverCarriesPasswordHash(t *testing.T) {
	user := entity.NewUser("Jane Doe", "jane@example.com", "$2a$10$secret")

	raw, err := json.Marshal(NewUserView(user))
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "secret")
	assert.NotContains(t, string(raw), "password")
	assert.NotContains(t, string(raw), "lastLogin")
	assert.Contains(t, string(raw), `"role":"user"`)
}

func TestError_DropsDetailsForAuthAndServerErrors(t *testing.T) {
	tests := []struct {
		status      int
		wantDetails bool
	}{
		{status: http.StatusBadRequest, wantDetails: true},
		{status: http.StatusNotFound, wantDetails: true},
		{status: http.StatusUnauthorized, wantDetails: false},
		{status: http.StatusForbidden, wantDetails: false},
		{status: http.StatusInternalServerError, wantDetails: false},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			c, rec := newContext()

			require.NoError(t, Error(c, tt.status, "CODE", "message", map[string]string{"field": "bad"}))

			body := decode(t, rec)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, "message", body["message"])
			errInfo := body["error"].(map[string]any)
			assert.Equal(t, "CODE", errInfo["code"])
			_, hasDetails := errInfo["details"]
			assert.Equal(t, tt.wantDetails, hasDetails)
			assert.Equal(t, "req-123", body["meta"].(map[string]any)["request_id"])
		})
	}
}

func TestList_AlwaysIncludesCount(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, List(c, NewTaskViews(nil), 0, nil))

	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(0), body["count"])
	assert.Equal(t, []any{}, body["data"])
	assert.NotContains(t, body, "pagination")
}

func TestNewPaginationView(t *testing.T) {
	view := NewPaginationView(usecase.Pagination{Next: &usecase.PageRef{Page: 2, Limit: 10}})

	require.NotNil(t, view.Next)
	assert.Equal(t, 2, view.Next.Page)
	assert.Nil(t, view.Prev)

	raw, err := json.Marshal(NewPaginationView(usecase.Pagination{}))
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(raw))
}
