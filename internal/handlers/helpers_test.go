package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/field-service-api/internal/constants"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newCompanyContext builds a request context as RequireAuth and
// RequireCompanyAccess would leave it.
func newCompanyContext(t *testing.T, method, url string, body any, userID, companyID string, params ...gin.Param) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var req *http.Request
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, url, bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = params
	c.Set(constants.ContextKeyUserID, userID)
	c.Set(constants.ContextKeyCompanyID, companyID)

	return c, w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}
