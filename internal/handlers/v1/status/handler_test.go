package status

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAPI(t *testing.T) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewHandler().Register(api)
	return api
}

func TestHTTP_Status(t *testing.T) {
	resp := newTestAPI(t).Get("/status")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body StatusResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body.Status)
}

func TestHTTP_Status_BadMethod(t *testing.T) {
	resp := newTestAPI(t).Post("/status")

	assert.Equal(t, http.StatusMethodNotAllowed, resp.Code)
}
