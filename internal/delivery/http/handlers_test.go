package http_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	nethttp "net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	deliveryhttp "github.com/HelmerNylen/mkbsc/internal/delivery/http"
	"github.com/HelmerNylen/mkbsc/internal/delivery/ws"
	"github.com/HelmerNylen/mkbsc/internal/examples"
	"github.com/HelmerNylen/mkbsc/internal/serialize"
	"github.com/HelmerNylen/mkbsc/internal/store"
)

func newTestRouter(t *testing.T) (*store.Store, nethttp.Handler) {
	t.Helper()
	s := store.New()
	hub := ws.NewHub()
	return s, deliveryhttp.SetupRouter(s, hub, 16)
}

func wagonGameText(t *testing.T) []byte {
	t.Helper()
	g, err := examples.Wagon()
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, serialize.Write(&buf, g))
	return buf.Bytes()
}

func TestHealthEndpoint(t *testing.T) {
	_, router := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(nethttp.MethodGet, "/health", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, nethttp.StatusOK, rec.Code)
}

func TestCreateAndGetGame(t *testing.T) {
	_, router := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(nethttp.MethodPost, "/api/v1/games", bytes.NewReader(wagonGameText(t)))
	router.ServeHTTP(rec, req)
	require.Equal(t, nethttp.StatusCreated, rec.Code)

	var created deliveryhttp.CreateGameResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(nethttp.MethodGet, "/api/v1/games/"+created.ID, nil)
	router.ServeHTTP(rec, req)
	assert.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Alphabet:")
}

func TestCreateGame_RejectsMalformedBody(t *testing.T) {
	_, router := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(nethttp.MethodPost, "/api/v1/games", bytes.NewReader([]byte("not a game file")))
	router.ServeHTTP(rec, req)

	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
}

func TestGetGame_UnknownIDReturnsNotFound(t *testing.T) {
	_, router := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(nethttp.MethodGet, "/api/v1/games/does-not-exist", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, nethttp.StatusNotFound, rec.Code)
}

func TestRunKBSCAndFixpoint(t *testing.T) {
	_, router := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(nethttp.MethodPost, "/api/v1/games", bytes.NewReader(wagonGameText(t)))
	router.ServeHTTP(rec, req)
	require.Equal(t, nethttp.StatusCreated, rec.Code)
	var created deliveryhttp.CreateGameResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(nethttp.MethodPost, "/api/v1/games/"+created.ID+"/kbsc", nil)
	router.ServeHTTP(rec, req)
	require.Equal(t, nethttp.StatusOK, rec.Code)
	var kbscResp deliveryhttp.KBSCResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &kbscResp))
	assert.Equal(t, 8, kbscResp.States)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(nethttp.MethodPost, "/api/v1/games/"+created.ID+"/fixpoint", nil)
	router.ServeHTTP(rec, req)
	require.Equal(t, nethttp.StatusOK, rec.Code)
	var fpResp deliveryhttp.FixpointResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fpResp))
	assert.NotEmpty(t, fpResp.Sizes)
	assert.NotEmpty(t, fpResp.Status)
}

func TestGetDot_RespectsEpistemicQueryParam(t *testing.T) {
	_, router := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(nethttp.MethodPost, "/api/v1/games", bytes.NewReader(wagonGameText(t)))
	router.ServeHTTP(rec, req)
	var created deliveryhttp.CreateGameResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(nethttp.MethodGet, "/api/v1/games/"+created.ID+"/dot?epistemic=verbose", nil)
	router.ServeHTTP(rec, req)
	assert.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "digraph mkbsc")
}

func TestCORSPreflightIsShortCircuited(t *testing.T) {
	_, router := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(nethttp.MethodOptions, "/api/v1/games", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, nethttp.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
