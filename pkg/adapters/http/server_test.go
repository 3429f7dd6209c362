package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Beep206/CyberVPN-sub013/internal/engine"
	httpadapter "github.com/Beep206/CyberVPN-sub013/pkg/adapters/http"
	"github.com/Beep206/CyberVPN-sub013/pkg/adapters/memory"
	"github.com/Beep206/CyberVPN-sub013/pkg/deeplink"
	"github.com/Beep206/CyberVPN-sub013/pkg/domain"
	"github.com/Beep206/CyberVPN-sub013/pkg/ports"
)

func newTestHandler(store ports.PendingRouteStore) http.Handler {
	eng := engine.New(domain.DefaultPaths())
	return httpadapter.NewHandler(
		engine.NewEvaluator(eng, nil),
		deeplink.NewInterpreter(nil),
		store,
		nil,
	)
}

func postJSON(t *testing.T, handler http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestServer_Decide(t *testing.T) {
	handler := newTestHandler(nil)
	onboarded := true

	rec := postJSON(t, handler, "/decide", httpadapter.DecideRequest{
		Identity:   "unauthenticated",
		Onboarding: &onboarded,
		Path:       "/plans",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp httpadapter.DecideResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, domain.DecisionRedirect, resp.Decision.Kind)
	assert.Equal(t, "/login", resp.Decision.Target)
	assert.Equal(t, domain.RuleLoginGate, resp.Decision.Rule)
}

func TestServer_Decide_StagesDeepLink(t *testing.T) {
	handler := newTestHandler(nil)
	onboarded := true

	rec := postJSON(t, handler, "/decide", httpadapter.DecideRequest{
		Identity:   "unauthenticated",
		Onboarding: &onboarded,
		Path:       "/home",
		DeepLink:   "cybervpn://referral",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp httpadapter.DecideResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "/login", resp.Decision.Target)
	require.NotNil(t, resp.Staged, "the dry-run store should report the staged route")
	assert.Equal(t, "referral", resp.Staged.ID)
}

func TestServer_Decide_BadRequest(t *testing.T) {
	handler := newTestHandler(nil)

	req := httptest.NewRequest(http.MethodPost, "/decide", bytes.NewReader([]byte("{broken")))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postJSON(t, handler, "/decide", httpadapter.DecideRequest{Identity: "bogus"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_Resolve(t *testing.T) {
	handler := newTestHandler(nil)

	rec := postJSON(t, handler, "/resolve", httpadapter.ResolveRequest{URI: "cybervpn://promo/VPN10"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp httpadapter.ResolveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, domain.DeepLinkRoute, resp.Kind)
	require.NotNil(t, resp.Route)
	assert.Equal(t, "/plans?promo=VPN10", resp.Route.Path)
}

func TestServer_Routes(t *testing.T) {
	handler := newTestHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/routes", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp httpadapter.RoutesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, deeplink.TableVersion, resp.Version)
	assert.NotEmpty(t, resp.Routes)
}

func TestServer_Pending(t *testing.T) {
	store := memory.NewPendingStore()
	handler := newTestHandler(store)

	req := httptest.NewRequest(http.MethodPut, "/pending", bytes.NewReader([]byte(`{"id":"plans","path":"/plans"}`)))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = postJSON(t, handler, "/pending/consume", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp httpadapter.PendingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Route)
	assert.Equal(t, "/plans", resp.Route.Path)

	rec = postJSON(t, handler, "/pending/consume", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp = httpadapter.PendingResponse{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Nil(t, resp.Route, "consume clears the slot")
}

func TestServer_Pending_Disabled(t *testing.T) {
	handler := newTestHandler(nil)

	req := httptest.NewRequest(http.MethodPut, "/pending", bytes.NewReader([]byte(`{"path":"/plans"}`)))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_Healthz(t *testing.T) {
	handler := newTestHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
