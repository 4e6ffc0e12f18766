package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aussiebroadwan/freelancehub/pkg/accountsdk"
	"github.com/stretchr/testify/require"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func healthOf(t *testing.T, rec *httptest.ResponseRecorder) accountsdk.HealthResponse {
	t.Helper()
	var h accountsdk.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &h))
	return h
}

func TestLivez(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/livez", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	h := healthOf(t, rec)
	require.Equal(t, "ok", h.Status)
	require.Equal(t, "test", h.Version)
	require.Nil(t, h.Checks)
}

func TestReadyz(t *testing.T) {
	ok := pingFunc(func(context.Context) error { return nil })
	down := pingFunc(func(context.Context) error { return errors.New("connection refused") })

	tests := []struct {
		name       string
		db, ledger Pinger
		wantCode   int
		wantLedger string
	}{
		{"database only", ok, nil, http.StatusOK, ""},
		{"with ledger", ok, ok, http.StatusOK, "ok"},
		{"database down", down, nil, http.StatusServiceUnavailable, ""},
		{"ledger down", ok, down, http.StatusServiceUnavailable, "error: connection refused"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			ReadyzHandler(time.Now(), "v1", tc.db, tc.ledger).
				ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

			require.Equal(t, tc.wantCode, rec.Code)
			h := healthOf(t, rec)
			require.NotNil(t, h.Checks)
			require.Equal(t, tc.wantLedger, h.Checks.ResetLedger)
			if tc.wantCode == http.StatusOK {
				require.Equal(t, "ok", h.Status)
			} else {
				require.Equal(t, "degraded", h.Status)
			}
		})
	}
}

func TestFormBool(t *testing.T) {
	for _, v := range []string{"y", "on", "true", "1", "yes"} {
		require.True(t, formBool(v), v)
	}
	for _, v := range []string{"", "0", "false", "off", "n", "no", " False "} {
		require.False(t, formBool(v), v)
	}
}
