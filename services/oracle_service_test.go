package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completionHandler(t *testing.T, calls *int32, answer func(attempt int32) string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(calls, 1)
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": answer(n)}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func newTestOracle(t *testing.T, srv *httptest.Server) *OracleService {
	t.Helper()
	t.Setenv("OPENAI_BASE_URL", srv.URL)
	t.Setenv("OPENAI_API_KEY", "test-key")
	return NewOracleService()
}

func TestOracleEstimateReturnsPositiveInteger(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(completionHandler(t, &calls, func(int32) string { return "1800" }))
	defer srv.Close()

	n, err := newTestOracle(t, srv).Estimate(context.Background(), "daily calorie intake")
	require.NoError(t, err)
	assert.Equal(t, 1800, n)
	assert.EqualValues(t, 1, calls)
}

func TestOracleEstimateIgnoresTrailingText(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(completionHandler(t, &calls, func(int32) string { return "45 minutes" }))
	defer srv.Close()

	n, err := newTestOracle(t, srv).Estimate(context.Background(), "daily exercise minutes")
	require.NoError(t, err)
	assert.Equal(t, 45, n)
}

func TestOracleEstimateExhaustsAfterThreeAttempts(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(completionHandler(t, &calls, func(int32) string {
		return "I cannot provide medical advice."
	}))
	defer srv.Close()

	_, err := newTestOracle(t, srv).Estimate(context.Background(), "daily calorie intake")
	require.ErrorIs(t, err, ErrEstimationExhausted)
	assert.EqualValues(t, 3, calls)
}

func TestOracleEstimateRejectsNonPositiveValues(t *testing.T) {
	for _, bad := range []string{"0", "-200"} {
		var calls int32
		srv := httptest.NewServer(completionHandler(t, &calls, func(int32) string { return bad }))

		_, err := newTestOracle(t, srv).Estimate(context.Background(), "daily calorie intake")
		srv.Close()
		require.ErrorIs(t, err, ErrEstimationExhausted, "answer %q must never be returned", bad)
		assert.EqualValues(t, 3, calls)
	}
}

func TestOracleEstimateRecoversOnLaterAttempt(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(completionHandler(t, &calls, func(attempt int32) string {
		if attempt < 2 {
			return "around two thousand"
		}
		return "2000"
	}))
	defer srv.Close()

	n, err := newTestOracle(t, srv).Estimate(context.Background(), "daily calorie intake")
	require.NoError(t, err)
	assert.Equal(t, 2000, n)
	assert.EqualValues(t, 2, calls)
}

func TestOracleEstimateRetriesTransportFailures(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	}))
	defer srv.Close()

	_, err := newTestOracle(t, srv).Estimate(context.Background(), "daily calorie intake")
	require.ErrorIs(t, err, ErrEstimationExhausted)
	assert.EqualValues(t, 3, calls)
}

func TestParseLeadingInt(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"1800", 1800, true},
		{"1800 kcal", 1800, true},
		{"-45", -45, true},
		{"+7", 7, true},
		{"", 0, false},
		{"kcal 1800", 0, false},
		{"-", 0, false},
	}
	for _, tc := range cases {
		got, ok := parseLeadingInt(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
		if tc.ok {
			assert.Equal(t, tc.want, got, "input %q", tc.in)
		}
	}
}
