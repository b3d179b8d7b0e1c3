package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mortgage-engine/domain"
)

func setTestEnv(t *testing.T) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("LOG_PRETTY", "")
	t.Setenv("CACHE_BACKEND", "memory")
	t.Setenv("CACHE_TTL", "")
	t.Setenv("SCENARIO_WORKERS", "")
	t.Setenv("REQUEST_TIMEOUT", "")
}

func TestRun_WritesReport(t *testing.T) {
	setTestEnv(t)
	in := strings.NewReader(`{"kind":"amortization","params":{"principal":1200,"annualRatePercent":0,"termYears":1}}`)
	var out bytes.Buffer

	require.NoError(t, run(in, &out))

	var report map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	outcome := report["outcome"].(map[string]any)
	assert.Equal(t, "100", outcome["monthlyPayment"])
	assert.EqualValues(t, 12, outcome["totalPayments"])
}

func TestRun_WithRedis(t *testing.T) {
	setTestEnv(t)
	server := miniredis.RunT(t)
	t.Setenv("CACHE_BACKEND", "redis")
	t.Setenv("REDIS_ADDR", server.Addr())

	in := strings.NewReader(`{"kind":"refinance","params":{"currentBalance":250000,"currentRate":6.5,"remainingYears":25,"newRate":7,"newTermYears":25,"closingCosts":4000}}`)
	var out bytes.Buffer

	require.NoError(t, run(in, &out))
	assert.Contains(t, out.String(), `"label":"Never"`)
	assert.Len(t, server.Keys(), 1)
}

func TestRun_InvalidRequest(t *testing.T) {
	setTestEnv(t)

	err := run(strings.NewReader(`{"kind":"amortization","params":{"principal":0,"annualRatePercent":5,"termYears":30}}`), &bytes.Buffer{})
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)

	err = run(strings.NewReader(`not json`), &bytes.Buffer{})
	assert.ErrorContains(t, err, "decode request")
}

func TestRun_InvalidConfig(t *testing.T) {
	setTestEnv(t)
	t.Setenv("CACHE_BACKEND", "memcached")

	err := run(strings.NewReader(`{}`), &bytes.Buffer{})
	assert.ErrorContains(t, err, "load config")
}
