package circuit_breaker

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_circuitBreaker_Call(t *testing.T) {
	successfulService := func() error { return nil }
	failingService := func() error { return errors.New("broker down") }

	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	cb := New(Config{
		RecordLength:     10,
		Timeout:          2 * time.Second,
		Percentile:       0.3,
		RecoveryRequests: 3,
	}).(*circuitBreaker)
	cb.now = func() time.Time { return now }

	for i := 0; i < 20; i++ {
		require.NoError(t, cb.Call(successfulService))
	}
	require.Equal(t, Closed, cb.State())

	// 3 failures out of 10 reach the 30% threshold
	for i := 0; i < 3; i++ {
		require.Error(t, cb.Call(failingService))
	}
	require.Equal(t, Open, cb.State())
	require.ErrorIs(t, cb.Call(successfulService), ErrOpenCB)

	// after the timeout a failing probe opens it again
	now = now.Add(3 * time.Second)
	require.EqualError(t, cb.Call(failingService), "broker down")
	require.Equal(t, Open, cb.State())

	// successful probes close it
	now = now.Add(3 * time.Second)
	for i := 0; i < 3; i++ {
		require.NoError(t, cb.Call(successfulService))
	}
	require.Equal(t, Closed, cb.State())
}

func Test_circuitBreaker_Reset(t *testing.T) {
	cb := New(Config{RecordLength: 2, Timeout: time.Minute, Percentile: 0.5, RecoveryRequests: 1})
	require.Error(t, cb.Call(func() error { return errors.New("x") }))
	require.Equal(t, Open, cb.State())
	cb.Reset()
	require.Equal(t, Closed, cb.State())
	require.NoError(t, cb.Call(func() error { return nil }))
}
