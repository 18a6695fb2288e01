package telemetry_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/mapf-lacam/lacam/internal/telemetry"
	"github.com/stretchr/testify/require"
)

func TestObserveSolve_NoPanic(t *testing.T) {
	tel := telemetry.New()
	require.NotPanics(t, func() {
		tel.ObserveSolve(5*time.Millisecond, 12, 7)
		tel.RecordImprovement()
	})
}

func TestServe_ExposesMetricsEndpoint(t *testing.T) {
	tel := telemetry.New()
	addr := "127.0.0.1:19187"
	srv := tel.Serve(addr)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		require.NoError(t, telemetry.Shutdown(ctx, srv))
	}()

	tel.ObserveSolve(time.Millisecond, 1, 1)

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/metrics")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, time.Second, 10*time.Millisecond)
}
