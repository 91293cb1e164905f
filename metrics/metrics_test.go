package metrics

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveFetch(t *testing.T) {
	ok := testutil.ToFloat64(RouteFetchesTotal.WithLabelValues("test", "ok"))
	failed := testutil.ToFloat64(RouteFetchesTotal.WithLabelValues("test", "error"))
	timedOut := testutil.ToFloat64(RouteFetchesTotal.WithLabelValues("test", "timeout"))

	ObserveFetch("test", 100*time.Millisecond, 2, nil)
	ObserveFetch("test", time.Second, 0, errors.New("boom"))
	ObserveFetch("test", time.Second, 0, fmt.Errorf("directions: %w", context.DeadlineExceeded))

	assert.Equal(t, ok+1, testutil.ToFloat64(RouteFetchesTotal.WithLabelValues("test", "ok")))
	assert.Equal(t, failed+1, testutil.ToFloat64(RouteFetchesTotal.WithLabelValues("test", "error")))
	assert.Equal(t, timedOut+1, testutil.ToFloat64(RouteFetchesTotal.WithLabelValues("test", "timeout")))
	assert.Equal(t, 2.0, testutil.ToFloat64(InstructionsPublished))
}
