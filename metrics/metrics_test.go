// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/33cn/rps/types"
	go_metrics "github.com/rcrowley/go-metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot(t *testing.T) {
	r := go_metrics.NewRegistry()
	go_metrics.GetOrRegisterCounter("tx.ok", r).Inc(3)
	go_metrics.GetOrRegisterGauge("height", r).Update(7)
	go_metrics.GetOrRegisterTimer("exec", r).Update(2 * time.Millisecond)

	snap := Snapshot(r)
	assert.Equal(t, float64(3), snap["tx.ok"])
	assert.Equal(t, float64(7), snap["height"])
	assert.Equal(t, float64(1), snap["exec.count"])
	assert.Equal(t, float64(2*time.Millisecond), snap["exec.mean"])
}

func TestHandler(t *testing.T) {
	r := go_metrics.NewRegistry()
	go_metrics.GetOrRegisterCounter("tx.ok", r).Inc(2)
	go_metrics.GetOrRegisterGauge("height", r).Update(5)

	srv := httptest.NewServer(Handler(r))
	defer srv.Close()
	resp, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "rps_tx_ok_total 2")
	assert.Contains(t, string(body), "rps_height 5")
}

func TestStartMetricsStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	StartMetrics(ctx, &types.Metrics{Enable: true, LogIntervalSeconds: 1})
	StartMetrics(ctx, &types.Metrics{Enable: false})
	Counter("test.counter").Inc(1)
	cancel()
	assert.Equal(t, int64(1), Counter("test.counter").Count())
}
