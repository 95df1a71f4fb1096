// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/image-filter/internal/config"
	"github.com/MKhiriev/image-filter/internal/logger"
	"github.com/MKhiriev/image-filter/internal/mock"
	"github.com/MKhiriev/image-filter/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// blockingWorker counts Run calls and blocks until ctx is done.
type blockingWorker struct {
	runs atomic.Int32
}

func (b *blockingWorker) Run(ctx context.Context) {
	b.runs.Add(1)
	<-ctx.Done()
}

func TestWorkers_Run_AllWorkersRunConcurrently(t *testing.T) {
	w1, w2, w3 := &blockingWorker{}, &blockingWorker{}, &blockingWorker{}
	ws := &Workers{workers: []Worker{w1, w2, w3}}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		ws.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return w1.runs.Load() == 1 && w2.runs.Load() == 1 && w3.runs.Load() == 1
	}, time.Second, 5*time.Millisecond)

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{}

	// Should not block or panic when there are no workers
	ws.Run(context.Background())
}

func TestNewWorkers(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := &store.Storages{ArtifactStorage: mock.NewMockArtifactStorage(ctrl)}

	ws := NewWorkers(storages, config.Workers{SweepInterval: time.Minute}, nil, logger.Nop())

	require.Len(t, ws.workers, 1)
	assert.IsType(t, &ArtifactSweeper{}, ws.workers[0])
}
