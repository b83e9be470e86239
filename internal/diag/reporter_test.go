package diag

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/vovakirdan/relay-server/internal/core"
)

// syncBuffer makes zerolog writes readable from the test goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestReporterLogsSnapshots(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := core.NewHub(0, nil)
	go hub.Run(ctx)

	out := &syncBuffer{}
	logger := zerolog.New(out)

	reporter := New(hub, 10*time.Millisecond, &logger)
	go reporter.Run(ctx)

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if strings.Contains(out.String(), "registry snapshot") {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("reporter never logged a snapshot")
}
