package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

func captureStderr(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := stderr
	stderr = &buf
	t.Cleanup(func() { stderr = old })
	return &buf
}

func TestSpinnerDrawsFrames(t *testing.T) {
	buf := captureStderr(t)

	s := newSpinnerWithContext(context.Background(), "compiling pdf")
	s.Start()
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	if !strings.Contains(buf.String(), "compiling pdf") {
		t.Errorf("spinner output %q does not contain message", buf.String())
	}
}

func TestSpinnerStopsOnCancel(t *testing.T) {
	captureStderr(t)
	ctx, cancel := context.WithCancel(context.Background())

	s := newSpinnerWithContext(ctx, "waiting")
	s.Start()
	cancel()

	select {
	case <-s.stopped:
	case <-time.After(time.Second):
		t.Fatal("spinner did not stop after cancel")
	}
	s.Stop()
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	captureStderr(t)
	s := newSpinnerWithContext(context.Background(), "twice")
	s.Start()
	s.Stop()
	s.Stop()
}

func TestSpinnerStopWithError(t *testing.T) {
	captureStderr(t)
	out := captureStdout(t)

	s := newSpinnerWithContext(context.Background(), "failing")
	s.Start()
	s.StopWithError("render failed")

	if !strings.Contains(out.String(), "render failed") {
		t.Errorf("stdout = %q", out.String())
	}
}
