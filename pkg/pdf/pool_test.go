// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package pdf

import (
	"bytes"
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	cn "github.com/LerianStudio/condo-docs/pkg/constant"

	"github.com/LerianStudio/lib-commons/v3/commons/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPDF() []byte {
	return append([]byte("%PDF-1.7\n"), bytes.Repeat([]byte("A"), cn.PDFMinValidSizeBytes)...)
}

// newFakePool starts a pool whose workers print with fn instead of Chrome.
func newFakePool(t *testing.T, workers int, fn func(ctx context.Context, path string) ([]byte, error)) *WorkerPool {
	t.Helper()

	wp := newWorkerPool(workers, time.Minute, &log.NoneLogger{})
	wp.print = fn
	wp.start()

	t.Cleanup(wp.Close)

	return wp
}

func TestNewWorkerPool_Defaults(t *testing.T) {
	t.Parallel()

	wp := newWorkerPool(0, 0, &log.NoneLogger{})

	assert.Equal(t, cn.PDFDefaultWorkers, wp.workers)
	assert.Equal(t, cn.PDFDefaultTimeout, wp.timeout)
	assert.True(t, wp.IsHealthy())
}

func TestWorkerPool_Render(t *testing.T) {
	t.Parallel()

	html := "<html><body><p>Dear Ana,</p></body></html>"

	wp := newFakePool(t, 2, func(_ context.Context, path string) ([]byte, error) {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}

		if string(content) != html {
			return nil, errors.New("unexpected html")
		}

		return validPDF(), nil
	})

	out, err := wp.Render(context.Background(), html)

	require.NoError(t, err)
	assert.Equal(t, validPDF(), out)
}

func TestWorkerPool_Render_Concurrent(t *testing.T) {
	t.Parallel()

	wp := newFakePool(t, 3, func(context.Context, string) ([]byte, error) {
		return validPDF(), nil
	})

	var wg sync.WaitGroup

	errs := make(chan error, 20)

	for i := 0; i < 20; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, err := wp.Render(context.Background(), "<html><body>x</body></html>")
			errs <- err
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
}

func TestWorkerPool_Render_Errors(t *testing.T) {
	t.Parallel()

	printErr := errors.New("chrome crashed")

	tests := []struct {
		name    string
		print   func(context.Context, string) ([]byte, error)
		wantErr string
	}{
		{
			name:    "print failure is returned",
			print:   func(context.Context, string) ([]byte, error) { return nil, printErr },
			wantErr: "chrome crashed",
		},
		{
			name:    "output too small is rejected",
			print:   func(context.Context, string) ([]byte, error) { return []byte("%PDF"), nil },
			wantErr: "too small",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			wp := newFakePool(t, 1, tt.print)

			out, err := wp.Render(context.Background(), "<html></html>")

			assert.Nil(t, out)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestWorkerPool_Render_RemovesTempFile(t *testing.T) {
	t.Parallel()

	var seen string

	wp := newFakePool(t, 1, func(_ context.Context, path string) ([]byte, error) {
		seen = path
		return validPDF(), nil
	})

	_, err := wp.Render(context.Background(), "<html></html>")
	require.NoError(t, err)

	_, statErr := os.Stat(seen)
	assert.True(t, os.IsNotExist(statErr))
}

func TestWorkerPool_Render_ContextCancelled(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})

	wp := newFakePool(t, 1, func(context.Context, string) ([]byte, error) {
		<-release
		return validPDF(), nil
	})

	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := wp.Render(ctx, "<html></html>")

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestWorkerPool_Close(t *testing.T) {
	t.Parallel()

	wp := newWorkerPool(1, time.Minute, &log.NoneLogger{})
	wp.print = func(context.Context, string) ([]byte, error) { return validPDF(), nil }
	wp.start()

	wp.Close()
	wp.Close()

	assert.False(t, wp.IsHealthy())

	_, err := wp.Render(context.Background(), "<html></html>")
	assert.ErrorIs(t, err, ErrPoolClosed)
}

func TestWorkerPool_GetChromeOptions(t *testing.T) {
	t.Parallel()

	wp := newWorkerPool(1, time.Minute, &log.NoneLogger{})

	assert.NotEmpty(t, wp.getChromeOptions())
}

func TestCreateTempHTMLFile(t *testing.T) {
	t.Parallel()

	wp := newWorkerPool(1, time.Minute, &log.NoneLogger{})
	html := `<p>Unicode: ñ, ü, é, 中文</p><p>Symbols: © € £</p>`

	filename, err := wp.createTempHTMLFile(html)
	require.NoError(t, err)

	defer os.Remove(filename)

	content, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, html, string(content))
}

func TestCleanupTempFile(t *testing.T) {
	t.Parallel()

	wp := newWorkerPool(1, time.Minute, &log.NoneLogger{})
	originalErr := errors.New("pdf error")

	t.Run("removes file", func(t *testing.T) {
		t.Parallel()

		tmp, err := os.CreateTemp(t.TempDir(), "cleanup-*.html")
		require.NoError(t, err)
		require.NoError(t, tmp.Close())

		require.NoError(t, wp.cleanupTempFile(tmp.Name(), nil))

		_, statErr := os.Stat(tmp.Name())
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("missing file without original error", func(t *testing.T) {
		t.Parallel()

		err := wp.cleanupTempFile("/nonexistent/path/cleanup.html", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "generated PDF successfully but failed to remove")
	})

	t.Run("missing file keeps original error", func(t *testing.T) {
		t.Parallel()

		err := wp.cleanupTempFile("/nonexistent/path/cleanup.html", originalErr)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "additionally failed")
		assert.ErrorIs(t, err, originalErr)
	})
}

func TestLogPDFGenerationError(t *testing.T) {
	t.Parallel()

	wp := newWorkerPool(1, time.Minute, &log.NoneLogger{})

	expired, cancelExpired := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancelExpired()

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	for _, ctx := range []context.Context{expired, cancelled, context.Background()} {
		assert.NotPanics(t, func() { wp.logPDFGenerationError(ctx, errors.New("boom")) })
	}
}
