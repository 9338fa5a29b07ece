package xrender

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	r, err := Prepare("%i", []string{"192.168.1.1-192.168.0.254"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Write(context.Background(), &buf))
	assert.Equal(t, "192.168.1.1\n192.168.1.0\n192.168.0.255\n192.168.0.254\n", buf.String())
}

func TestWriteLiteralOnce(t *testing.T) {
	r, err := Prepare("hello", nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Write(context.Background(), &buf))
	assert.Equal(t, "hello\n", buf.String())
}

func TestWriteCanceled(t *testing.T) {
	r, err := Prepare("%n", []string{"0+1000"})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err = r.Write(ctx, &buf)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, buf.String())
}

type failWriter struct {
	err error
}

func (w failWriter) Write(p []byte) (int, error) {
	return 0, w.err
}

func TestWriteError(t *testing.T) {
	r, err := Prepare("%n", []string{"0+100"})
	require.NoError(t, err)

	boom := errors.New("disk full")
	assert.ErrorIs(t, r.Write(context.Background(), failWriter{boom}), boom)
	assert.ErrorIs(t, r.WriteParallel(context.Background(), failWriter{boom}, 4, 10), boom)
}

func TestWriteParallelMatchesWrite(t *testing.T) {
	tests := []struct {
		name    string
		workers int
		chunk   int
	}{
		{"sequential fallback", 1, 16},
		{"single chunk", 4, 100000},
		{"even chunks", 4, 100},
		{"uneven chunks", 3, 333},
		{"tiny chunks", 8, 1},
		{"default chunk", 2, 0},
	}

	r, err := Prepare("%05n %m %i %x", []string{"0-9999", "00:00:00:00:ff:f0+16", "10.0.0.250-10.0.1.4", "::fffe+-3"})
	require.NoError(t, err)
	require.Equal(t, uint64(10000), r.Rows())

	var want bytes.Buffer
	require.NoError(t, r.Write(context.Background(), &want))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got bytes.Buffer
			require.NoError(t, r.WriteParallel(context.Background(), &got, tt.workers, tt.chunk))
			assert.Equal(t, want.String(), got.String())
		})
	}
}

func TestWriteParallelCanceled(t *testing.T) {
	r, err := Prepare("%n", []string{"0+100000"})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err = r.WriteParallel(ctx, &buf, 4, 10)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, strings.Count(buf.String(), "\n"), 100001)
}

func TestWriteParallelHugeChunk(t *testing.T) {
	r, err := Prepare("%n", []string{"0+9223372036854775807"})
	require.NoError(t, err)

	// chunk 被截断到 MaxChunk，首块写出失败后立即返回
	boom := errors.New("disk full")
	err = r.WriteParallel(context.Background(), failWriter{boom}, 2, int(^uint(0)>>1))
	assert.ErrorIs(t, err, boom)

	small, err := Prepare("%n", []string{"0+199999"})
	require.NoError(t, err)
	var want, got bytes.Buffer
	require.NoError(t, small.Write(context.Background(), &want))
	require.NoError(t, small.WriteParallel(context.Background(), &got, 3, MaxChunk*4))
	assert.Equal(t, want.String(), got.String())
}
