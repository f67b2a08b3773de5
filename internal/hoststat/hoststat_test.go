package hoststat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleString(t *testing.T) {
	tests := []struct {
		name string
		s    Sample
		want string
	}{
		{"empty", Sample{}, ""},
		{"cpu only", Sample{HasCPU: true, CPU: 12.4}, "CPU 12%"},
		{
			"all",
			Sample{
				HasCPU: true, CPU: 99.6,
				HasMem: true, MemPercent: 41, MemTotal: 4 << 30,
				HasDisk: true, DiskFree: 2 << 30,
			},
			"CPU 100%  MEM 41% of 4.0 GiB  DISK 2.0 GiB free",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.s.String())
		})
	}
}

func TestCollect_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Collect(ctx, "")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCollect_Disk(t *testing.T) {
	dir := t.TempDir()
	s, err := Collect(context.Background(), dir)
	if err != nil && !s.HasDisk {
		t.Skipf("host metrics unavailable: %v", err)
	}
	require.True(t, s.HasDisk)
	assert.Equal(t, dir, s.DiskPath)
	assert.False(t, s.At.IsZero())
	assert.Contains(t, s.String(), "DISK")
}
