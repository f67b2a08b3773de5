// Package hoststat samples CPU, memory and disk usage for the dashboard header.
package hoststat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
)

// Interval is how often the header is refreshed.
const Interval = 10 * time.Second

// Sample is one reading. Fields whose collector failed are left zero and the
// matching Has flag is false.
type Sample struct {
	At time.Time

	HasCPU bool
	CPU    float64

	HasMem     bool
	MemUsed    uint64
	MemTotal   uint64
	MemPercent float64

	HasDisk     bool
	DiskPath    string
	DiskFree    uint64
	DiskPercent float64
}

// Collect reads all metrics. diskPath selects the filesystem to report,
// usually the clip download directory; empty skips disk collection.
// Partial failures are joined into the returned error alongside a usable
// sample.
func Collect(ctx context.Context, diskPath string) (Sample, error) {
	if err := ctx.Err(); err != nil {
		return Sample{}, err
	}

	s := Sample{At: time.Now()}
	var errs []error

	// Interval 0 compares against the previous call, so the first reading
	// after start is an average since boot.
	if pct, err := cpu.PercentWithContext(ctx, 0, false); err != nil {
		errs = append(errs, fmt.Errorf("cpu: %w", err))
	} else if len(pct) > 0 {
		s.HasCPU = true
		s.CPU = pct[0]
	}

	if vm, err := mem.VirtualMemoryWithContext(ctx); err != nil {
		errs = append(errs, fmt.Errorf("memory: %w", err))
	} else {
		s.HasMem = true
		s.MemUsed = vm.Used
		s.MemTotal = vm.Total
		s.MemPercent = vm.UsedPercent
	}

	if diskPath != "" {
		if du, err := disk.UsageWithContext(ctx, diskPath); err != nil {
			errs = append(errs, fmt.Errorf("disk %s: %w", diskPath, err))
		} else {
			s.HasDisk = true
			s.DiskPath = diskPath
			s.DiskFree = du.Free
			s.DiskPercent = du.UsedPercent
		}
	}

	return s, errors.Join(errs...)
}

// String renders the sample as a single header line.
func (s Sample) String() string {
	var parts []string
	if s.HasCPU {
		parts = append(parts, fmt.Sprintf("CPU %.0f%%", s.CPU))
	}
	if s.HasMem {
		parts = append(parts, fmt.Sprintf("MEM %.0f%% of %s", s.MemPercent, humanize.IBytes(s.MemTotal)))
	}
	if s.HasDisk {
		parts = append(parts, fmt.Sprintf("DISK %s free", humanize.IBytes(s.DiskFree)))
	}
	return strings.Join(parts, "  ")
}
