package metrics

import (
	"context"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

const cpuSampleWindow = time.Second

var (
	SystemCPUUsage = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "system_cpu_usage_percent",
		Help: "Host CPU usage percentage",
	})

	SystemMemoryUsage = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "system_memory_usage_bytes",
		Help: "Host memory in use, bytes",
	})

	ApplicationHeapAlloc = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "application_heap_alloc_bytes",
		Help: "Go heap allocation of the process, bytes",
	})

	ApplicationGoroutines = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "application_goroutines",
		Help: "Number of live goroutines",
	})
)

// StartSystemMetricsCollector обновляет метрики хоста и процесса раз в interval,
// пока не отменён ctx.
func StartSystemMetricsCollector(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				collect(ctx)
			}
		}
	}()
}

func collect(ctx context.Context) {
	if percent, err := cpu.PercentWithContext(ctx, cpuSampleWindow, false); err == nil && len(percent) > 0 {
		SystemCPUUsage.Set(percent[0])
	}

	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		SystemMemoryUsage.Set(float64(vm.Used))
	}

	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)
	ApplicationHeapAlloc.Set(float64(stats.HeapAlloc))
	ApplicationGoroutines.Set(float64(runtime.NumGoroutine()))
}
