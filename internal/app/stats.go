package app

import (
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/Gaurav-Gosain/dropzone/internal/config"
)

// UpdateCPUHistory samples CPU usage for the dock graph. Sampling is rate
// limited; calling it every tick is fine.
func (b *Board) UpdateCPUHistory() {
	if time.Since(b.LastCPUUpdate) < config.CPUUpdateInterval {
		return
	}
	b.LastCPUUpdate = time.Now()

	percentages, err := cpu.Percent(0, false)
	if err != nil || len(percentages) == 0 {
		return
	}

	b.CPUHistory = append(b.CPUHistory, percentages[0])
	if len(b.CPUHistory) > config.CPUHistorySize {
		b.CPUHistory = b.CPUHistory[len(b.CPUHistory)-config.CPUHistorySize:]
	}
}

// UpdateRAMUsage samples memory usage for the dock. Rate limited like the
// CPU sampler.
func (b *Board) UpdateRAMUsage() {
	if time.Since(b.LastRAMUpdate) < config.RAMUpdateInterval {
		return
	}
	b.LastRAMUpdate = time.Now()

	v, err := mem.VirtualMemory()
	if err != nil {
		return
	}
	b.RAMUsage = v.UsedPercent
}
