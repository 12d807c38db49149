package cmd

import (
	"bytes"
	"fmt"

	"github.com/df07/go-sphere-pathtracer/pkg/renderer"
	"github.com/olekukonko/tablewriter"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

func displayFrameStats(stats renderer.FrameStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Pass", "Samples", "Total spp", "Rays", "Bounces", "Escaped", "Absorbed", "Exhausted", "Render time"})
	for _, pass := range stats.Passes {
		table.Append([]string{
			fmt.Sprintf("%d", pass.PassNumber),
			fmt.Sprintf("%d", pass.Samples),
			fmt.Sprintf("%d", pass.TotalSamples),
			fmt.Sprintf("%d", pass.Counters.Rays),
			fmt.Sprintf("%d", pass.Counters.Bounces),
			fmt.Sprintf("%d", pass.Counters.Escaped),
			fmt.Sprintf("%d", pass.Counters.Absorbed),
			fmt.Sprintf("%d", pass.Counters.Exhausted),
			pass.Duration.String(),
		})
	}
	table.SetFooter([]string{
		"TOTAL",
		"",
		fmt.Sprintf("%d", stats.SamplesPerPixel()),
		fmt.Sprintf("%d", stats.Counters.Rays),
		fmt.Sprintf("%d", stats.Counters.Bounces),
		fmt.Sprintf("%d", stats.Counters.Escaped),
		fmt.Sprintf("%d", stats.Counters.Absorbed),
		fmt.Sprintf("%d", stats.Counters.Exhausted),
		stats.RenderTime.String(),
	})

	table.Render()
	logger.Noticef("frame statistics (%dx%d, %d workers, %d tiles, %.0f rays/s)\n%s",
		stats.Width, stats.Height, stats.Workers, stats.Tiles, stats.RaysPerSecond(), buf.String())

	if host, err := hostInfo(); err != nil {
		logger.Debugf("could not read host info: %v", err)
	} else {
		logger.Infof("host: %s", host)
	}
}

// hostInfo describes the CPU and memory of the machine the frame was rendered on
func hostInfo() (string, error) {
	cpuInfo, err := cpu.Info()
	if err != nil {
		return "", err
	}
	if len(cpuInfo) == 0 {
		return "", fmt.Errorf("no CPU information available")
	}

	memInfo, err := mem.VirtualMemory()
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s, %d logical cores, %d GiB RAM",
		cpuInfo[0].ModelName, len(cpuInfo), memInfo.Total/(1024*1024*1024)), nil
}
