package cmd

import (
	"bytes"
	"fmt"

	"github.com/achilleasa/eglview/renderer"
	"github.com/olekukonko/tablewriter"
)

func displayRunStats(runID string, stats renderer.RunStats) {
	logger.Noticef("run statistics\n%s", formatRunStats(runID, stats))
}

func formatRunStats(runID string, stats renderer.RunStats) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Run", "Frames", "Reports", "Skipped", "Best avg", "Worst avg", "Elapsed"})
	table.Append([]string{
		runID,
		fmt.Sprintf("%d", stats.Frames),
		fmt.Sprintf("%d", stats.Reports),
		fmt.Sprintf("%d", stats.SkippedReports),
		formatFrameTime(stats.MinAvgFrameTime, stats.Reports),
		formatFrameTime(stats.MaxAvgFrameTime, stats.Reports),
		fmt.Sprintf("%.3fs", stats.ElapsedTime),
	})
	table.SetFooter([]string{"", "", "", "", "", "OVERALL FPS", fmt.Sprintf("%.1f", stats.OverallFPS())})
	table.Render()

	return buf.String()
}

func formatFrameTime(avg float64, reports int) string {
	if reports == 0 {
		return "-"
	}
	return fmt.Sprintf("%.4fs", avg)
}
