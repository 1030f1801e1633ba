package cmd

import (
	"bytes"
	"fmt"

	"github.com/achilleasa/eglview/egl/libegl"
	"github.com/achilleasa/eglview/graphics"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// List the EGL configs usable by headless contexts.
func Info(ctx *cli.Context) error {
	setupLogging(ctx)

	info, err := graphics.QueryDisplay(libegl.New(), graphics.DefaultTraits())
	if err != nil {
		return err
	}

	logger.Noticef("EGL display information\n%s", formatDisplayInfo(info))
	return nil
}

func formatDisplayInfo(info *graphics.DisplayInfo) string {
	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("Version     %d.%d (%s)\n", info.Major, info.Minor, info.Version))
	buf.WriteString(fmt.Sprintf("Vendor      %s\n", info.Vendor))
	buf.WriteString(fmt.Sprintf("Client APIs %s\n", info.ClientAPIs))
	buf.WriteString(fmt.Sprintf("Configs     %d pbuffer/OpenGL capable\n\n", len(info.Configs)))

	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Config", "R", "G", "B", "A", "Depth", "Stencil"})
	for _, cfg := range info.Configs {
		table.Append([]string{
			fmt.Sprintf("0x%02X", cfg.ID),
			fmt.Sprintf("%d", cfg.RedBits),
			fmt.Sprintf("%d", cfg.GreenBits),
			fmt.Sprintf("%d", cfg.BlueBits),
			fmt.Sprintf("%d", cfg.AlphaBits),
			fmt.Sprintf("%d", cfg.DepthBits),
			fmt.Sprintf("%d", cfg.Stencil),
		})
	}
	table.Render()

	return buf.String()
}
