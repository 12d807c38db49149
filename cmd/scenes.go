package cmd

import (
	"bytes"
	"fmt"

	"github.com/df07/go-sphere-pathtracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// ListScenes prints the built-in scenes.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader([]string{"Name", "Spheres", "Materials", "Size", "Description"})
	for _, info := range scene.ListBuiltinScenes() {
		s := info.New()
		table.Append([]string{
			info.Name,
			fmt.Sprintf("%d", s.GetPrimitiveCount()),
			fmt.Sprintf("%d", s.MaterialCount()),
			fmt.Sprintf("%dx%d", s.SamplingConfig.Width, s.SamplingConfig.Height),
			info.Description,
		})
	}
	table.Render()

	logger.Noticef("built-in scenes\n%s", buf.String())
	return nil
}
