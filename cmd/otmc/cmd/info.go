package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceMultichannel/pkg/easyeda/document"
	"github.com/OpenTraceLab/OpenTraceMultichannel/pkg/easyeda/multichannel"
)

var infoCmd = &cobra.Command{
	Use:   "info <pcb.json>",
	Short: "Show PCB shape counts and extent",
	Long: `Display the number of shapes of each type in an EasyEDA PCB document and
the extent of their coordinates. The extent of a channel PCB is a good start
for choosing channel offsets.`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	filename := args[0]
	pcb, err := document.LoadPCB(filename)
	if err != nil {
		return fmt.Errorf("error parsing PCB: %w", err)
	}
	shapes, err := pcb.Shapes()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "PCB: %s\n", filename)
	fmt.Fprintf(out, "Shapes: %d\n", len(shapes))

	counts := multichannel.CountTypes(shapes)
	kinds := make([]string, 0, len(counts))
	for kind := range counts {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	for _, kind := range kinds {
		fmt.Fprintf(out, "  %-12s %d\n", kind, counts[kind])
	}

	bbox := multichannel.PCBBounds(shapes)
	if !bbox.IsEmpty() {
		fmt.Fprintf(out, "Extent: (%g, %g) - (%g, %g)\n", bbox.Min.X, bbox.Min.Y, bbox.Max.X, bbox.Max.Y)
		fmt.Fprintf(out, "Size: %g x %g\n", bbox.Width(), bbox.Height())
		c := bbox.Center()
		fmt.Fprintf(out, "Center: (%g, %g)\n", c.X, c.Y)
	}
	return nil
}
