package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceMultichannel/pkg/easyeda/document"
	"github.com/OpenTraceLab/OpenTraceMultichannel/pkg/easyeda/shape"
)

var dumpOutput string

var dumpCmd = &cobra.Command{
	Use:   "dump <document.json>",
	Short: "List every shape of a schematic or PCB document",
	Long: `Decodes every shape string of an EasyEDA schematic (all sheets) or PCB
document and prints its sub-records, field groups and fields with their
indices. Useful to look up the field positions of a shape type.`,
	Args: cobra.ExactArgs(1),
	RunE: runDump,
}

func init() {
	rootCmd.AddCommand(dumpCmd)
	dumpCmd.Flags().StringVarP(&dumpOutput, "output", "o", "", "write the listing to a file instead of stdout")
}

func runDump(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}

	out := cmd.OutOrStdout()
	if dumpOutput != "" {
		f, err := os.Create(dumpOutput)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	if sch, err := document.ParseSchematic(data); err == nil {
		return dumpSchematic(out, sch)
	}
	pcb, err := document.ParsePCB(data)
	if err != nil {
		return fmt.Errorf("%s is neither an EasyEDA schematic nor a PCB: %w", args[0], err)
	}
	shapes, err := pcb.Shapes()
	if err != nil {
		return err
	}
	return dumpShapes(out, shapes)
}

func dumpSchematic(w io.Writer, sch *document.Schematic) error {
	for i, sheet := range sch.Sheets() {
		fmt.Fprintf(w, "Sheet %d: %s\n", i, sheet.Title())
		shapes, err := sheet.Shapes()
		if err != nil {
			return fmt.Errorf("sheet %d: %w", i, err)
		}
		if err := dumpShapes(w, shapes); err != nil {
			return err
		}
	}
	return nil
}

func dumpShapes(w io.Writer, shapes []string) error {
	for i, raw := range shapes {
		if _, err := io.WriteString(w, shape.Decode(raw).Dump(i)); err != nil {
			return err
		}
	}
	return nil
}
