package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/OpenTraceLab/OpenTraceMultichannel/internal/config"
	"github.com/OpenTraceLab/OpenTraceMultichannel/internal/logging"
	"github.com/OpenTraceLab/OpenTraceMultichannel/pkg/easyeda/document"
	"github.com/OpenTraceLab/OpenTraceMultichannel/pkg/easyeda/multichannel"
)

var (
	projectFile string
	parallel    int
	strict      bool
)

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge channel designs into the main schematic and PCB",
	Long: `Reads a project file, appends one translated copy of every channel design
per configured instance to the main documents and writes the results.

Problems in single shapes are logged and summarized; the shape is copied
unchanged and the merge goes on. Use --strict to fail when any error
diagnostic was reported.`,
	Args: cobra.NoArgs,
	RunE: runMerge,
}

func init() {
	rootCmd.AddCommand(mergeCmd)
	mergeCmd.Flags().StringVarP(&projectFile, "config", "c", "project.yaml", "project file")
	mergeCmd.Flags().IntVar(&parallel, "parallel", 0, "instances processed at once (overrides the project)")
	mergeCmd.Flags().BoolVar(&strict, "strict", false, "exit with an error when a shape could not be translated")
}

func runMerge(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(projectFile)
	if err != nil {
		return err
	}
	if parallel > 0 {
		cfg.Parallel = parallel
	}
	if !verbose && cfg.LogLevel != "" {
		if logger, err = logging.New(cfg.LogLevel); err != nil {
			return err
		}
	}

	mainSch := document.NewSchematic()
	if cfg.MainSch != "" {
		if mainSch, err = document.LoadSchematic(cfg.MainSch); err != nil {
			return fmt.Errorf("error loading main schematic: %w", err)
		}
	}
	mainPCB, err := document.LoadPCB(cfg.MainPCB)
	if err != nil {
		return fmt.Errorf("error loading main PCB: %w", err)
	}

	sources := make([]multichannel.Source, 0, len(cfg.Sources))
	for _, sc := range cfg.Sources {
		src, err := loadSource(sc)
		if err != nil {
			return err
		}
		sources = append(sources, src)
	}

	opts := cfg.MergerOptions()
	opts.Logger = logger
	merger, err := multichannel.NewMerger(opts)
	if err != nil {
		return err
	}

	logger.Debug("Merging",
		zap.Int("sources", len(sources)),
		zap.Int("parallel", opts.Parallelism),
		zap.Stringer("style", opts.Style))
	report, err := merger.Merge(cmd.Context(), mainSch, mainPCB, sources)
	if err != nil {
		return fmt.Errorf("merge failed: %w", err)
	}

	if err := saveOutputs(cfg, mainSch, mainPCB); err != nil {
		return err
	}
	printReport(cmd, report)

	if strict {
		errs := 0
		for _, res := range report.Results {
			errs += res.Errors()
		}
		if errs > 0 {
			return fmt.Errorf("%d shapes could not be translated", errs)
		}
	}
	return nil
}

func loadSource(sc config.SourceConfig) (multichannel.Source, error) {
	sch, err := document.LoadSchematic(sc.Sch)
	if err != nil {
		return multichannel.Source{}, fmt.Errorf("error loading channel schematic: %w", err)
	}
	pcb, err := document.LoadPCB(sc.PCB)
	if err != nil {
		return multichannel.Source{}, fmt.Errorf("error loading channel PCB: %w", err)
	}
	return multichannel.Source{
		Name:      sc.SourceName(),
		Schematic: sch,
		PCB:       pcb,
		Instances: sc.Instances(),
	}, nil
}

func saveOutputs(cfg *config.Config, sch *document.Schematic, pcb *document.PCB) error {
	for _, out := range []string{cfg.OutSch, cfg.OutPCB} {
		if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := sch.Save(cfg.OutSch); err != nil {
		return err
	}
	return pcb.Save(cfg.OutPCB)
}

func printReport(cmd *cobra.Command, report *multichannel.Report) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Merged %d channel instances\n", len(report.Results))
	for _, res := range report.Results {
		fmt.Fprintf(out, "  %s/%s at (%g, %g): %d components, %d nets, %d PCB shapes",
			res.Source, res.Instance.ID, res.Instance.X, res.Instance.Y,
			res.Components, res.Nets, len(res.PCBShapes))
		if !res.Bounds.IsEmpty() {
			fmt.Fprintf(out, ", extent (%g, %g)-(%g, %g)",
				res.Bounds.Min.X, res.Bounds.Min.Y, res.Bounds.Max.X, res.Bounds.Max.Y)
		}
		fmt.Fprintln(out)
		if errs, warns := res.Errors(), res.Warnings(); errs+warns > 0 {
			fmt.Fprintf(out, "    %d errors, %d warnings\n", errs, warns)
		}
		if len(res.Unmatched) > 0 {
			fmt.Fprintf(out, "    unmatched schematic components: %s\n", strings.Join(res.Unmatched, ", "))
		}
	}
	if n := report.Unmatched(); n > 0 {
		fmt.Fprintf(out, "%d schematic components have no PCB footprint\n", n)
	}
}
