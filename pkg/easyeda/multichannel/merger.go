package multichannel

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/OpenTraceLab/OpenTraceMultichannel/pkg/easyeda/document"
	"github.com/OpenTraceLab/OpenTraceMultichannel/pkg/easyeda/naming"
	"github.com/OpenTraceLab/OpenTraceMultichannel/pkg/easyeda/resolver"
	"github.com/OpenTraceLab/OpenTraceMultichannel/pkg/easyeda/shape"
)

// Options controls a Merger
type Options struct {
	Style         naming.Style
	IncrementRefs bool // shift reference numbers instead of adding the channel id
	Parallelism   int  // instances processed at once; values below 1 mean 1

	Logger *zap.Logger

	// Generators for fresh ids; both must be safe for concurrent use.
	// Defaults draw from random UUIDs.
	NewGID       func() string
	NewSheetUUID func() string
}

// DefaultOptions returns suffix naming, no reference increment, sequential
// processing.
func DefaultOptions() Options {
	return Options{
		Style:       naming.StyleSuffix,
		Parallelism: 1,
	}
}

// Merger transforms channel designs into positioned instances
type Merger struct {
	opts  Options
	tr    *naming.Translator
	codec shape.Codec
	log   *zap.Logger
}

// NewMerger validates the options. An unknown naming style is returned as
// naming.ErrUnknownStyle and must abort the run.
func NewMerger(opts Options) (*Merger, error) {
	tr, err := naming.NewTranslator(opts.Style, opts.IncrementRefs)
	if err != nil {
		return nil, err
	}
	if opts.Parallelism < 1 {
		opts.Parallelism = 1
	}
	if opts.NewGID == nil {
		opts.NewGID = randomGID
	}
	if opts.NewSheetUUID == nil {
		opts.NewSheetUUID = randomHex
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Merger{
		opts:  opts,
		tr:    tr,
		codec: shape.DefaultCodec,
		log:   log,
	}, nil
}

func randomHex() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// randomGID returns an EasyEDA style unique id: "gge" and 16 hex digits.
func randomGID() string {
	h := randomHex()
	return gidPrefix + h[len(h)-16:]
}

// Merge appends one translated copy of every source per instance to sch and
// pcb. Instances run on up to Options.Parallelism goroutines; output order
// follows sources and then instances. Shape-level problems are reported in
// the returned Report, not as errors.
func (m *Merger) Merge(ctx context.Context, sch *document.Schematic, pcb *document.PCB, sources []Source) (*Report, error) {
	if sch == nil || pcb == nil {
		return nil, errors.New("multichannel: output documents must not be nil")
	}

	type job struct {
		src  Source
		inst Instance
	}
	var jobs []job
	for _, src := range sources {
		if src.Schematic == nil || src.PCB == nil {
			return nil, fmt.Errorf("multichannel: source %q is missing its schematic or PCB", src.Name)
		}
		for _, inst := range src.Instances {
			jobs = append(jobs, job{src: src, inst: inst})
		}
	}

	results := make([]*Result, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.opts.Parallelism)
	for i, j := range jobs {
		i, j := i, j // per-iteration copies; go directive is below 1.22
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := m.Instance(j.src, j.inst)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, res := range results {
		for _, sh := range res.Sheets {
			sch.AppendSheet(sh)
		}
		pcb.AppendShapes(res.PCBShapes...)
	}
	return &Report{Results: results}, nil
}

// Instance produces one translated copy of src. The source documents are
// not modified. Errors are returned only when a document is structurally
// unusable (for example a shape list holding non-strings).
func (m *Merger) Instance(src Source, inst Instance) (*Result, error) {
	c := &channel{
		m:    m,
		inst: inst,
		res:  resolver.New(),
		log: m.log.With(
			zap.String("source", src.Name),
			zap.String("channel", inst.ID),
		),
		result: &Result{Source: src.Name, Instance: inst},
	}
	c.log.Info("Processing channel",
		zap.Float64("x", inst.X),
		zap.Float64("y", inst.Y),
		zap.Int("increment", inst.Increment))

	for i, sheet := range src.Schematic.Sheets() {
		out, err := c.schematicSheet(i, sheet)
		if err != nil {
			return nil, fmt.Errorf("source %q channel %s sheet %d: %w", src.Name, inst.ID, i, err)
		}
		c.result.Sheets = append(c.result.Sheets, out)
	}
	c.result.Nets = c.res.Nets()
	c.log.Info("Schematic translated",
		zap.Int("components", c.result.Components),
		zap.Int("nets", c.result.Nets))

	shapes, err := src.PCB.Shapes()
	if err != nil {
		return nil, fmt.Errorf("source %q channel %s: %w", src.Name, inst.ID, err)
	}
	c.result.PCBShapes = make([]string, len(shapes))
	for i, s := range shapes {
		c.result.PCBShapes[i] = c.pcbShape(i, s)
	}
	c.result.Bounds = PCBBounds(c.result.PCBShapes)

	c.result.Unmatched = c.res.Unmatched()
	if len(c.result.Unmatched) > 0 {
		c.diag(SeverityWarning, PassPCB, -1, nil,
			"unmatched schematic components: %s", strings.Join(c.result.Unmatched, ", "))
	}
	return c.result, nil
}
