package multichannel

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/OpenTraceLab/OpenTraceMultichannel/pkg/easyeda/resolver"
	"github.com/OpenTraceLab/OpenTraceMultichannel/pkg/easyeda/shape"
)

// channel is the state of one instance while it is being translated
type channel struct {
	m      *Merger
	inst   Instance
	res    *resolver.Resolver
	log    *zap.Logger
	result *Result
	sheet  int // schematic sheet being translated
}

// diag records and logs a diagnostic. s is dumped for errors when non-nil.
func (c *channel) diag(sev Severity, pass Pass, idx int, s shape.Shape, format string, args ...any) {
	d := Diagnostic{
		Severity: sev,
		Pass:     pass,
		Shape:    idx,
		Message:  fmt.Sprintf(format, args...),
	}
	if pass == PassSchematic {
		d.Sheet = c.sheet
	}
	if sev == SeverityError && s != nil {
		d.Dump = s.Dump(idx)
	}
	c.result.Diagnostics = append(c.result.Diagnostics, d)

	fields := []zap.Field{zap.String("pass", string(pass))}
	if idx >= 0 {
		fields = append(fields, zap.Int("shape", idx))
	}
	if pass == PassSchematic {
		fields = append(fields, zap.Int("sheet", c.sheet))
	}
	if d.Dump != "" {
		fields = append(fields, zap.String("dump", d.Dump))
	}
	if sev == SeverityError {
		c.log.Error(d.Message, fields...)
	} else {
		c.log.Warn(d.Message, fields...)
	}
}

func (c *channel) warn(pass Pass, idx int, format string, args ...any) {
	c.diag(SeverityWarning, pass, idx, nil, format, args...)
}

func (c *channel) fail(pass Pass, idx int, s shape.Shape, format string, args ...any) {
	c.diag(SeverityError, pass, idx, s, format, args...)
}
