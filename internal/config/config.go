// Package config loads otmc project files.
//
// A project file names the main documents, the output documents and, for
// every channel design, the instances to place:
//
//	main_sch: main.json        # optional, an empty schematic otherwise
//	main_pcb: main_pcb.json
//	out_sch: out/sch.json
//	out_pcb: out/pcb.json
//	net_style: suffix          # 1/suffix (NET_ch) or 2/prefix (ch:NET)
//	prefix_increment: false
//	parallel: 4
//	sources:
//	  - sch: amp.json
//	    pcb: amp_pcb.json
//	    channels:
//	      - {id: "1", x: 0, y: 0, increment: 100}
//	      - {id: "2", x: 1000, y: 0, increment: 200}
//
// Relative paths are resolved against the directory of the project file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/OpenTraceLab/OpenTraceMultichannel/pkg/easyeda/multichannel"
	"github.com/OpenTraceLab/OpenTraceMultichannel/pkg/easyeda/naming"
)

// Config is an otmc project
type Config struct {
	MainSch string `yaml:"main_sch,omitempty"`
	MainPCB string `yaml:"main_pcb"`
	OutSch  string `yaml:"out_sch"`
	OutPCB  string `yaml:"out_pcb"`

	NetStyle        NetStyle `yaml:"net_style"`
	PrefixIncrement bool     `yaml:"prefix_increment"`
	Parallel        int      `yaml:"parallel"`

	LogLevel string `yaml:"log_level"` // debug, info, warn, error

	Sources []SourceConfig `yaml:"sources"`
}

// SourceConfig is one channel design and its instances
type SourceConfig struct {
	Name     string          `yaml:"name,omitempty"` // defaults to the schematic file name
	Sch      string          `yaml:"sch"`
	PCB      string          `yaml:"pcb"`
	Channels []ChannelConfig `yaml:"channels"`
}

// ChannelConfig places one instance
type ChannelConfig struct {
	ID        string  `yaml:"id"`
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Increment int     `yaml:"increment"`
}

// NetStyle is a naming.Style that reads "1", "2", "suffix" or "prefix"
type NetStyle naming.Style

// UnmarshalYAML implements yaml.Unmarshaler
func (s *NetStyle) UnmarshalYAML(value *yaml.Node) error {
	style, err := naming.ParseStyle(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*s = NetStyle(style)
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (s NetStyle) MarshalYAML() (any, error) {
	return naming.Style(s).String(), nil
}

// DefaultConfig returns the settings used for keys a project leaves out.
func DefaultConfig() *Config {
	return &Config{
		NetStyle: NetStyle(naming.StyleSuffix),
		Parallel: 1,
		LogLevel: "info",
	}
}

// Load reads a project file, resolves its relative paths and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.resolvePaths(filepath.Dir(path))
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a project over the defaults. Paths are left as written.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse project: %w", err)
	}
	return cfg, nil
}

// Save writes the project as YAML
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal project: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write project: %w", err)
	}
	return nil
}

func (c *Config) resolvePaths(dir string) {
	resolve := func(p *string) {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(dir, *p)
		}
	}
	resolve(&c.MainSch)
	resolve(&c.MainPCB)
	resolve(&c.OutSch)
	resolve(&c.OutPCB)
	for i := range c.Sources {
		resolve(&c.Sources[i].Sch)
		resolve(&c.Sources[i].PCB)
	}
}

// Validate checks that every required path is set and that channel ids are
// unique within each source.
func (c *Config) Validate() error {
	var missing []string
	if c.MainPCB == "" {
		missing = append(missing, "main_pcb")
	}
	if c.OutSch == "" {
		missing = append(missing, "out_sch")
	}
	if c.OutPCB == "" {
		missing = append(missing, "out_pcb")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required settings: %s", strings.Join(missing, ", "))
	}

	if _, err := naming.NewTranslator(naming.Style(c.NetStyle), c.PrefixIncrement); err != nil {
		return err
	}
	if c.Parallel < 0 {
		return fmt.Errorf("parallel must not be negative, got %d", c.Parallel)
	}
	if len(c.Sources) == 0 {
		return fmt.Errorf("no sources configured")
	}

	for i, src := range c.Sources {
		if src.Sch == "" || src.PCB == "" {
			return fmt.Errorf("source %d: sch and pcb are required", i)
		}
		if len(src.Channels) == 0 {
			return fmt.Errorf("source %d (%s): no channels configured", i, src.Sch)
		}
		seen := make(map[string]bool, len(src.Channels))
		for _, ch := range src.Channels {
			if ch.ID == "" {
				return fmt.Errorf("source %d (%s): channel without id", i, src.Sch)
			}
			if seen[ch.ID] {
				return fmt.Errorf("source %d (%s): duplicate channel id %q", i, src.Sch, ch.ID)
			}
			seen[ch.ID] = true
		}
	}
	return nil
}

// MergerOptions returns the merger settings of the project
func (c *Config) MergerOptions() multichannel.Options {
	opts := multichannel.DefaultOptions()
	opts.Style = naming.Style(c.NetStyle)
	opts.IncrementRefs = c.PrefixIncrement
	if c.Parallel > 0 {
		opts.Parallelism = c.Parallel
	}
	return opts
}

// SourceName returns the configured name or the schematic file name
func (s SourceConfig) SourceName() string {
	if s.Name != "" {
		return s.Name
	}
	return strings.TrimSuffix(filepath.Base(s.Sch), filepath.Ext(s.Sch))
}

// Instances converts the channel list
func (s SourceConfig) Instances() []multichannel.Instance {
	insts := make([]multichannel.Instance, len(s.Channels))
	for i, ch := range s.Channels {
		insts[i] = multichannel.Instance{ID: ch.ID, X: ch.X, Y: ch.Y, Increment: ch.Increment}
	}
	return insts
}
