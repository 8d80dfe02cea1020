package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithOutputFormat sets the report format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithJSONOutput switches reports to JSON.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	if enabled {
		b.cfg.Output.Format = JSON
	} else {
		b.cfg.Output.Format = Text
	}
	return b
}

// WithColour enables or disables ANSI colours.
func (b *ConfigBuilder) WithColour(enabled bool) *ConfigBuilder {
	b.cfg.Output.UseColour = enabled
	return b
}

// WithUnicode enables chess glyphs on the text board.
func (b *ConfigBuilder) WithUnicode(enabled bool) *ConfigBuilder {
	b.cfg.Output.Unicode = enabled
	return b
}

// WithSVGSize sets the SVG diagram size in pixels.
func (b *ConfigBuilder) WithSVGSize(size int) *ConfigBuilder {
	b.cfg.Output.SVGSize = size
	return b
}

// WithSeparator sets the move log separator.
func (b *ConfigBuilder) WithSeparator(sep string) *ConfigBuilder {
	b.cfg.Rules.Separator = sep
	return b
}

// WithSelfCheck allows moves that leave the mover in check.
func (b *ConfigBuilder) WithSelfCheck(allow bool) *ConfigBuilder {
	b.cfg.Rules.AllowSelfCheck = allow
	return b
}

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.Rules.StartFEN = fen
	return b
}

// WithBatchInput enables batch classification of the named file.
func (b *ConfigBuilder) WithBatchInput(name string) *ConfigBuilder {
	b.cfg.Batch.Input = name
	return b
}

// WithWorkers sets the number of classification workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Batch.Workers = n
	return b
}

// WithDuplicates enables duplicate position reporting.
func (b *ConfigBuilder) WithDuplicates(enabled bool) *ConfigBuilder {
	b.cfg.Batch.MarkDuplicates = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
