package uml

const (
	// DefaultPadding is the spacing between sections and around text.
	DefaultPadding = 10.0

	// DefaultTextHeight is the height of one line of text.
	DefaultTextHeight = 10.0

	// DefaultBoxWidth is the nominal width of a class or interface box.
	DefaultBoxWidth = 160.0

	// DefaultNameWidth is the width of a package symbol's name tab.
	DefaultNameWidth = 150.0

	// DefaultStyle is the class appended to a box's container.
	DefaultStyle = "type"
)

// Config controls which sections are drawn and the base metrics. The same
// value is passed to every measurement and insert call; nothing is read from
// global state. A zero Padding or TextHeight means the default metric.
type Config struct {
	DisplayAttributes bool
	DisplayMethods    bool
	DisplayNotes      bool

	Padding    float64
	TextHeight float64
}

// DefaultConfig returns a config with every section enabled and the
// default metrics.
func DefaultConfig() Config {
	return Config{
		DisplayAttributes: true,
		DisplayMethods:    true,
		DisplayNotes:      true,
		Padding:           DefaultPadding,
		TextHeight:        DefaultTextHeight,
	}
}

// Resolved returns c with zero metrics replaced by the defaults, i.e. the
// metrics a render actually uses.
func (c Config) Resolved() Config { return c.withDefaults() }

// withDefaults fills zero metrics so a partially populated Config still
// produces sensible geometry.
func (c Config) withDefaults() Config {
	if c.Padding == 0 {
		c.Padding = DefaultPadding
	}
	if c.TextHeight == 0 {
		c.TextHeight = DefaultTextHeight
	}
	return c
}
