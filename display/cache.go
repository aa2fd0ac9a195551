package display

import (
	"errors"
	"fmt"
	"strings"

	"github.com/broady/apiname/symbol"
)

// Projection selects a target syntax family.
type Projection int

const (
	// CSharp is the C-family projection.
	CSharp Projection = iota

	// VisualBasic is the Basic-family projection.
	VisualBasic

	projectionCount
)

// String returns the projection name.
func (p Projection) String() string {
	switch p {
	case CSharp:
		return "csharp"
	case VisualBasic:
		return "vb"
	default:
		return fmt.Sprintf("Projection(%d)", int(p))
	}
}

// Valid reports whether p is a known projection.
func (p Projection) Valid() bool {
	return p >= 0 && p < projectionCount
}

// Projections returns every known projection in order.
func Projections() []Projection {
	ps := make([]Projection, 0, projectionCount)
	for p := Projection(0); p < projectionCount; p++ {
		ps = append(ps, p)
	}
	return ps
}

// ErrUnknownProjection is returned for projections outside the known set.
var ErrUnknownProjection = errors.New("display: unknown projection")

// ParseProjection accepts "csharp", "cs", "c#", "vb" and "visualbasic", case-insensitively.
func ParseProjection(s string) (Projection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csharp", "cs", "c#":
		return CSharp, nil
	case "vb", "visualbasic", "visual-basic", "vb.net":
		return VisualBasic, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownProjection, s)
	}
}

// Config is a cached (projection, options) pair. It holds no output buffer;
// each render gets a fresh Writer.
type Config struct {
	visitor Visitor
	options Options
}

// NewConfig returns an uncached configuration for a caller-supplied visitor.
func NewConfig(v Visitor, opts Options) (*Config, error) {
	if v == nil {
		return nil, errors.New("display: nil visitor")
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Config{visitor: v, options: opts}, nil
}

// Options returns the configured options.
func (c *Config) Options() Options { return c.options }

// Visitor returns the configured visitor.
func (c *Config) Visitor() Visitor { return c.visitor }

// NewWriter returns a writer with an empty buffer.
func (c *Config) NewWriter() *Writer {
	return NewWriter(c.visitor, c.options)
}

// Render renders s with a fresh writer.
func (c *Config) Render(s symbol.Symbol) string {
	w := c.NewWriter()
	w.Visit(s)
	return w.String()
}

// visitors holds the stateless visitor of each projection.
var visitors = [projectionCount]Visitor{
	CSharp:      newCSharpVisitor(),
	VisualBasic: newVBVisitor(),
}

// configs is populated once during package initialization and only read
// afterwards, so lookups need no locking.
var configs = buildConfigs()

func buildConfigs() *[projectionCount][All + 1]Config {
	var table [projectionCount][All + 1]Config
	for p := range table {
		for o := range table[p] {
			table[p][o] = Config{visitor: visitors[p], options: Options(o)}
		}
	}
	return &table
}

// Lookup returns the cached configuration for a projection and option set.
func Lookup(p Projection, opts Options) (*Config, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownProjection, int(p))
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &configs[p][opts], nil
}

// Render renders the display name of s in projection p under opts.
func Render(s symbol.Symbol, p Projection, opts Options) (string, error) {
	c, err := Lookup(p, opts)
	if err != nil {
		return "", err
	}
	return c.Render(s), nil
}
