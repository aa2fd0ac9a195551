package render

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/broady/apiname/cmd/apiname/internal/load"
	"github.com/broady/apiname/display"
	"github.com/broady/apiname/symbol"
)

type Cmd struct {
	load.Flags `embed:""`

	Projection string `help:"Projection to render (csharp, vb or all)." default:"all"`
	With       string `help:"Rendering options: flag names (alias,qualified,parameter) or a query string (alias=true&with=generic)." short:"w" default:"fullname"`
	Validate   bool   `help:"Fail when the extracted module has validation errors."`
}

func (c *Cmd) Run(ctx context.Context, logger *slog.Logger) error {
	opts, err := ParseWith(c.With)
	if err != nil {
		return err
	}
	projections, err := ParseProjections(c.Projection)
	if err != nil {
		return err
	}

	m, err := c.Module(ctx, logger)
	if err != nil {
		return err
	}
	if c.Validate {
		if errs := m.Validate(); len(errs) > 0 {
			return fmt.Errorf("module %s is invalid: %w", m.Name, errors.Join(errs...))
		}
	}

	logger.Debug("rendering",
		slog.String("module", m.Name),
		slog.String("options", opts.String()),
		slog.Int("projections", len(projections)))
	return Write(ctx, os.Stdout, m, projections, opts)
}

// ParseWith accepts either a flag list understood by display.ParseOptions or,
// when s contains "=", a query string understood by display.DecodeOptions.
func ParseWith(s string) (display.Options, error) {
	if !strings.Contains(s, "=") {
		return display.ParseOptions(s)
	}
	values, err := url.ParseQuery(s)
	if err != nil {
		return display.None, fmt.Errorf("parse options query: %w", err)
	}
	return display.DecodeOptions(values)
}

// ParseProjections parses a projection name, or "all" for every projection.
func ParseProjections(s string) ([]display.Projection, error) {
	if strings.EqualFold(strings.TrimSpace(s), "all") {
		return display.Projections(), nil
	}
	p, err := display.ParseProjection(s)
	if err != nil {
		return nil, err
	}
	return []display.Projection{p}, nil
}

// Write renders every symbol of m once per projection and writes one
// "kind<TAB>projection<TAB>name" line per rendering. Projections are rendered
// concurrently; output is ordered by symbol, then projection.
func Write(ctx context.Context, w io.Writer, m *symbol.Module, projections []display.Projection, opts display.Options) error {
	var symbols []symbol.Symbol
	if err := m.Walk(func(s symbol.Symbol) error {
		symbols = append(symbols, s)
		return nil
	}); err != nil {
		return err
	}

	names := make([][]string, len(projections))
	g, ctx := errgroup.WithContext(ctx)
	for i, p := range projections {
		g.Go(func() error {
			cfg, err := display.Lookup(p, opts)
			if err != nil {
				return err
			}
			out := make([]string, len(symbols))
			for j, s := range symbols {
				if err := ctx.Err(); err != nil {
					return err
				}
				out[j] = cfg.Render(s)
			}
			names[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for j, s := range symbols {
		for i, p := range projections {
			if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", s.Kind(), p, names[i][j]); err != nil {
				return err
			}
		}
	}
	return nil
}
