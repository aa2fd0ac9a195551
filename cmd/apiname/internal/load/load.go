package load

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/broady/apiname/provider"
	"github.com/broady/apiname/symbol"
)

// Flags selects the Go packages a command extracts symbols from.
type Flags struct {
	Package    []string `help:"Packages to scan (default: current directory)." short:"p" default:"."`
	Types      []string `help:"Only extract these type names." short:"t"`
	Unexported bool     `help:"Include unexported identifiers."`
}

// Module loads the packages and builds their symbol graph.
func (f *Flags) Module(ctx context.Context, logger *slog.Logger) (*symbol.Module, error) {
	p := &provider.SourceProvider{}
	m, err := p.BuildModule(ctx, provider.SourceInputOptions{
		Packages:          f.Package,
		RootTypes:         f.Types,
		IncludeUnexported: f.Unexported,
		Logger:            logger,
	})
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	return m, nil
}
