package check

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/broady/apiname/cmd/apiname/internal/load"
)

type Cmd struct {
	load.Flags `embed:""`
}

func (c *Cmd) Run(ctx context.Context, logger *slog.Logger) error {
	m, err := c.Module(ctx, logger)
	if err != nil {
		return err
	}

	var members int
	for _, ms := range m.Members {
		members += len(ms)
	}
	fmt.Printf("✓ Loaded module: %s\n", m.Name)
	fmt.Printf("✓ %d types, %d members, %d functions\n", len(m.Types), members, len(m.Functions))

	for _, w := range m.Warnings {
		fmt.Printf("! %s: %s (%s)\n", w.Code, w.Message, w.Symbol)
	}

	errs := m.Validate()
	for _, err := range errs {
		fmt.Printf("✗ %v\n", err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("%d validation errors", len(errs))
	}

	fmt.Println("✓ All symbols renderable")
	return nil
}
