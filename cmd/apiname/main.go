package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"

	"github.com/broady/apiname/cmd/apiname/internal/check"
	"github.com/broady/apiname/cmd/apiname/internal/render"
	"github.com/broady/apiname/display"
)

type CLI struct {
	Verbose bool `help:"Log extraction progress to stderr." short:"v"`

	Version VersionCmd `cmd:"" help:"Print version information."`
	Render  render.Cmd `cmd:"" help:"Render display names for every symbol of a Go package."`
	Check   check.Cmd  `cmd:"" help:"Extract and validate symbols without rendering."`
	Options OptionsCmd `cmd:"" help:"List rendering option flags and presets."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(Version())
	return nil
}

type OptionsCmd struct{}

func (c *OptionsCmd) Run() error {
	for o := display.UseAlias; o <= display.WithNullableAnnotations; o <<= 1 {
		fmt.Printf("%3d\t%s\n", int(o), o)
	}
	presets := []struct {
		name string
		opts display.Options
	}{
		{"name", display.NameOptions},
		{"namewithtype", display.NameWithTypeOptions},
		{"fullname", display.FullNameOptions},
		{"all", display.All},
	}
	for _, p := range presets {
		fmt.Printf("%3d\t%s = %s\n", int(p.opts), p.name, p.opts)
	}
	return nil
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func main() {
	cli := &CLI{}
	kctx := kong.Parse(cli,
		kong.Name("apiname"),
		kong.Description("Render C# and Visual Basic display names for Go API symbols."),
		kong.UsageOnError(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger := newLogger(cli.Verbose)
	kctx.BindTo(ctx, (*context.Context)(nil))
	err := kctx.Run(logger)
	kctx.FatalIfErrorf(err)
}
