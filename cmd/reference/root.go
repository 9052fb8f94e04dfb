package main

import (
	"context"
	"io"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentflare-ai/go-docsite/internal/config"
	"github.com/agentflare-ai/go-docsite/internal/docmodel"
	"github.com/agentflare-ai/go-docsite/internal/web"
)

const rootLongDesc = `
reference serves a generated API reference browser. It loads a Go package
tree once at startup (a load failure is fatal) and renders module, type and
function doc comments as Markdown inside a shared HTML layout.

The module index lives at the configured base path (default /reference).
Each module page shows the package doc comment, one section per exported
type and one section per exported function, including an argument table
built from the function signature and the doc comment's Args section.
`

type serveOptions struct {
	configPath string
	listen     string
	pkg        string
	basePath   string
	title      string
}

func run(argv []string, stdout io.Writer) error {
	cmd := newRootCmd(stdout)
	cmd.SetArgs(argv)
	return cmd.Execute()
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	var opts serveOptions
	cmd := &cobra.Command{
		Use:           "reference",
		Short:         "Serve the generated API reference browser",
		Long:          strings.TrimSpace(rootLongDesc),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.DisableAutoGenTag = true
	cmd.Version = Version
	cmd.SetOut(stdout)
	cmd.SetErr(io.Discard)

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "path to YAML config file")
	flags.StringVar(&opts.listen, "listen", "", "listen address (overrides config)")
	flags.StringVar(&opts.pkg, "package", "", "package pattern to document (overrides config)")
	flags.StringVar(&opts.basePath, "base-path", "", "URL prefix for reference pages (overrides config)")
	flags.StringVar(&opts.title, "title", "", "site title (overrides config)")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		cfg, err := buildConfig(cmd, opts)
		if err != nil {
			return err
		}
		model, err := docmodel.Load(ctx, cfg.Reference.Package)
		if err != nil {
			return err
		}
		log.Printf("[reference] loaded %d modules from %s", model.Len(), cfg.Reference.Package)
		srv := web.NewReference(cfg, model)
		log.Printf("[reference] listening on %s", cfg.Listen)
		return srv.Run()
	}
	return cmd
}

func buildConfig(cmd *cobra.Command, opts serveOptions) (*config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("listen") {
		cfg.Listen = opts.listen
	}
	if cmd.Flags().Changed("package") {
		cfg.Reference.Package = opts.pkg
	}
	if cmd.Flags().Changed("base-path") {
		cfg.Reference.BasePath = opts.basePath
	}
	if cmd.Flags().Changed("title") {
		cfg.Site.Title = opts.title
	}
	return cfg, nil
}
