package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tdtracker/td/internal/config"
	"github.com/tdtracker/td/internal/project"
	"github.com/tdtracker/td/task"
)

// openStore resolves the project directory for this invocation and returns a
// store over it. The environment is captured once here and passed down; when
// no origin remote resolves, the fallback is surfaced on stderr.
func openStore(cmd *cobra.Command) (*task.Store, error) {
	ctx, err := project.NewContext()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(ctx.WorkDir)
	if err != nil {
		return nil, err
	}
	if cfg.Storage.Root != "" {
		ctx.Root = cfg.Storage.Root
	}
	if cfg.Storage.FallbackNamespace != "" {
		ctx.FallbackNamespace = cfg.Storage.FallbackNamespace
	}

	dir, fellBack, err := project.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	if fellBack {
		fmt.Fprintf(cmd.ErrOrStderr(), "no origin remote found; using %s\n", dir)
	}

	return task.NewStore(dir), nil
}
