package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/rshade/recordgrid/internal/config"
	"github.com/rshade/recordgrid/internal/records"
)

// nowFunc is the clock used for generated creation dates.
var nowFunc = time.Now //nolint:gochecknoglobals // Overridden in tests for deterministic output.

// dataFlags selects the records a command works on: data files, or a
// generated dataset when none are given.
type dataFlags struct {
	files []string
	count int
	seed  uint64
}

func (f *dataFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&f.files, "data", nil, "record file(s) to load (.yaml, .yml, .json); repeatable")
	cmd.Flags().IntVar(&f.count, "count", records.DefaultCount, "number of records to generate when no --data is given")
	cmd.Flags().Uint64Var(&f.seed, "seed", config.DefaultSeed, "generator seed")
}

// resolve applies the config file to flags the user did not set.
func (f *dataFlags) resolve(cmd *cobra.Command, cfg *config.Config) dataFlags {
	out := *f
	if !cmd.Flags().Changed("data") && len(cfg.Data.Files) > 0 {
		out.files = cfg.Data.Files
	}
	if !cmd.Flags().Changed("count") {
		out.count = cfg.Data.Count
	}
	if !cmd.Flags().Changed("seed") {
		out.seed = cfg.Data.Seed
	}
	return out
}

// load returns the selected records.
func (f *dataFlags) load(ctx context.Context, cmd *cobra.Command, cfg *config.Config) ([]records.Record, error) {
	sel := f.resolve(cmd, cfg)

	if len(sel.files) > 0 {
		recs, err := records.LoadFiles(ctx, sel.files)
		if err != nil {
			return nil, err
		}
		logger.Debug().Ctx(ctx).
			Strs("files", sel.files).
			Int("records", len(recs)).
			Msg("loaded records")
		return recs, nil
	}

	if sel.count < 0 {
		return nil, config.ErrInvalidCount
	}
	recs := records.Generate(sel.count, sel.seed, nowFunc())
	logger.Debug().Ctx(ctx).
		Int("records", len(recs)).
		Uint64("seed", sel.seed).
		Msg("generated records")
	return recs, nil
}

// resolvePageSize returns --page-size when set, else the configured size.
func resolvePageSize(cmd *cobra.Command, flagValue int, cfg *config.Config) int {
	if cmd.Flags().Changed("page-size") {
		return flagValue
	}
	return cfg.Table.PageSize
}
