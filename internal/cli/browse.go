package cli

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/recordgrid/internal/config"
	"github.com/rshade/recordgrid/internal/grid"
	"github.com/rshade/recordgrid/internal/pagination"
	"github.com/rshade/recordgrid/internal/records"
	"github.com/rshade/recordgrid/internal/tui"
)

// ErrWatchNeedsOneFile is returned when --watch is used without exactly one --data file.
var ErrWatchNeedsOneFile = errors.New("--watch needs exactly one --data file")

// styledWidth is the width used for styled output when stdout is not a terminal.
const styledWidth = 100

// NewBrowseCmd creates the browse command, which runs the interactive table.
func NewBrowseCmd() *cobra.Command {
	var (
		data     dataFlags
		pageSize int
		watch    bool
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse records in an interactive table",
		Long: `Opens the interactive record table.

Keys: / search, c category filter, t status filter, x clear filters,
1-5 sort by column, ←/→ or [/] change page, home/end first/last page,
enter record details, q quit.

When stdout is not a terminal the first page is printed instead.`,
		Annotations: map[string]string{annotationInteractive: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg := configFrom(ctx)

			size := resolvePageSize(cmd, pageSize, cfg)
			if err := (pagination.Params{Page: 1, PageSize: size}).Validate(); err != nil {
				return err
			}

			sel := data.resolve(cmd, cfg)
			if watch && len(sel.files) != 1 {
				return ErrWatchNeedsOneFile
			}

			recs, err := data.load(ctx, cmd, cfg)
			if err != nil {
				return err
			}

			switch tui.DetectOutputMode(false, false, false) {
			case tui.OutputModeInteractive:
				watchPath := ""
				if watch {
					watchPath = sel.files[0]
				}
				return runBrowseTUI(ctx, recs, tableOptions(cfg, size), watchPath)
			case tui.OutputModeStyled:
				view := grid.New(ctx, recs, grid.Options{PageSize: size}).Snapshot()
				_, err = fmt.Fprintln(cmd.OutOrStdout(), tui.RenderStyled(view, styledWidth))
				return err
			case tui.OutputModePlain:
				fallthrough
			default:
				view := grid.New(ctx, recs, grid.Options{PageSize: size}).Snapshot()
				return tui.RenderPlain(cmd.OutOrStdout(), view)
			}
		},
	}

	data.register(cmd)
	cmd.Flags().IntVar(&pageSize, "page-size", pagination.DefaultPageSize, "rows per page")
	cmd.Flags().BoolVar(&watch, "watch", false, "reload the --data file when it changes")

	return cmd
}

func tableOptions(cfg *config.Config, pageSize int) tui.Options {
	return tui.Options{
		PageSize:     pageSize,
		Debounce:     cfg.Table.Debounce,
		LoadingDelay: cfg.Table.LoadingDelay,
	}
}

func runBrowseTUI(ctx context.Context, recs []records.Record, opts tui.Options, watchPath string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(tui.NewDataTableModel(ctx, recs, opts), tea.WithAltScreen(), tea.WithContext(ctx))

	if watchPath != "" {
		err := records.Watch(ctx, watchPath, func(recs []records.Record, err error) {
			p.Send(tui.RecordsReloadedMsg{Records: recs, Source: watchPath, Err: err})
		})
		if err != nil {
			return fmt.Errorf("watching %s: %w", watchPath, err)
		}
	}

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("failed to run interactive TUI: %w", err)
	}
	return nil
}
