package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/recordgrid/internal/grid"
	"github.com/rshade/recordgrid/internal/pagination"
	"github.com/rshade/recordgrid/internal/pipeline"
	"github.com/rshade/recordgrid/internal/records"
	"github.com/rshade/recordgrid/internal/tui"
)

// Output formats accepted by list.
const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

// ErrUnsupportedOutput is returned for an unknown --output value.
var ErrUnsupportedOutput = errors.New("unsupported output format")

// listOutput is the structured form of one page.
type listOutput struct {
	Records    []records.Record `json:"records"    yaml:"records"`
	Pagination pagination.Meta  `json:"pagination" yaml:"pagination"`
}

// listFlags holds the list command's flags.
type listFlags struct {
	data       dataFlags
	search     string
	categories []string
	statuses   []string
	sort       string
	page       int
	pageSize   int
	output     string
}

// NewListCmd creates the list command, which prints one page of the
// processed records.
func NewListCmd() *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of records",
		Long: `Searches, filters and sorts the records, then prints one page.

Search matches any field, case-insensitively. --category and --status accept
several values; a record must match one value of every given field. A page
past the end is clamped to the last page.`,
		Example: `  # Second page of Books or Toys, sorted by name
  recordgrid list --category Books --category Toys --sort name --page 2

  # Pending records created most recently, as YAML
  recordgrid list --status Pending --sort createdAt:desc --output yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, &flags)
		},
	}

	flags.data.register(cmd)
	cmd.Flags().StringVar(&flags.search, "search", "", "case-insensitive text matched against every field")
	cmd.Flags().StringArrayVar(&flags.categories, "category", nil, "accepted category (repeatable)")
	cmd.Flags().StringArrayVar(&flags.statuses, "status", nil, "accepted status (repeatable)")
	cmd.Flags().StringVar(&flags.sort, "sort", "", "sort as field[:asc|desc], e.g. createdAt:desc")
	cmd.Flags().IntVar(&flags.page, "page", pagination.DefaultPage, "page number (1-based)")
	cmd.Flags().IntVar(&flags.pageSize, "page-size", pagination.DefaultPageSize, "rows per page")
	cmd.Flags().StringVarP(&flags.output, "output", "o", outputTable, "output format: table, json or yaml")

	return cmd
}

func runList(cmd *cobra.Command, flags *listFlags) error {
	ctx := cmd.Context()
	cfg := configFrom(ctx)

	output := strings.ToLower(flags.output)
	switch output {
	case outputTable, outputJSON, outputYAML:
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedOutput, flags.output)
	}

	params := pagination.Params{Page: flags.page, PageSize: resolvePageSize(cmd, flags.pageSize, cfg)}
	if err := params.Validate(); err != nil {
		return err
	}

	directive, err := pipeline.ParseSort(flags.sort)
	if err != nil {
		return err
	}

	recs, err := flags.data.load(ctx, cmd, cfg)
	if err != nil {
		return err
	}

	c := grid.New(ctx, recs, grid.Options{PageSize: params.PageSize})
	c.SetSearch(flags.search)
	c.SetCategories(flags.categories)
	c.SetStatuses(flags.statuses)
	c.SetSort(directive)
	c.SetPage(params.Page)

	view := c.Snapshot()
	if view.Page != params.Page {
		logger.Warn().Ctx(ctx).
			Int("requested_page", params.Page).
			Int("page", view.Page).
			Int("page_count", view.PageCount).
			Msg("requested page out of range, showing nearest page")
	}

	return writeList(cmd.OutOrStdout(), output, view)
}

func writeList(w io.Writer, output string, view grid.View) error {
	doc := listOutput{Records: view.Rows, Pagination: view.Meta}

	switch output {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2) //nolint:mnd // Two-space YAML indentation.
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	default:
		if tui.DetectOutputMode(false, false, false) == tui.OutputModePlain {
			return tui.RenderPlain(w, view)
		}
		_, err := fmt.Fprintln(w, tui.RenderStyled(view, styledWidth))
		return err
	}
}
