package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/flavours/internal/adapter/output"
	"github.com/jmylchreest/flavours/internal/core"
	"github.com/jmylchreest/flavours/internal/model"
	"github.com/jmylchreest/flavours/internal/resolve"
)

var listOpts struct {
	lines    bool
	format   string
	template string
	sort     string
	order    string
}

var listCmd = &cobra.Command{
	Use:   "list [pattern...]",
	Short: "Print a list of all matching schemes",
	Long: `Print the names of all schemes matching the given patterns.

Schemes are looked up in <config>/schemes/*/<pattern>.yaml (and .yml).
Patterns are shell globs; without a pattern every scheme is listed. Names
are sorted and printed once even when several files share them.

Examples:
  flavours list
  flavours list 'gruvbox*' --lines
  flavours list --format long
  flavours list --format long --sort modified --order desc`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolVarP(&listOpts.lines, "lines", "l", false,
		"Print each scheme on its own line")
	listCmd.Flags().StringVar(&listOpts.format, "format", "",
		"Output format (plain, lines, long, json; default from config)")
	listCmd.Flags().StringVar(&listOpts.template, "template", "",
		"Go template for the lines format (fields: Name, Path, Origin, Size, ModTime)")
	listCmd.Flags().StringVar(&listOpts.sort, "sort", "name",
		"Sort by field (name, path, modified)")
	listCmd.Flags().StringVar(&listOpts.order, "order", "asc",
		"Sort order (asc, desc)")
}

func runList(cmd *cobra.Command, args []string) error {
	paths, err := resolver.Schemes(patternsOrAll(args)...)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return errors.New("no matching scheme found")
	}

	resources, err := describe(model.KindScheme, paths)
	if err != nil {
		return err
	}

	format, err := listFormat()
	if err != nil {
		return err
	}
	if format == output.FormatPlain || format == output.FormatLines {
		// Names only: one entry per scheme name.
		resources = core.Effective(resources)
	}
	core.Sort(resources, sortOptions(listOpts.sort, listOpts.order))

	f := output.NewFormatter(format, output.FormatterOptions{
		Template: listOpts.template,
		Color:    useColor(cmd),
	})
	return f.Format(cmd.OutOrStdout(), resources)
}

func listFormat() (output.FormatType, error) {
	if listOpts.format != "" {
		return output.ParseFormat(listOpts.format)
	}
	if listOpts.lines || cfg.List.Lines {
		return output.FormatLines, nil
	}
	return output.ParseFormat(cfg.Output.Format)
}

func sortOptions(field, order string) core.SortOptions {
	opts := core.DefaultSortOptions()
	if field != "" {
		opts.Field = core.ParseSortField(field)
	}
	if order != "" {
		opts.Order = core.ParseSortOrder(order)
	}
	return opts
}

// describe stats every path and tags it with the root it came from.
func describe(kind model.Kind, paths []string) ([]model.Resource, error) {
	rkind := resolve.KindScheme
	if kind == model.KindTemplate {
		rkind = resolve.KindTemplate
	}

	roots := resolver.Roots()
	resources := make([]model.Resource, 0, len(paths))
	for _, path := range paths {
		origin, _ := roots.OriginOf(rkind, path)
		r, err := model.NewResource(kind, path, string(origin))
		if err != nil {
			return nil, err
		}
		resources = append(resources, r)
	}
	return resources, nil
}
