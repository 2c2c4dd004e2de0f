package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/flavours/internal/adapter/output"
	"github.com/jmylchreest/flavours/internal/core"
	"github.com/jmylchreest/flavours/internal/model"
)

var templatesOpts struct {
	format    string
	effective bool
	paths     bool
	template  string
	sort      string
	order     string
}

var templatesCmd = &cobra.Command{
	Use:   "templates [pattern...]",
	Short: "List templates matching pattern in both roots",
	Long: `List templates matching the given patterns.

A pattern of the form family/sub is read as family/templates/sub.mustache.
Patterns without a slash are matched against family directories. The
config root is searched before the data root; a template installed in both
is listed twice unless --effective is given, which keeps only the copy that
would be used. Results keep resolution order unless --sort is given.

Examples:
  flavours templates 'vim/*'
  flavours templates alacritty/default --format long
  flavours templates '*/*' --effective --paths
  flavours templates --format long --sort modified --order desc`,
	RunE: runTemplates,
}

func init() {
	rootCmd.AddCommand(templatesCmd)

	templatesCmd.Flags().StringVar(&templatesOpts.format, "format", "lines",
		"Output format (plain, lines, long, json)")
	templatesCmd.Flags().BoolVar(&templatesOpts.effective, "effective", false,
		"Only show the template that takes precedence for each name")
	templatesCmd.Flags().BoolVarP(&templatesOpts.paths, "paths", "p", false,
		"Print paths instead of family/subtemplate names")
	templatesCmd.Flags().StringVar(&templatesOpts.template, "template", "",
		"Go template for the lines format (fields: Name, Path, Origin, Size, ModTime)")
	templatesCmd.Flags().StringVar(&templatesOpts.sort, "sort", "",
		"Sort by field (name, path, modified); default is resolution order")
	templatesCmd.Flags().StringVar(&templatesOpts.order, "order", "asc",
		"Sort order (asc, desc)")
}

func runTemplates(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(templatesOpts.format)
	if err != nil {
		return err
	}

	paths, err := resolver.Templates(patternsOrAll(args)...)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return errors.New("no matching template found")
	}

	resources, err := describe(model.KindTemplate, paths)
	if err != nil {
		return err
	}
	if templatesOpts.effective {
		resources = core.Effective(resources)
	}
	if templatesOpts.sort != "" {
		core.Sort(resources, sortOptions(templatesOpts.sort, templatesOpts.order))
	}

	f := output.NewFormatter(format, output.FormatterOptions{
		Template: templatesOpts.template,
		ShowPath: templatesOpts.paths,
		Color:    useColor(cmd),
	})
	return f.Format(cmd.OutOrStdout(), resources)
}
