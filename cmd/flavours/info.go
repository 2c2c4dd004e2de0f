package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/flavours/internal/adapter/output"
	"github.com/jmylchreest/flavours/internal/model"
)

var infoOpts struct {
	raw  bool
	json bool
}

var infoCmd = &cobra.Command{
	Use:   "info [pattern...]",
	Short: "Show scheme colors for all schemes matching pattern",
	Long: `Show the name, author, file and sixteen colors of every scheme matching
the given patterns. Colors are drawn as swatches unless --raw is given or
output is not a terminal.

Examples:
  flavours info ocean
  flavours info 'solarized-*' --raw
  flavours info ocean --json`,
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().BoolVarP(&infoOpts.raw, "raw", "r", false,
		"Don't pretty print the colors")
	infoCmd.Flags().BoolVar(&infoOpts.json, "json", false,
		"Output schemes as JSON")
}

func runInfo(cmd *cobra.Command, args []string) error {
	paths, err := resolver.Schemes(patternsOrAll(args)...)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return errors.New("no matching scheme found")
	}

	color := !infoOpts.raw && useColor(cmd)
	w := cmd.OutOrStdout()

	var schemes []*model.Scheme
	printed := 0
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read scheme: %w", err)
		}
		scheme, err := model.ParseScheme(model.SchemeName(path), data)
		if err != nil {
			logger.Warn("skipping invalid scheme", "path", path, "error", err)
			continue
		}

		if infoOpts.json {
			schemes = append(schemes, scheme)
			continue
		}
		if printed > 0 {
			fmt.Fprintln(w)
		}
		if err := output.FormatScheme(w, scheme, path, color); err != nil {
			return err
		}
		printed++
	}

	if infoOpts.json {
		if schemes == nil {
			schemes = []*model.Scheme{}
		}
		return output.FormatValue(w, schemes)
	}
	return nil
}
