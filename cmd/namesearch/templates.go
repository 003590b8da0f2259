package main

import (
	"fmt"
	"maps"
	"strings"

	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/analysis"
	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/phonetic"
	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/searcher/parser"
	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/searcher/templates"
	"github.com/spf13/cobra"
)

func newTemplatesCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Work with search query templates",
	}
	cmd.AddCommand(newTemplatesValidateCmd(opts))
	return cmd
}

func newTemplatesValidateCmd(opts *rootOptions) *cobra.Command {
	var tokens map[string]string
	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Parse every template with placeholder field values",
		Long: `Parse every template in the search queries file and build its query
with a placeholder value for each search field. Template parameters are
substituted from search.personDefaults in the config, overridden by --token.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			path := cfg.Search.TemplatesPath
			if len(args) == 1 {
				path = args[0]
			}
			store, err := templates.Load(path)
			if err != nil {
				return err
			}

			values := maps.Clone(cfg.Search.PersonDefaults)
			if values == nil {
				values = make(map[string]string)
			}
			maps.Copy(values, tokens)

			interp := parser.NewInterpreter(analysis.NewKeyCache(phonetic.New(), 0))
			out := cmd.OutOrStdout()
			all := store.All()
			failed := 0
			for _, t := range all {
				query := parser.ReplaceTokens(t.Query, values)
				if err := interp.Validate(query); err != nil {
					failed++
					fmt.Fprintf(out, "FAIL  %s: %v\n", t.Name, err)
					continue
				}
				fields, _ := parser.SearchFields(query)
				fmt.Fprintf(out, "ok    %s -> %s [%s]\n", t.Name, t.TargetIndex, strings.Join(fields, ", "))
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d templates are invalid", failed, len(all))
			}
			fmt.Fprintf(out, "%d templates valid\n", len(all))
			return nil
		},
	}
	cmd.Flags().StringToStringVar(&tokens, "token", nil, "template parameter as Name=Value (repeatable)")
	return cmd
}
