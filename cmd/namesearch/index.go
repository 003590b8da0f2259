package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/analysis"
	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/phonetic"
	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/searcher"
	"github.com/Adithya-Monish-Kumar-K/namesearch/pkg/config"
	"github.com/spf13/cobra"
)

func newIndexCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index",
		Short: "Offline index maintenance",
		Long: `Offline index maintenance. Indexes are locked by the process that
opens them, so stop the searcher before running these commands.`,
	}
	cmd.AddCommand(newIndexInspectCmd(opts), newIndexOptimizeCmd(opts))
	return cmd
}

type indexSummary struct {
	Name           string            `json:"indexName"`
	DocumentCount  uint64            `json:"documentCount"`
	FirstDocuments []searcher.Result `json:"firstDocuments"`
}

func newIndexInspectCmd(opts *rootOptions) *cobra.Command {
	var first int
	cmd := &cobra.Command{
		Use:   "inspect <index>",
		Short: "Print the document count and first documents of an index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			factory, err := openFactory(cfg)
			if err != nil {
				return err
			}
			defer factory.Close()

			sc, err := factory.CreateSearchContext(args[0])
			if err != nil {
				return err
			}
			defer sc.Close()
			count, err := sc.GetDocumentCount()
			if err != nil {
				return err
			}
			docs, err := sc.GetFirstResults(first)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(indexSummary{Name: sc.IndexName(), DocumentCount: count, FirstDocuments: docs})
		},
	}
	cmd.Flags().IntVar(&first, "first", 5, "number of documents to print")
	return cmd
}

func newIndexOptimizeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "optimize <index>",
		Short: "Merge an index down to a single segment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			factory, err := openFactory(cfg)
			if err != nil {
				return err
			}
			defer factory.Close()

			sc, err := factory.CreateSearchContext(args[0])
			if err != nil {
				return err
			}
			defer sc.Close()
			start := time.Now()
			if err := sc.Optimize(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "optimized %s in %s\n", sc.IndexName(), time.Since(start).Round(time.Millisecond))
			return nil
		},
	}
}

func openFactory(cfg *config.Config) (*searcher.Factory, error) {
	keys := analysis.NewKeyCache(phonetic.New(phonetic.WithKeyLength(cfg.Index.KeyLength)), cfg.Index.KeyCacheSize)
	synonyms, err := analysis.LoadSynonyms(cfg.Index.SynonymsPath)
	if err != nil {
		return nil, err
	}
	analyzers, err := analysis.NewAnalyzers(keys, synonyms)
	if err != nil {
		return nil, err
	}
	// No background optimize while the command runs.
	cfg.Index.OptimizeInterval = 0
	return searcher.NewFactory(cfg.Index, analyzers)
}
