package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/phonetic"
	"github.com/spf13/cobra"
)

func newEncodeCmd() *cobra.Command {
	var (
		keyLength int
		vowels    bool
		exact     bool
	)
	cmd := &cobra.Command{
		Use:   "encode <name>...",
		Short: "Print the Metaphone 3 keys of each word",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := phonetic.New(
				phonetic.WithKeyLength(keyLength),
				phonetic.WithVowels(vowels),
				phonetic.WithExact(exact),
			)
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "WORD\tPRIMARY\tSECONDARY")
			for _, arg := range args {
				for _, word := range strings.Fields(arg) {
					keys, err := enc.Encode(word)
					if err != nil {
						return err
					}
					fmt.Fprintf(tw, "%s\t%s\t%s\n", word, keys.Primary, keys.Secondary)
				}
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVar(&keyLength, "key-length", phonetic.DefaultKeyLength, "maximum key length (1-32)")
	cmd.Flags().BoolVar(&vowels, "vowels", false, "encode non-initial vowels")
	cmd.Flags().BoolVar(&exact, "exact", false, "distinguish voiced and unvoiced consonants")
	return cmd
}
