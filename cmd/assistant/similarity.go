package main

import (
	"fmt"

	"github.com/jonathan/application-assistant/internal/similarity"
	"github.com/spf13/cobra"
)

func newSimilarityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "similarity TEXT_A TEXT_B",
		Short: "Print the word-overlap similarity of two texts",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%.4f\n", similarity.Jaccard(args[0], args[1]))
			return err
		},
	}
}
