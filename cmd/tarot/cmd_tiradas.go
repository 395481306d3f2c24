package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/j81a/TarotGemini/internal/domain"
)

var tiradasCmd = &cobra.Command{
	Use:   "tiradas",
	Short: "Lista las tiradas disponibles",
	RunE:  runTiradas,
}

func runTiradas(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	for _, s := range domain.Spreads() {
		fmt.Fprintf(out, "%-14s %s (%d cartas)\n", s.ID, s.Name, s.CardCount)
		for _, p := range s.Positions {
			fmt.Fprintf(out, "  %2d. %s\n", p.Index+1, p.Meaning)
		}
	}
	return nil
}
