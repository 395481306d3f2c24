package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/j81a/TarotGemini/internal/adapters/decks"
	"github.com/j81a/TarotGemini/internal/domain"
)

var cartasFlags struct {
	arcana string
}

var cartasCmd = &cobra.Command{
	Use:   "cartas",
	Short: "Lista las cartas del mazo",
	RunE:  runCartas,
}

func init() {
	f := cartasCmd.Flags()
	f.StringVar(&cartasFlags.arcana, "arcana", "", "Filtra por arcano (major, minor)")
}

func runCartas(cmd *cobra.Command, _ []string) error {
	store := decks.NewEmbeddedStore()
	cards, err := store.Catalog(cmd.Context())
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, c := range cards {
		if cartasFlags.arcana != "" && string(c.Arcana) != cartasFlags.arcana {
			continue
		}
		suit := ""
		if c.Arcana == domain.ArcanaMinor {
			suit = " [" + string(c.Suit) + "]"
		}
		fmt.Fprintf(out, "%-4s %s%s\n", c.ID, c.Name, suit)
		fmt.Fprintf(out, "     normal: %s\n", c.Upright)
		fmt.Fprintf(out, "     invertida: %s\n", c.Reversed)
	}
	return nil
}
