package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "tarot",
	Short: "Lecturas de tarot con interpretación generativa",
	Long: "tarot hace una tirada de cartas para una pregunta y pide la\n" +
		"interpretación a un modelo generativo; sin clave de API responde\n" +
		"con una interpretación local.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	rootCmd.AddCommand(leerCmd)
	rootCmd.AddCommand(tiradasCmd)
	rootCmd.AddCommand(cartasCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
