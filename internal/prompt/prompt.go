// Package prompt renders questions and drawn cards into text prompts for
// the generation backend. Builders are pure functions of their input.
package prompt

import (
	"fmt"
	"strings"

	"github.com/j81a/TarotGemini/internal/domain"
)

// Builder renders prompts for a full spread or a single card.
type Builder interface {
	BuildSpread(question string, cards []domain.DrawnCard) string
	BuildCard(card domain.DrawnCard) string
}

// Orientation returns the Spanish orientation label used in prompts.
func Orientation(reversed bool) string {
	if reversed {
		return "Invertida"
	}
	return "Normal"
}

// Verbose emits a structured-context prompt: persona preamble, the quoted
// question, one block per card, and closing instructions.
type Verbose struct{}

func (Verbose) BuildSpread(question string, cards []domain.DrawnCard) string {
	var b strings.Builder
	b.WriteString("Actúa como una tarotista experimentada, empática y cercana.\n")
	fmt.Fprintf(&b, "El consultante pregunta: \"%s\"\n\n", question)
	b.WriteString("Cartas de la tirada:\n")

	for i, card := range cards {
		fmt.Fprintf(&b, "\nCarta %d:\n", i+1)
		fmt.Fprintf(&b, "Posición: %s\n", card.PositionMeaning)
		fmt.Fprintf(&b, "Carta: %s\n", card.Name)
		fmt.Fprintf(&b, "Orientación: %s\n", Orientation(card.IsReversed))
		fmt.Fprintf(&b, "Significado: %s\n", card.Meaning())
	}

	b.WriteString("\nOfrece:\n")
	b.WriteString("1. Una interpretación general de la tirada.\n")
	b.WriteString("2. Las relaciones entre las cartas.\n")
	b.WriteString("3. Un mensaje final para el consultante.\n")
	b.WriteString("Devuelve únicamente el texto de la interpretación, sin encabezados y sin repetir la pregunta.")
	return b.String()
}

func (Verbose) BuildCard(card domain.DrawnCard) string {
	var b strings.Builder
	b.WriteString("Actúa como una tarotista experimentada y cercana.\n")
	b.WriteString("Explica el significado de una sola carta.\n\n")
	fmt.Fprintf(&b, "Carta: %s\n", card.Name)
	fmt.Fprintf(&b, "Orientación: %s\n", Orientation(card.IsReversed))
	fmt.Fprintf(&b, "Significado tradicional: %s\n", card.Meaning())
	b.WriteString("\nDevuelve únicamente una explicación breve de esta carta, sin encabezados.")
	return b.String()
}

// Compact emits a single-line prompt to minimize token cost. Same
// information content as Verbose, stricter output-shape instruction.
type Compact struct{}

func (Compact) BuildSpread(question string, cards []domain.DrawnCard) string {
	entries := make([]string, len(cards))
	for i, card := range cards {
		entries[i] = fmt.Sprintf("%d)%s(%s)", i+1, card.Name, compactOrientation(card.IsReversed))
	}
	return fmt.Sprintf(
		"PREGUNTA: %s | CARTAS: %s | RESPONDE: interpretación en una sola línea, máximo 600 caracteres, sin razonamiento ni metadatos",
		question, strings.Join(entries, ";"),
	)
}

func (Compact) BuildCard(card domain.DrawnCard) string {
	return fmt.Sprintf(
		"CARTA: %s(%s) | RESPONDE: significado en una sola línea, máximo 600 caracteres, sin razonamiento ni metadatos",
		card.Name, compactOrientation(card.IsReversed),
	)
}

func compactOrientation(reversed bool) string {
	if reversed {
		return "Inv"
	}
	return "Up"
}

// ByStyle resolves a builder from its configured name. Unknown styles fall
// back to the verbose builder.
func ByStyle(style string) Builder {
	if strings.EqualFold(style, "compact") {
		return Compact{}
	}
	return Verbose{}
}
