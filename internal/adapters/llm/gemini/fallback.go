package gemini

import (
	"fmt"
	"regexp"
	"strings"
)

// cardLine matches the "Carta: <name>" lines the verbose prompt emits.
var cardLine = regexp.MustCompile(`(?m)^Carta: ([^\n(]+)$`)

// Fallback synthesizes an offline interpretation from the prompt text. It
// is a pure function, never fails, and performs no I/O: the floor under
// the whole client when the network or the key is unavailable.
func Fallback(promptText string) string {
	matches := cardLine.FindAllStringSubmatch(promptText, -1)

	var names []string
	seen := make(map[string]bool)
	for _, m := range matches {
		name := strings.TrimSpace(m[1])
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}

	if len(names) == 0 {
		return "Las cartas invitan a una pausa: respira, observa tu pregunta con calma y confía en lo que ya intuyes. " +
			"Este momento pide reflexión más que respuestas inmediatas; vuelve a consultar cuando sientas claridad."
	}

	return fmt.Sprintf(
		"En tu tirada aparecen %s. Estas cartas sugieren un momento de transición: honra lo que termina, "+
			"observa con honestidad tu presente y da espacio a lo que comienza. Tómalas como un espejo para la reflexión, "+
			"no como un destino cerrado; la decisión sigue siendo tuya.",
		joinNames(names),
	)
}

func joinNames(names []string) string {
	switch len(names) {
	case 1:
		return names[0]
	case 2:
		return names[0] + " y " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " y " + names[len(names)-1]
	}
}
