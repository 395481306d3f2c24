package gemini

import "strings"

// The response envelope has gone through several incompatible generations.
// extractText probes the known shapes in order instead of trusting any
// single schema:
//
//  1. candidates[0].content (object with parts, direct text/output, or list)
//  2. outputs[0].content, same recursive shape
//  3. top-level "output" string
//  4. top-level "content", same recursive shape
//
// ok is false when no probe yields non-blank text; callers then fall back
// to the raw body.
func extractText(root any) (text, finishReason string, ok bool) {
	m, isObj := root.(map[string]any)
	if !isObj {
		if txt := extractNode(root); txt != "" {
			return txt, "", true
		}
		return "", "", false
	}

	for _, key := range []string{"candidates", "outputs"} {
		list, isList := m[key].([]any)
		if !isList || len(list) == 0 {
			continue
		}
		first, isObj := list[0].(map[string]any)
		if !isObj {
			continue
		}
		reason, _ := first["finishReason"].(string)
		if txt := extractNode(first["content"]); txt != "" {
			return txt, reason, true
		}
	}

	if s, isStr := m["output"].(string); isStr && strings.TrimSpace(s) != "" {
		return strings.TrimSpace(s), "", true
	}
	if txt := extractNode(m["content"]); txt != "" {
		return txt, "", true
	}
	return "", "", false
}

// extractNode recursively recovers text from a polymorphic content node,
// discriminating on the parsed JSON kind: a string is the text itself, an
// object yields its parts/text/output, a list concatenates its elements
// joined by newline.
func extractNode(node any) string {
	switch v := node.(type) {
	case string:
		return strings.TrimSpace(v)
	case map[string]any:
		if parts, isList := v["parts"].([]any); isList {
			if txt := extractNode(parts); txt != "" {
				return txt
			}
		}
		if s, isStr := v["text"].(string); isStr && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
		if s, isStr := v["output"].(string); isStr && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
		return ""
	case []any:
		pieces := make([]string, 0, len(v))
		for _, elem := range v {
			if txt := extractNode(elem); txt != "" {
				pieces = append(pieces, txt)
			}
		}
		return strings.Join(pieces, "\n")
	default:
		return ""
	}
}
