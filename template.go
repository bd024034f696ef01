package main

import (
	"fmt"
	"strings"
)

// formatTemplate substitutes every $KEY$ placeholder in template with the
// matching value. The scan is a single forward pass over bytes: a '$' with
// no closing '$' before the end of the string is kept literally, and an
// inserted value is never rescanned for further placeholders.
func formatTemplate(template string, values map[string]string) (string, error) {
	var out strings.Builder
	out.Grow(len(template))

	i := 0
	for i < len(template) {
		if template[i] != '$' {
			out.WriteByte(template[i])
			i++
			continue
		}

		rel := strings.IndexByte(template[i+1:], '$')
		if rel < 0 {
			// Unterminated placeholder, the '$' is just text.
			out.WriteByte('$')
			i++
			continue
		}

		key := template[i+1 : i+1+rel]
		value, ok := values[key]
		if !ok {
			return "", fmt.Errorf("failed to template substitute for key '%s'", key)
		}

		out.WriteString(value)
		i += rel + 2
	}

	return out.String(), nil
}
