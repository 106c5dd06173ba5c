package tw

import "strings"

// Arbitrary formats a value for use inside bracket notation. Tailwind reads
// underscores as spaces, so whitespace runs are collapsed to a single "_".
func Arbitrary(value string) string {
	return strings.Join(strings.Fields(value), "_")
}

// Bracket builds an arbitrary-value class: Bracket("md:", "pl", "16px") → "md:pl-[16px]".
func Bracket(prefix, prop, value string) string {
	if value == "" {
		return ""
	}
	return prefix + prop + "-[" + Arbitrary(value) + "]"
}

// Token builds a scale class. A negative value moves the sign in front of the
// utility: Token("md:", "rotate", "-45") → "md:-rotate-45".
func Token(prefix, prop, value string) string {
	if value == "" {
		return ""
	}
	if strings.HasPrefix(value, "-") {
		return prefix + "-" + prop + "-" + strings.TrimPrefix(value, "-")
	}
	return prefix + prop + "-" + value
}

// Dedupe drops repeated class names, keeping the first occurrence.
func Dedupe(classes []string) []string {
	seen := make(map[string]struct{}, len(classes))
	out := make([]string, 0, len(classes))
	for _, c := range classes {
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// Join space-joins class names, skipping empty entries.
func Join(classes []string) string {
	var b strings.Builder
	for _, c := range classes {
		if c == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c)
	}
	return b.String()
}
