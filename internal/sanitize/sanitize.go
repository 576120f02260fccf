// Package sanitize очищает строки, пришедшие снаружи, до одного допустимого алфавита.
package sanitize

import "regexp"

var disallowed = regexp.MustCompile(`[^\w\s_.:!@#-]`)

// String удаляет все символы вне [\w\s_.:!@#-].
func String(s string) string {
	return disallowed.ReplaceAllString(s, "")
}

// Strings применяет String к каждому элементу.
func Strings(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = String(v)
	}
	return out
}
