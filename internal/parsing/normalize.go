package parsing

import "strings"

// normalizePhrase lowercases s and collapses runs of whitespace
func normalizePhrase(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// wordCount returns the number of whitespace-separated words in s
func wordCount(s string) int {
	return len(strings.Fields(s))
}

// dedupeCapped keeps the first occurrence of every non-empty item, stopping
// once limit items are collected.
func dedupeCapped(items []string, limit int) []string {
	out := make([]string, 0, min(len(items), limit))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if len(out) >= limit {
			break
		}
		if item == "" {
			continue
		}
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
