package llm

import "strings"

// ExtractJSONObject returns the outermost {...} span of a model reply.
// Code fences and chatter around the object are dropped with it. A reply
// without an object is returned trimmed.
func ExtractJSONObject(reply string) string {
	reply = strings.TrimSpace(reply)
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start == -1 || end <= start {
		return reply
	}
	return reply[start : end+1]
}
