package skills

import "regexp"

// contextPatterns lists, per high-collision token, the surrounding phrases
// that mark it as a programming language. Text is matched lowercased.
var contextPatterns = map[string][]*regexp.Regexp{
	"r": compileAll(
		`\br\s+(?:programming|language|script|statistical|data|analysis)`,
		`(?:programming|language|statistical|data)\s+(?:with\s+)?r\b`,
		`\br\s+(?:studio|packages|cran)`,
		`(?:ggplot|dplyr|tidyverse|shiny).*r\b`,
		`\br\b.*(?:statistical|analytics|visualization)`,
		`(?:experience|proficient|skilled)\s+(?:in\s+)?r\b`,
		`\br\s+(?:/|and|or)\s+python`,
		`python\s+(?:/|and|or)\s+r\b`,
	),
	"c": compileAll(
		`\bc\s+(?:programming|language)`,
		`(?:programming|language)\s+(?:in\s+)?c\b`,
		`\bc\s+(?:/|and|or)\s+c\+\+`,
		`c\+\+\s+(?:/|and|or)\s+c\b`,
		`(?:experience|proficient|skilled)\s+(?:in\s+)?c\b`,
		`\bc\s+(?:development|coding)`,
		`(?:embedded|system)\s+(?:programming\s+)?(?:in\s+)?c\b`,
	),
	"go": compileAll(
		`\bgo\s+(?:programming|language|lang)`,
		`(?:programming|language)\s+(?:in\s+)?go\b`,
		`golang\b`,
		`\bgo\s+(?:development|coding)`,
		`(?:experience|proficient|skilled)\s+(?:in\s+)?go\b`,
		`\bgo\s+(?:/|and|or)\s+(?:python|java|rust)`,
		`(?:python|java|rust)\s+(?:/|and|or)\s+go\b`,
		`google\s+go\b`,
	),
}

func compileAll(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, regexp.MustCompile(e))
	}
	return out
}

// IsAmbiguous reports whether token is only accepted with programming context
func IsAmbiguous(token string) bool {
	_, ok := contextPatterns[token]
	return ok
}

// inProgrammingContext reports whether any context pattern for token matches text
func inProgrammingContext(token, text string) bool {
	for _, re := range contextPatterns[token] {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}
