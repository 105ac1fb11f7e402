package chat

import "regexp"

const defaultSystemPrompt = "You are a friendly, concise assistant for the Digital Responsibility Index website. " +
	"Note: 'DRG' always means Digital Responsibility Goal (not group). " +
	"Your job is to: (1) help users provide actionable feedback on the evaluation, and " +
	"(2) answer questions about the website, the evaluation flow, indicators/DRGs " +
	"(including brief overviews of any DRG 1-7), and Identity Valley. " +
	"Stay within those topics; if something is clearly out of scope, gently say so. " +
	"Ask at most one short clarifying question, and only when needed to help. " +
	"Keep answers brief (1-3 sentences), warm in tone, and avoid links."

// goalSummaries are the one-line Digital Responsibility Goal descriptions
// injected into the system prompt when a goal is in context or mentioned.
var goalSummaries = map[string]string{ //nolint:gochecknoglobals
	"1": "Digital Literacy: Prerequisite for sovereign, self-determined use of digital tech; competent access and skills.",
	"2": "Cybersecurity: Protects systems and users/data across lifecycle; prerequisite for responsible operation.",
	"3": "Privacy: Human dignity and self-determination; purpose limitation and data minimization; control and accountability.",
	"4": "Data Fairness: Protect non-personal data, enable transfer/applicability; balanced cooperation in ecosystems.",
	"5": "Trustworthy Algorithms: Data processing must be trustworthy from simple to autonomous systems.",
	"6": "Transparency: Proactive transparency of principles, solutions, and components for all stakeholders.",
	"7": "Human Agency & Identity: Protect identity, preserve human responsibility; human-centered, inclusive, ethical, sustainable.",
}

// goalMentionPatterns map user phrasings to goal codes. The numbered pattern
// captures the code itself; the named ones are fixed.
var goalMentionPatterns = []struct { //nolint:gochecknoglobals
	re   *regexp.Regexp
	goal string
}{
	{regexp.MustCompile(`(?i)\bdrg\s*#?\s*([1-7])\b`), ""},
	{regexp.MustCompile(`(?i)\bdigital\s+literacy\b`), "1"},
	{regexp.MustCompile(`(?i)\bcyber\s*security\b`), "2"},
	{regexp.MustCompile(`(?i)\bprivacy\b`), "3"},
	{regexp.MustCompile(`(?i)\bdata\s+fairness\b`), "4"},
	{regexp.MustCompile(`(?i)\btrustworthy\s+algorithms?\b`), "5"},
	{regexp.MustCompile(`(?i)\btransparency\b`), "6"},
	{regexp.MustCompile(`(?i)\bhuman\s+agency(\s+and\s+identity)?\b`), "7"},
}

// detectGoalMention finds the first goal a user message refers to, either by
// number ("DRG 3") or by name ("privacy").
func detectGoalMention(message string) (string, bool) {
	if message == "" {
		return "", false
	}

	for _, p := range goalMentionPatterns {
		m := p.re.FindStringSubmatch(message)
		if m == nil {
			continue
		}

		if p.goal != "" {
			return p.goal, true
		}
		return m[1], true
	}

	return "", false
}
