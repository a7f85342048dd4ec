package agent

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	finalAnswerRegex = regexp.MustCompile(`(?s)Final\s+Answer\s*:\s*(.*)`)
	actionRegex      = regexp.MustCompile(`(?s)Action\s*:\s*(.+?)\s*\nAction\s+Input\s*:\s*(.*)`)
)

// step is one parsed model output: either a tool invocation or a final reply.
type step struct {
	final     bool
	answer    string
	tool      string
	toolInput string
}

// parseOutput classifies raw model text as a final answer or an action
// request. Unrecognizable output is an error; the loop converts it into the
// fallback reply.
func parseOutput(text string) (*step, error) {
	if m := finalAnswerRegex.FindStringSubmatch(text); m != nil {
		return &step{final: true, answer: cleanAnswer(m[1])}, nil
	}

	if m := actionRegex.FindStringSubmatch(text); m != nil {
		tool := strings.TrimSpace(m[1])
		input := cleanCommand(m[2])
		if tool == "" || input == "" {
			return nil, fmt.Errorf("empty action or action input in model output")
		}
		return &step{tool: tool, toolInput: input}, nil
	}

	return nil, fmt.Errorf("could not parse model output: %q", truncate(text, 200))
}

func cleanAnswer(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "`")
	// Models occasionally bracket the answer as in the format example.
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	return strings.TrimSpace(s)
}

// cleanCommand strips code fences and quoting the model sometimes wraps
// around generated SQL, and keeps only the first reasoning block if the model
// ran ahead of its stop sequence.
func cleanCommand(s string) string {
	if idx := strings.Index(s, "\nObservation"); idx >= 0 {
		s = s[:idx]
	}
	if idx := strings.Index(s, "\nThought"); idx >= 0 {
		s = s[:idx]
	}
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```sql")
	s = strings.Trim(s, "`")
	s = strings.TrimSpace(s)
	// Strip only a matched pair of wrapping quotes; a trailing quote may
	// belong to a SQL string literal.
	if len(s) >= 2 && (s[0] == '\'' || s[0] == '"') && s[len(s)-1] == s[0] {
		s = s[1 : len(s)-1]
	}
	return strings.TrimSpace(s)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
