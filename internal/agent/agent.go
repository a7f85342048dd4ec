// Package agent drives the reason/act/observe loop that turns a freeform
// message into data commands and a reply.
package agent

import (
	"context"
	"fmt"
	"log"
	"strings"

	"ledgerbot/internal/memory"
)

// FallbackReply is returned whenever the loop cannot produce an answer.
const FallbackReply = "An error occurred while processing your request"

const toolName = "execute_sql_query"

// Completer is the model call: prompt in, text out.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Gateway executes one data command for an owner and reports the result as
// text.
type Gateway interface {
	Execute(ctx context.Context, command, ownerID string) string
}

type Agent struct {
	llm      Completer
	gateway  Gateway
	memory   *memory.Window
	maxSteps int
}

func New(llm Completer, gw Gateway, mem *memory.Window, maxSteps int) *Agent {
	if maxSteps <= 0 {
		maxSteps = 8
	}
	return &Agent{
		llm:      llm,
		gateway:  gw,
		memory:   mem,
		maxSteps: maxSteps,
	}
}

// Process interprets one message for ownerID and always returns a complete
// reply string; every failure inside the loop collapses into FallbackReply.
// The exchange is recorded in conversation memory either way.
func (a *Agent) Process(ctx context.Context, ownerID, input string) string {
	reply, err := a.run(ctx, ownerID, input)
	if err != nil {
		log.Printf("agent: %v", err)
		reply = FallbackReply
	}

	a.memory.Append(ownerID, memory.SpeakerUser, input)
	a.memory.Append(ownerID, memory.SpeakerBot, reply)
	return reply
}

func (a *Agent) run(ctx context.Context, ownerID, input string) (string, error) {
	history := renderHistory(a.memory.Recent(ownerID))

	var scratchpad strings.Builder
	for i := 0; i < a.maxSteps; i++ {
		user := fmt.Sprintf(inputTemplate, history, ownerID, input, scratchpad.String())

		out, err := a.llm.Complete(ctx, SystemPrompt, user)
		if err != nil {
			return "", fmt.Errorf("model call failed: %w", err)
		}

		parsed, err := parseOutput(out)
		if err != nil {
			return "", err
		}

		if parsed.final {
			return parsed.answer, nil
		}

		var observation string
		if parsed.tool != toolName {
			observation = fmt.Sprintf("%s is not a valid tool, try execute_sql_query", parsed.tool)
		} else {
			observation = a.gateway.Execute(ctx, parsed.toolInput, ownerID)
		}

		scratchpad.WriteString(strings.TrimSpace(out))
		scratchpad.WriteString("\nObservation: ")
		scratchpad.WriteString(observation)
		scratchpad.WriteString("\n")
	}

	return "", fmt.Errorf("no final answer after %d steps", a.maxSteps)
}

func renderHistory(turns []memory.Turn) string {
	if len(turns) == 0 {
		return "(no previous conversation)"
	}

	var b strings.Builder
	for _, t := range turns {
		b.WriteString(t.Speaker)
		b.WriteString(": ")
		b.WriteString(t.Text)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
