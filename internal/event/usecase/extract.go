package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"event-calendar-webhook/internal/model"
	"event-calendar-webhook/pkg/datemath"
	"event-calendar-webhook/pkg/log"
	"event-calendar-webhook/pkg/openrouter"
)

var (
	codeFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")
	thinkRe     = regexp.MustCompile(`(?s)^\s*<think>.*?</think>`)
)

// Extractor asks the LLM for an ExtractedEvent.
type Extractor struct {
	l     log.Logger
	llm   openrouter.IOpenRouter
	clock *datemath.Clock
}

// NewExtractor creates an Extractor. clock decides the fallback date.
func NewExtractor(l log.Logger, llm openrouter.IOpenRouter, clock *datemath.Clock) *Extractor {
	return &Extractor{l: l, llm: llm, clock: clock}
}

// Extract sends one chat-completion request for prompt. A reply that does not
// decode into a valid event yields the fallback record and a nil error.
// Transport and API failures are returned.
func (e *Extractor) Extract(ctx context.Context, prompt string) (model.Extraction, error) {
	resp, err := e.llm.ChatCompletion(ctx, &openrouter.Request{
		Model: e.llm.Model(),
		Messages: []openrouter.Message{
			{Role: openrouter.RoleSystem, Content: SystemPrompt},
			{Role: openrouter.RoleUser, Content: prompt},
		},
	})
	if err != nil {
		return model.Extraction{}, err
	}

	reply, err := resp.Text()
	if err != nil {
		return model.Extraction{}, err
	}
	reply = strings.TrimSpace(reply)

	ev, err := parseEvent(reply)
	if err != nil {
		e.l.Warnf(ctx, "event.usecase.Extract: using fallback event: %v. Raw=%q", err, reply)
		return model.Extraction{
			Event:  model.FallbackEvent(e.clock.Today()),
			Source: model.SourceFallback,
			Reason: err.Error(),
		}, nil
	}

	return model.Extraction{Event: ev, Source: model.SourceModel}, nil
}

// parseEvent decodes and validates the model reply.
func parseEvent(reply string) (model.ExtractedEvent, error) {
	cleaned := sanitizeJSONResponse(reply)
	if cleaned == "" {
		return model.ExtractedEvent{}, fmt.Errorf("empty reply")
	}

	var ev model.ExtractedEvent
	if err := json.Unmarshal([]byte(cleaned), &ev); err != nil {
		return model.ExtractedEvent{}, fmt.Errorf("failed to parse LLM JSON response: %w", err)
	}

	ev.Recurrence = model.Recurrence(strings.ToUpper(strings.TrimSpace(string(ev.Recurrence))))
	ev.Attendees = cleanAttendees(ev.Attendees)

	if err := ev.Validate(); err != nil {
		return model.ExtractedEvent{}, err
	}
	return ev, nil
}

// sanitizeJSONResponse removes a leading <think> block, markdown code fences
// and prose that LLMs often add around JSON output. A reply that is already
// valid JSON is returned as is, so fences inside string values survive.
func sanitizeJSONResponse(text string) string {
	text = strings.TrimSpace(thinkRe.ReplaceAllString(text, ""))
	if json.Valid([]byte(text)) {
		return text
	}

	if matches := codeFenceRe.FindStringSubmatch(text); len(matches) > 1 {
		if fenced := strings.TrimSpace(matches[1]); json.Valid([]byte(fenced)) {
			return fenced
		}
	}

	start := strings.Index(text, "{")
	if start == -1 {
		return text
	}
	end := strings.LastIndex(text, "}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}

func cleanAttendees(in []string) []string {
	out := make([]string, 0, len(in))
	for _, a := range in {
		if a = strings.TrimSpace(a); a != "" {
			out = append(out, a)
		}
	}
	return out
}
