package llm

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
)

const (
	ApologySummary  = "I apologize, but I couldn't generate a response. Please try again."
	FallbackSummary = "Unable to process the response."
)

// Apology is returned when the model produced no content at all.
func Apology() Answer {
	return Answer{Summary: ApologySummary, Bullets: []string{}}
}

// ParseAnswer validates raw model output against the answer schema. The
// payload must be a single JSON object; each known field, when present and
// not null, must have the right type. Unknown fields are ignored.
func ParseAnswer(content string) (Answer, error) {
	raw := stripFence(strings.TrimSpace(content))
	if raw == "" {
		return Apology(), nil
	}

	var fields map[string]json.RawMessage
	dec := json.NewDecoder(strings.NewReader(raw))
	if err := dec.Decode(&fields); err != nil {
		return Answer{}, malformed("response is not a JSON object: %v", err)
	}
	if fields == nil {
		return Answer{}, malformed("response is null")
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Answer{}, malformed("unexpected data after JSON object")
	}

	ans := Answer{Summary: FallbackSummary, Bullets: []string{}}

	if v, ok := present(fields, "summary"); ok {
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return Answer{}, malformed("summary must be a string")
		}
		if strings.TrimSpace(s) != "" {
			ans.Summary = strings.TrimSpace(s)
		}
	}

	if v, ok := present(fields, "bullets"); ok {
		var items []json.RawMessage
		if err := json.Unmarshal(v, &items); err != nil {
			return Answer{}, malformed("bullets must be an array")
		}
		for i, item := range items {
			var b string
			if err := json.Unmarshal(item, &b); err != nil || isNull(item) {
				return Answer{}, malformed("bullets[%d] must be a string", i)
			}
			if b = strings.TrimSpace(b); b != "" {
				ans.Bullets = append(ans.Bullets, b)
			}
		}
	}

	if v, ok := present(fields, "hasAnswer"); ok {
		if err := json.Unmarshal(v, &ans.HasAnswer); err != nil {
			return Answer{}, malformed("hasAnswer must be a boolean")
		}
	}
	return ans, nil
}

func present(fields map[string]json.RawMessage, key string) (json.RawMessage, bool) {
	v, ok := fields[key]
	if !ok || isNull(v) {
		return nil, false
	}
	return v, true
}

func isNull(v json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}

// stripFence removes a single surrounding markdown code fence.
func stripFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	} else {
		return ""
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
