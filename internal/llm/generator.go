package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"lifecast/internal/types"
)

// timelineResponse is the shape the model is asked to return.
type timelineResponse struct {
	Timeline []types.TimelinePoint `json:"timeline"`
}

// InvalidOutputError reports model output that failed schema validation.
type InvalidOutputError struct {
	Problems []string
}

func (e *InvalidOutputError) Error() string {
	return fmt.Sprintf("model output failed schema validation: %s", strings.Join(e.Problems, "; "))
}

// Timeline asks the model for a yearly projection of one choice and
// validates the response against the timeline schema before decoding it.
// Any error means the caller should fall back to the local engine.
func (c *Client) Timeline(ctx context.Context, choice types.Choice, user types.UserContext, years int) ([]types.TimelinePoint, error) {
	raw, err := c.generateJSON(ctx, timelinePrompt(choice, user, years))
	if err != nil {
		return nil, fmt.Errorf("timeline generation: %w", err)
	}

	if err := validateTimelineJSON(raw); err != nil {
		return nil, err
	}

	var resp timelineResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil, fmt.Errorf("decode timeline: %w", err)
	}

	if len(resp.Timeline) == 0 {
		return nil, fmt.Errorf("model returned an empty timeline")
	}
	return resp.Timeline, nil
}

// timelinePrompt builds a compact prompt; the heavy lifting is the JSON
// response schema, not prose.
func timelinePrompt(choice types.Choice, user types.UserContext, years int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Project a realistic %d-year career and life-quality timeline for this decision.\n\n", years)
	fmt.Fprintf(&sb, "Decision: %s - %s (category: %s)\n", choice.Title, choice.Description, choice.Category)
	fmt.Fprintf(&sb, "Context: age %s, location %s, salary %s, education %s\n\n",
		orUnknown(user.Age), orUnknown(user.CurrentLocation),
		orUnknown(user.CurrentSalary), orUnknown(user.EducationLevel))
	sb.WriteString(`Return ONLY a JSON object of the form:
{"timeline":[{"year":2026,"salary":75000,"happiness_score":7.5,"major_event":"Started new position","location":"City","career_title":"Job Title"}]}
`)
	fmt.Fprintf(&sb, "with exactly %d entries, consecutive years, happiness_score between 1 and 10.\n", years)
	return sb.String()
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}

// validateTimelineJSON checks the raw model output against the embedded schema.
func validateTimelineJSON(raw string) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(timelineSchema),
		gojsonschema.NewStringLoader(raw),
	)
	if err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}

	if !result.Valid() {
		problems := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			problems = append(problems, desc.String())
		}
		return &InvalidOutputError{Problems: problems}
	}
	return nil
}
