package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifecast/internal/types"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", `{"timeline":[]}`, `{"timeline":[]}`},
		{"json fence", "```json\n{\"timeline\":[]}\n```", `{"timeline":[]}`},
		{"bare fence", "```\n{\"timeline\":[]}\n```", `{"timeline":[]}`},
		{"surrounding whitespace", "  {\"timeline\":[]}  ", `{"timeline":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanJSONBlock(tt.input))
		})
	}
}

func TestValidateTimelineJSON_Valid(t *testing.T) {
	raw := `{"timeline":[
		{"year":2026,"salary":95000,"happiness_score":7.5,"major_event":"Promotion","location":"Chicago","career_title":"Engineer"},
		{"year":2027,"happiness_score":7.8}
	]}`
	assert.NoError(t, validateTimelineJSON(raw))
}

func TestValidateTimelineJSON_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing timeline", `{}`},
		{"empty timeline", `{"timeline":[]}`},
		{"missing year", `{"timeline":[{"happiness_score":7.5}]}`},
		{"missing happiness", `{"timeline":[{"year":2026}]}`},
		{"happiness out of range", `{"timeline":[{"year":2026,"happiness_score":11}]}`},
		{"negative salary", `{"timeline":[{"year":2026,"happiness_score":7,"salary":-5}]}`},
		{"year not integer", `{"timeline":[{"year":"2026","happiness_score":7}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTimelineJSON(tt.raw)
			require.Error(t, err)

			var invalid *InvalidOutputError
			assert.ErrorAs(t, err, &invalid)
			assert.NotEmpty(t, invalid.Problems)
		})
	}
}

func TestValidateTimelineJSON_Malformed(t *testing.T) {
	err := validateTimelineJSON("not json at all")
	assert.Error(t, err)
}

func TestTimelinePrompt(t *testing.T) {
	choice := types.Choice{Title: "Go back to school", Description: "Part-time MBA", Category: "education"}
	user := types.UserContext{Age: "28", CurrentLocation: "Boston"}

	prompt := timelinePrompt(choice, user, 10)
	assert.Contains(t, prompt, "Go back to school")
	assert.Contains(t, prompt, "Part-time MBA")
	assert.Contains(t, prompt, "education")
	assert.Contains(t, prompt, "age 28")
	assert.Contains(t, prompt, "Boston")
	assert.Contains(t, prompt, "10-year")
	assert.Contains(t, prompt, "happiness_score")

	// Absent context fields are named rather than left blank.
	prompt = timelinePrompt(choice, types.UserContext{}, 5)
	assert.Contains(t, prompt, "unknown")
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := NewClient(context.Background(),"", "")
	assert.Error(t, err)
}
