package llm

// timelineSchema is the JSON Schema every model-generated timeline must
// satisfy before it replaces the local engine's projection.
const timelineSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["timeline"],
  "properties": {
    "timeline": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["year", "happiness_score"],
        "properties": {
          "year": {"type": "integer"},
          "salary": {"type": "number", "minimum": 0},
          "happiness_score": {"type": "number", "minimum": 0, "maximum": 10},
          "major_event": {"type": ["string", "null"]},
          "location": {"type": ["string", "null"]},
          "career_title": {"type": ["string", "null"]}
        }
      }
    }
  }
}`
