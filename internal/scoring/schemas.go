package scoring

// Response schemas for the scoring backend, validated before decoding so a
// misbehaving upstream surfaces as a DecodeError instead of silent zero
// values.

const skillExtractionSchema = `{
  "type": "object",
  "required": ["categorizedSkills"],
  "properties": {
    "categorizedSkills": {
      "type": "object",
      "additionalProperties": {
        "type": "array",
        "items": {"type": "string"}
      }
    }
  }
}`

const matchResultSchema = `{
  "type": "object",
  "required": ["score"],
  "properties": {
    "score": {"type": "number", "minimum": 0},
    "matchedSkills": {"type": "array", "items": {"type": "string"}},
    "missingSkills": {"type": "array", "items": {"type": "string"}}
  }
}`

const analysisAckSchema = `{
  "type": "object",
  "required": ["status"],
  "properties": {
    "status": {"type": "string"}
  }
}`

const jobScoresSchema = `{
  "type": "object",
  "required": ["scores"],
  "properties": {
    "scores": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["cv", "score"],
        "properties": {
          "cv": {"type": "string"},
          "score": {"type": "number", "minimum": 0}
        }
      }
    }
  }
}`
