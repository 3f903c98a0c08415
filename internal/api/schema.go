package api

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const quizSchemaURL = "schema://quiz-response.json"

// quizSchema describes the structure of a successful POST /api/quiz
// payload. "questions" may be absent or null, which renders as an empty
// quiz. answer_index is left unconstrained; see QuizQuestion.
var quizSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"questions": map[string]any{
			"type": []any{"array", "null"},
			"items": map[string]any{
				"type":     "object",
				"required": []any{"question"},
				"properties": map[string]any{
					"question": map[string]any{"type": "string"},
					"options": map[string]any{
						"type":  []any{"array", "null"},
						"items": map[string]any{"type": "string"},
					},
				},
			},
		},
	},
}

var (
	compileOnce  sync.Once
	compiledQuiz *jsonschema.Schema
	compileErr   error
)

func compiledQuizSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a plain decoded JSON value, not Go literals.
		defBytes, err := json.Marshal(quizSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal quiz schema: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(defBytes, &def); err != nil {
			compileErr = fmt.Errorf("parse quiz schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(quizSchemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledQuiz, compileErr = c.Compile(quizSchemaURL)
	})
	return compiledQuiz, compileErr
}

// validateQuizPayload checks raw against the quiz response schema.
func validateQuizPayload(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	sch, err := compiledQuizSchema()
	if err != nil {
		return fmt.Errorf("compile quiz schema: %w", err)
	}
	if err := sch.Validate(parsed); err != nil {
		return fmt.Errorf("quiz schema validation failed: %w", err)
	}
	return nil
}
