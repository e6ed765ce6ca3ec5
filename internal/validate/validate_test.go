package validate

import (
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name: "test-answer",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"questionId": map[string]any{"type": "integer", "minimum": 1, "maximum": 20},
				"type":       map[string]any{"type": "string", "enum": []any{"D", "I", "S", "C"}},
			},
			"required": []any{"questionId"},
		},
	}
}

func TestJSON_Valid(t *testing.T) {
	if err := JSON(testSchema(), []byte(`{"questionId":3,"type":"D"}`)); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestJSON_NilSchema(t *testing.T) {
	if err := JSON(nil, []byte(`not json`)); err != nil {
		t.Fatalf("nil schema should accept anything, got: %v", err)
	}
}

func TestJSON_InvalidJSON(t *testing.T) {
	err := JSON(testSchema(), []byte(`{"questionId":`))
	var invalid *InvalidDocumentError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected *InvalidDocumentError, got %T: %v", err, err)
	}
	if invalid.Schema != "test-answer" {
		t.Errorf("schema = %q", invalid.Schema)
	}
}

func TestJSON_SchemaViolation(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing required", `{"type":"D"}`},
		{"out of range", `{"questionId":21}`},
		{"bad enum", `{"questionId":1,"type":"X"}`},
		{"not integer", `{"questionId":1.5}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := JSON(testSchema(), []byte(tt.raw))
			var invalid *InvalidDocumentError
			if !errors.As(err, &invalid) {
				t.Fatalf("expected *InvalidDocumentError, got %v", err)
			}
		})
	}
}

func TestValue(t *testing.T) {
	type answer struct {
		QuestionID int    `json:"questionId"`
		Type       string `json:"type"`
	}
	if err := Value(testSchema(), answer{QuestionID: 2, Type: "S"}); err != nil {
		t.Errorf("expected valid, got %v", err)
	}
	if err := Value(testSchema(), answer{QuestionID: 0, Type: "S"}); err == nil {
		t.Error("expected error for questionId 0")
	}
}
