package ai

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// candidateSchema constrains the normalizer's output: a single flat object
// of optional strings. additionalProperties stays open so a chatty model
// adding extra keys does not cost us the whole response.
func candidateSchema() map[string]any {
	str := map[string]any{"type": "string"}
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name":              str,
			"email":             str,
			"phone":             str,
			"location":          str,
			"linkedinUrl":       str,
			"summary":           str,
			"areasOfExpertise":  str,
			"qualifications":    str,
			"experience":        str,
			"education":         str,
			"skills":            str,
			"languages":         str,
			"currentJobTitle":   str,
			"yearsOfExperience": str,
			"expectedSalary":    str,
		},
	}
}

// ValidateCandidateJSON validates normalizer output against the candidate
// schema.
func ValidateCandidateJSON(data []byte) error {
	b, err := json.Marshal(candidateSchema())
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("candidate.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("candidate.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
