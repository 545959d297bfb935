// Package schema validates raw game file data against embedded CUE schemas
// before any derivation runs. Validation is structural only; the engine's
// fail-soft numeric handling still applies downstream.
package schema

import (
	"embed"
	"fmt"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

//go:embed schemas/*.cue
var schemaFS embed.FS

// ValidationError represents a single schema violation in a game file.
type ValidationError struct {
	File     string
	Message  string
	Severity string // error, warning
	Line     int
	Column   int
}

// Validator handles CUE validation of game files.
type Validator struct {
	ctx     *cue.Context
	schemas map[string]cue.Value
}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{
		ctx:     cuecontext.New(),
		schemas: make(map[string]cue.Value),
	}
}

// LoadSchemas compiles all CUE schema files from the embedded filesystem.
func (v *Validator) LoadSchemas() error {
	entries, err := schemaFS.ReadDir("schemas")
	if err != nil {
		return fmt.Errorf("could not read embedded schemas: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".cue" {
			continue
		}
		content, err := schemaFS.ReadFile(filepath.Join("schemas", entry.Name()))
		if err != nil {
			continue
		}

		inst := v.ctx.CompileBytes(content, cue.Filename(entry.Name()))
		if inst.Err() != nil {
			continue
		}

		// game.cue -> game
		schemaName := entry.Name()[:len(entry.Name())-4]
		v.schemas[schemaName] = inst.Value()
	}

	if len(v.schemas) == 0 {
		return fmt.Errorf("no CUE schemas loaded")
	}

	return nil
}

// ValidateGame validates decoded game file data against the game schema.
// A nil error with a non-empty slice means the data is structurally invalid;
// callers decide whether to reject the file or continue.
func (v *Validator) ValidateGame(data map[string]any) ([]ValidationError, error) {
	schema, ok := v.schemas["game"]
	if !ok {
		// No schema loaded; skip structural validation.
		return nil, nil
	}
	return v.validateAgainstSchema(schema, data, "Game")
}

func (v *Validator) validateAgainstSchema(schema cue.Value, data map[string]any, defName string) ([]ValidationError, error) {
	dataValue := v.ctx.Encode(data)
	if encErr := dataValue.Err(); encErr != nil {
		return nil, fmt.Errorf("error encoding data: %w", encErr)
	}

	def := schema.LookupPath(cue.ParsePath("#" + defName))
	if !def.Exists() {
		return nil, nil
	}

	unified := def.Unify(dataValue)
	if err := unified.Err(); err != nil {
		return v.extractErrorsFromCUE(err), nil
	}

	// Concreteness catches missing required fields.
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return v.extractErrorsFromCUE(err), nil
	}

	return nil, nil
}

func (v *Validator) extractErrorsFromCUE(err error) []ValidationError {
	return []ValidationError{{
		Message:  fmt.Sprintf("schema validation failed: %v", err),
		Severity: "error",
	}}
}
