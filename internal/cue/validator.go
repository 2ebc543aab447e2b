package cue

import (
	"embed"
	"fmt"
	"path"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

//go:embed schemas/*.cue
var schemaFS embed.FS

// ValidationError represents a single schema violation in a document.
type ValidationError struct {
	File    string
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.File == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.File, e.Message)
}

// Validator handles CUE validation
type Validator struct {
	ctx     *cue.Context
	schemas map[string]cue.Value
}

// NewValidator creates a new Validator instance
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
		if entry.IsDir() || path.Ext(entry.Name()) != ".cue" {
			continue
		}

		// embed.FS paths are always slash-separated
		content, err := schemaFS.ReadFile(path.Join("schemas", entry.Name()))
		if err != nil {
			return fmt.Errorf("could not read schema %s: %w", entry.Name(), err)
		}

		inst := v.ctx.CompileBytes(content, cue.Filename(entry.Name()))
		if instErr := inst.Err(); instErr != nil {
			return fmt.Errorf("could not compile schema %s: %w", entry.Name(), instErr)
		}

		// config.cue -> config
		schemaName := strings.TrimSuffix(entry.Name(), ".cue")
		v.schemas[schemaName] = inst.Value()
	}

	if len(v.schemas) == 0 {
		return fmt.Errorf("no CUE schemas found")
	}

	return nil
}

// ValidateConfig validates a raw configuration document against #Config.
// file is only used to label the returned errors.
func (v *Validator) ValidateConfig(file string, data map[string]any) ([]ValidationError, error) {
	schema, ok := v.schemas["config"]
	if !ok {
		return nil, fmt.Errorf("config schema not loaded")
	}
	return v.validateAgainstSchema(schema, file, data, "config")
}

// validateAgainstSchema unifies data with the #<SchemaType> definition of schema.
func (v *Validator) validateAgainstSchema(schema cue.Value, file string, data map[string]any, schemaType string) ([]ValidationError, error) {
	dataValue := v.ctx.Encode(data)
	if encErr := dataValue.Err(); encErr != nil {
		return nil, fmt.Errorf("error encoding data: %w", encErr)
	}

	defPath := cue.ParsePath(fmt.Sprintf("#%s", strings.ToUpper(schemaType[:1])+schemaType[1:]))
	def := schema.LookupPath(defPath)
	if !def.Exists() {
		return nil, fmt.Errorf("schema definition %s not found", defPath)
	}

	unified := def.Unify(dataValue)
	if err := unified.Err(); err != nil {
		return extractErrors(file, err), nil
	}

	// Concreteness catches missing required fields
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return extractErrors(file, err), nil
	}

	return nil, nil
}

// extractErrors splits a CUE error list into one ValidationError per entry.
func extractErrors(file string, err error) []ValidationError {
	var errs []ValidationError
	for _, e := range cueerrors.Errors(err) {
		format, args := e.Msg()
		msg := fmt.Sprintf(format, args...)

		// Drop the #Config definition from the reported path
		p := e.Path()
		if len(p) > 0 && strings.HasPrefix(p[0], "#") {
			p = p[1:]
		}
		if len(p) > 0 {
			msg = strings.Join(p, ".") + ": " + msg
		}

		errs = append(errs, ValidationError{File: file, Message: msg})
	}
	if len(errs) == 0 {
		errs = append(errs, ValidationError{File: file, Message: err.Error()})
	}
	return errs
}
