package exercises

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/lernbox/lernbox/internal/catalog"
)

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// compiledBankSchema compiles the bank schema once and caches it.
func compiledBankSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any),
		// not raw bytes. Marshal then unmarshal to get a clean any
		// representation.
		b, err := json.Marshal(bankSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal bank schema: %w", err)
			return
		}
		var parsed any
		if err := json.Unmarshal(b, &parsed); err != nil {
			compileErr = fmt.Errorf("parse bank schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://exercise-bank.json"
		if err := c.AddResource(schemaURL, parsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// Parse validates raw JSON against the bank schema plus the semantic
// checks, then decodes it into a Bank.
func Parse(raw []byte) (*Bank, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := compiledBankSchema()
	if err != nil {
		return nil, fmt.Errorf("compile bank schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var bank Bank
	if err := json.Unmarshal(raw, &bank); err != nil {
		return nil, fmt.Errorf("decode bank: %w", err)
	}

	if err := checkBank(&bank); err != nil {
		return nil, err
	}
	return &bank, nil
}

// LoadFile parses and validates an exercise bank file.
func LoadFile(path string) (*Bank, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank file: %w", err)
	}
	bank, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return bank, nil
}

// checkBank runs the semantic checks the JSON schema cannot express:
// unique IDs, catalog references, and choice/answer consistency.
func checkBank(bank *Bank) error {
	seen := make(map[string]bool, len(bank.Exercises))
	for i := range bank.Exercises {
		e := &bank.Exercises[i]

		if seen[e.ID] {
			return fmt.Errorf("duplicate exercise ID %q", e.ID)
		}
		seen[e.ID] = true

		if _, ok := catalog.ThemeByID(e.ThemeID); !ok {
			return fmt.Errorf("exercise %q references unknown theme %q", e.ID, e.ThemeID)
		}

		switch e.Format {
		case FormatMultipleChoice:
			if len(e.Choices) < 2 {
				return fmt.Errorf("exercise %q: multiple choice needs at least 2 choices", e.ID)
			}
			found := false
			for _, c := range e.Choices {
				if c == e.Answer {
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("exercise %q: answer %q is not among the choices", e.ID, e.Answer)
			}
		case FormatTextInput:
			if len(e.Choices) > 0 {
				return fmt.Errorf("exercise %q: text input must not have choices", e.ID)
			}
		default:
			return fmt.Errorf("exercise %q: unknown format %q", e.ID, e.Format)
		}
	}
	return nil
}
