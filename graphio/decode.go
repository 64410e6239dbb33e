package graphio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// tagNodeRange is the custom validation tag for endpoints outside 1..Nodes.
const tagNodeRange = "noderange"

// validate is a singleton validator instance with the document rules registered.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(validateDocument, Document{})

	return v
}

// validateDocument reports links and queries whose endpoints fall outside 1..Nodes.
func validateDocument(sl validator.StructLevel) {
	doc := sl.Current().Interface().(Document)
	limit := strconv.Itoa(doc.Nodes)
	inRange := func(id int) bool { return id >= 1 && id <= doc.Nodes }

	for i, l := range doc.Links {
		if !inRange(l.A) {
			sl.ReportError(l.A, fmt.Sprintf("Links[%d].A", i), "A", tagNodeRange, limit)
		}
		if !inRange(l.B) {
			sl.ReportError(l.B, fmt.Sprintf("Links[%d].B", i), "B", tagNodeRange, limit)
		}
	}
	for i, q := range doc.Queries {
		if !inRange(q.From) {
			sl.ReportError(q.From, fmt.Sprintf("Queries[%d].From", i), "From", tagNodeRange, limit)
		}
		if !inRange(q.To) {
			sl.ReportError(q.To, fmt.Sprintf("Queries[%d].To", i), "To", tagNodeRange, limit)
		}
	}
}

// Decode reads one YAML scenario document from r and validates it.
// Unknown keys are rejected.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty input", ErrDecode)
		}
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if err := Validate(&doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

// Load opens path and decodes it with Decode.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: open scenario: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Validate checks struct tags and node-range rules of doc.
func Validate(doc *Document) error {
	if doc == nil {
		return ErrNilDocument
	}
	if err := validate.Struct(doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, formatValidationError(err))
	}

	return nil
}

// formatValidationError converts the first validator error to a readable message.
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	for _, e := range validationErrs {
		field := e.Namespace()
		switch e.Tag() {
		case "min":
			return fmt.Errorf("%s: must be at least %s, got %v", field, e.Param(), e.Value())
		case "max":
			return fmt.Errorf("%s: must be at most %s, got %v", field, e.Param(), e.Value())
		case tagNodeRange:
			return fmt.Errorf("%s: node %v outside 1..%s", field, e.Value(), e.Param())
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, e.Tag())
		}
	}

	return err
}
