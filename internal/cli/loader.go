package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/basaltql/basalt"
)

// Document is the YAML description of one query descriptor.
//
// Example:
//
//	table: Person
//	select: [id, age]
//	filter:
//	  - column: name
//	    value: Bill
//	order_by:
//	  - column: name
//	  - column: age
//	    desc: true
type Document struct {
	Table   string       `yaml:"table"`
	Select  []string     `yaml:"select,omitempty"`
	Filter  []FilterSpec `yaml:"filter,omitempty"`
	OrderBy []OrderSpec  `yaml:"order_by,omitempty"`
}

// FilterSpec is one equality constraint in a Document.
// Value may be a string, integer, float, boolean, or null.
type FilterSpec struct {
	Column string `yaml:"column"`
	Value  any    `yaml:"value"`
}

// OrderSpec is one order key in a Document. Ascending unless desc is set.
type OrderSpec struct {
	Column string `yaml:"column"`
	Desc   bool   `yaml:"desc,omitempty"`
}

// LoadError represents an error that occurred while loading a document.
type LoadError struct {
	Code    string
	Message string
	File    string // Document path if known
}

func (e *LoadError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s: %s: %s", e.File, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Error code constants - unified across all CLI commands.
const (
	ErrCodeGeneric         = "E001" // Generic/unknown error
	ErrCodeNotFound        = "E002" // Document file not found or unreadable
	ErrCodeParseFailed     = "E003" // YAML parse failed or unknown fields present
	ErrCodeInvalidDocument = "E004" // Document does not describe a valid query
)

// LoadDocument reads and parses a query document from path.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Code:    ErrCodeNotFound,
			Message: fmt.Sprintf("reading document: %v", err),
			File:    path,
		}
	}

	doc, err := ParseDocument(data)
	if err != nil {
		var loadErr *LoadError
		if errors.As(err, &loadErr) {
			loadErr.File = path
		}
		return nil, err
	}
	return doc, nil
}

// ParseDocument parses a query document from YAML bytes.
// Unknown fields are rejected so typos surface at load time.
func ParseDocument(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, &LoadError{
			Code:    ErrCodeParseFailed,
			Message: fmt.Sprintf("parsing document: %v", err),
		}
	}
	return &doc, nil
}

// Query assembles the document into a descriptor through the public builder.
// Every configuration step goes through basalt's own operations, so a
// document round-trips to exactly the query a caller would build by hand.
func (d *Document) Query() (basalt.Query, error) {
	q, err := basalt.New(d.Table)
	if err != nil {
		return basalt.Query{}, &LoadError{
			Code:    ErrCodeInvalidDocument,
			Message: err.Error(),
		}
	}

	if len(d.Select) > 0 {
		q = q.Select(d.Select...)
	}

	for _, f := range d.Filter {
		v, err := basalt.FromGo(f.Value)
		if err != nil {
			return basalt.Query{}, &LoadError{
				Code:    ErrCodeInvalidDocument,
				Message: fmt.Sprintf("filter on %q: %v", f.Column, err),
			}
		}
		q = q.Filter(basalt.Eq(f.Column, v))
	}

	for _, o := range d.OrderBy {
		if o.Desc {
			q = q.OrderByDesc(o.Column)
		} else {
			q = q.OrderBy(o.Column)
		}
	}

	return q, nil
}
