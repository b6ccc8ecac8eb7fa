package columns

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrMalformedMapping = errors.New("malformed column mapping")

// Binding ties a logical field name to a 1-based column.
type Binding struct {
	Field  string
	Column int
}

// OutputBinding is a Binding with the header label written above the column.
type OutputBinding struct {
	Binding
	Header string
}

// ParseInput parses "field/column,field/column,...".
func ParseInput(s string) ([]Binding, error) {
	var bindings []Binding

	for i, item := range splitItems(s) {
		parts := strings.Split(item, "/")
		if len(parts) != 2 {
			return nil, fmt.Errorf("%w: item #%d %q: want field/column", ErrMalformedMapping, i+1, item)
		}

		b, err := parseBinding(parts[0], parts[1])
		if err != nil {
			return nil, fmt.Errorf("%w: item #%d %q: %w", ErrMalformedMapping, i+1, item, err)
		}

		bindings = append(bindings, b)
	}

	return bindings, nil
}

// ParseOutput parses "field/column/header,...". The header may itself contain '/'.
func ParseOutput(s string) ([]OutputBinding, error) {
	var bindings []OutputBinding

	for i, item := range splitItems(s) {
		parts := strings.SplitN(item, "/", 3)
		if len(parts) != 3 {
			return nil, fmt.Errorf("%w: item #%d %q: want field/column/header", ErrMalformedMapping, i+1, item)
		}

		b, err := parseBinding(parts[0], parts[1])
		if err != nil {
			return nil, fmt.Errorf("%w: item #%d %q: %w", ErrMalformedMapping, i+1, item, err)
		}

		bindings = append(bindings, OutputBinding{Binding: b, Header: strings.TrimSpace(parts[2])})
	}

	return bindings, nil
}

// InputOf turns output bindings into input bindings, so a written table can be
// decoded with the mapping that produced it.
func InputOf(bindings []OutputBinding) []Binding {
	in := make([]Binding, 0, len(bindings))
	for _, b := range bindings {
		in = append(in, b.Binding)
	}
	return in
}

func parseBinding(field, column string) (Binding, error) {
	field = strings.TrimSpace(field)
	if field == "" {
		return Binding{}, errors.New("empty field name")
	}

	col, err := strconv.Atoi(strings.TrimSpace(column))
	if err != nil {
		return Binding{}, fmt.Errorf("invalid column: %w", err)
	}

	if col < 1 {
		return Binding{}, fmt.Errorf("column %d is not positive", col)
	}

	return Binding{Field: field, Column: col}, nil
}

func splitItems(s string) []string {
	var items []string
	for item := range strings.SplitSeq(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
