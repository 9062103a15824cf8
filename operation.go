package invoice

import (
	"fmt"
	"strconv"
	"strings"
)

// OpKind identifies the kind of an Operation.
type OpKind int

const (
	OpAdd OpKind = iota
	OpUpdate
	OpRemove
)

func (k OpKind) String() string {
	switch k {
	case OpAdd:
		return "add"
	case OpUpdate:
		return "set"
	case OpRemove:
		return "rm"
	default:
		return "unknown"
	}
}

// Operation is one user input event on a ledger.
type Operation struct {
	Kind  OpKind
	ID    int    // target item, unused by add
	Field Field  // set only
	Value string // raw input, set only
}

func Add() Operation          { return Operation{Kind: OpAdd} }
func Remove(id int) Operation { return Operation{Kind: OpRemove, ID: id} }

func Update(id int, f Field, value string) Operation {
	return Operation{Kind: OpUpdate, ID: id, Field: f, Value: value}
}

// Apply returns the ledger resulting from the operation.
func (o Operation) Apply(l Ledger) Ledger {
	switch o.Kind {
	case OpAdd:
		return l.Add()
	case OpUpdate:
		return l.Update(o.ID, o.Field, o.Value)
	case OpRemove:
		return l.Remove(o.ID)
	default:
		return l
	}
}

// String returns the operation in the editor syntax accepted by ParseOperation.
func (o Operation) String() string {
	switch o.Kind {
	case OpAdd:
		return "add"
	case OpUpdate:
		return fmt.Sprintf("set %d %s %s", o.ID, o.Field, o.Value)
	case OpRemove:
		return fmt.Sprintf("rm %d", o.ID)
	default:
		return "unknown"
	}
}

// ParseOperation parses one line of the editor syntax:
//
//	add
//	set <id> <field> <value...>
//	rm <id>
//
// The value of a set is the rest of the line after the field, with a single
// separating space removed, so descriptions may contain spaces and keep their
// trailing spaces. A missing value sets the empty string.
func ParseOperation(line string) (Operation, error) {
	line = strings.TrimLeft(line, " \t")
	verb, rest, _ := strings.Cut(line, " ")
	verb = strings.TrimRight(verb, " \t\r\n")
	rest = strings.TrimLeft(rest, " ")

	switch strings.ToLower(verb) {
	case "add":
		if rest = strings.TrimSpace(rest); rest != "" {
			return Operation{}, fmt.Errorf("add takes no argument, got %q", rest)
		}
		return Add(), nil

	case "rm", "remove", "del", "delete":
		id, err := parseID(rest)
		if err != nil {
			return Operation{}, err
		}
		return Remove(id), nil

	case "set", "update":
		idText, rest, _ := strings.Cut(rest, " ")
		id, err := parseID(idText)
		if err != nil {
			return Operation{}, err
		}
		rest = strings.TrimLeft(rest, " ")
		fieldText, value, _ := strings.Cut(rest, " ")
		if fieldText == "" {
			return Operation{}, fmt.Errorf("missing field in %q", line)
		}
		f, err := ParseField(fieldText)
		if err != nil {
			return Operation{}, err
		}
		return Update(id, f, value), nil

	case "":
		return Operation{}, fmt.Errorf("empty operation")
	default:
		return Operation{}, fmt.Errorf("unknown operation %q", verb)
	}
}

func parseID(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("missing item id")
	}
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid item id %q: %w", s, err)
	}
	return id, nil
}
