package sheetson

import (
	"encoding/json"
	"strings"
)

// WhereClause is a filter expression serialized into the "where" query
// parameter of SearchRows. Use Where to build it column by column, or
// RawWhere to pass a pre-serialized JSON document.
type WhereClause interface {
	whereJSON() (string, error)
}

// Where maps a column name to a condition: a literal value (equality) or a
// set of comparison operators built with Gt, Gte, Lt, Lte, Ne and In.
// Conditions on distinct columns are combined with AND by the service.
type Where map[string]Condition

func (w Where) whereJSON() (string, error) {
	data, err := json.Marshal(w)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// MarshalJSON serializes the filter tree into the JSON document the service
// expects, e.g. {"country":"USA","population":{"$gte":1000000}}.
func (w Where) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(w))
	for col, cond := range w {
		if cond == nil {
			m[col] = nil
			continue
		}
		m[col] = cond.conditionValue()
	}
	return json.Marshal(m)
}

// RawWhere is a pre-serialized where document passed to the service as-is.
type RawWhere string

func (r RawWhere) whereJSON() (string, error) {
	return strings.TrimSpace(string(r)), nil
}

// Condition is one of two variants: a literal equality built with Eq, or an
// operator set built with the comparison constructors.
type Condition interface {
	conditionValue() any
}

type literal struct {
	value any
}

func (l literal) conditionValue() any {
	return l.value
}

// Eq matches rows whose column equals value.
func Eq(value any) Condition {
	return literal{value: value}
}

// Operators is a set of comparison operators applied to one column. The
// constructors return an *Operators so clauses can be chained, e.g.
// sheetson.Gte(10).Lte(30).
type Operators struct {
	clauses map[string]any
}

func (o *Operators) conditionValue() any {
	return o.clauses
}

func (o *Operators) add(op string, value any) *Operators {
	if o.clauses == nil {
		o.clauses = make(map[string]any)
	}
	o.clauses[op] = value
	return o
}

// Gt matches values greater than value.
func Gt(value any) *Operators { return new(Operators).add("$gt", value) }

// Gte matches values greater than or equal to value.
func Gte(value any) *Operators { return new(Operators).add("$gte", value) }

// Lt matches values less than value.
func Lt(value any) *Operators { return new(Operators).add("$lt", value) }

// Lte matches values less than or equal to value.
func Lte(value any) *Operators { return new(Operators).add("$lte", value) }

// Ne matches values not equal to value.
func Ne(value any) *Operators { return new(Operators).add("$ne", value) }

// In matches values contained in the given list.
func In(values ...any) *Operators { return new(Operators).add("$in", values) }

// Gt adds a $gt clause to the operator set.
func (o *Operators) Gt(value any) *Operators { return o.add("$gt", value) }

// Gte adds a $gte clause to the operator set.
func (o *Operators) Gte(value any) *Operators { return o.add("$gte", value) }

// Lt adds a $lt clause to the operator set.
func (o *Operators) Lt(value any) *Operators { return o.add("$lt", value) }

// Lte adds a $lte clause to the operator set.
func (o *Operators) Lte(value any) *Operators { return o.add("$lte", value) }

// Ne adds a $ne clause to the operator set.
func (o *Operators) Ne(value any) *Operators { return o.add("$ne", value) }

// In adds an $in clause to the operator set.
func (o *Operators) In(values ...any) *Operators { return o.add("$in", values) }
