// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Chapter is the predicate function for chapter builders.
type Chapter func(*sql.Selector)

// Feedback is the predicate function for feedback builders.
type Feedback func(*sql.Selector)

// Keyword is the predicate function for keyword builders.
type Keyword func(*sql.Selector)

// Story is the predicate function for story builders.
type Story func(*sql.Selector)
