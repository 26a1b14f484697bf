// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Assessment is the predicate function for assessment builders.
type Assessment func(*sql.Selector)

// Item is the predicate function for item builders.
type Item func(*sql.Selector)

// Submission is the predicate function for submission builders.
type Submission func(*sql.Selector)
