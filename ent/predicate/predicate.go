// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ReviewSession is the predicate function for reviewsession builders.
type ReviewSession func(*sql.Selector)

// Verse is the predicate function for verse builders.
type Verse func(*sql.Selector)
