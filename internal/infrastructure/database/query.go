package database

import "go.mongodb.org/mongo-driver/bson"

// Filter is an exact-match document filter. Only field equality is supported:
// no ranges, regexes or sorting. The zero value matches every document.
type Filter struct {
	fields bson.D
}

// NewFilter returns an empty filter.
func NewFilter() Filter {
	return Filter{}
}

// Eq adds a field == value condition.
func (f Filter) Eq(field string, value interface{}) Filter {
	next := make(bson.D, len(f.fields), len(f.fields)+1)
	copy(next, f.fields)
	f.fields = append(next, bson.E{Key: field, Value: value})
	return f
}

// EqIfSet adds field == value only when value is non-empty.
func (f Filter) EqIfSet(field, value string) Filter {
	if value == "" {
		return f
	}
	return f.Eq(field, value)
}

// Len returns the number of conditions.
func (f Filter) Len() int {
	return len(f.fields)
}

// BSON renders the filter for the driver.
func (f Filter) BSON() bson.D {
	if f.fields == nil {
		return bson.D{}
	}
	return f.fields
}

// Fields is the set of fields a partial update overwrites.
type Fields struct {
	set bson.D
}

// NewFields returns an empty update set.
func NewFields() Fields {
	return Fields{}
}

// Set overwrites field with value.
func (f Fields) Set(field string, value interface{}) Fields {
	next := make(bson.D, len(f.set), len(f.set)+1)
	copy(next, f.set)
	f.set = append(next, bson.E{Key: field, Value: value})
	return f
}

// Empty reports whether nothing would be written.
func (f Fields) Empty() bool {
	return len(f.set) == 0
}

// BSON renders the $set update document.
func (f Fields) BSON() bson.D {
	return bson.D{{Key: "$set", Value: f.set}}
}
