package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection names, one per entity kind.
const (
	PatientCollection     = "patients"
	DoctorCollection      = "doctors"
	AppointmentCollection = "appointments"
	ReportCollection      = "patientReports"
)

// ErrUnavailable wraps every failure of the underlying database.
var ErrUnavailable = errors.New("record store unavailable")

// Document is the field set of a single stored record, without its key.
type Document = map[string]interface{}

// Record is a document together with the key it is stored under.
type Record struct {
	Key string
	Doc Document
}

// Predicate is a single field equality condition used by QueryEqual.
type Predicate struct {
	Field string
	Value interface{}
}

// Eq builds a Predicate.
func Eq(field string, value interface{}) Predicate {
	return Predicate{Field: field, Value: value}
}

// Store is the key-value collection contract the repositories are written against.
//
// Get reports an absent key as (nil, false, nil). Put overwrites the whole
// document. Merge upserts field by field: fields missing from partial are kept
// and nested documents merge recursively. QueryEqual ANDs its predicates and
// returns every record when none are given; results carry no ordering.
type Store interface {
	Get(ctx context.Context, collection, key string) (Document, bool, error)
	Put(ctx context.Context, collection, key string, doc Document) error
	Merge(ctx context.Context, collection, key string, partial Document) error
	Delete(ctx context.Context, collection, key string) error
	QueryEqual(ctx context.Context, collection string, preds ...Predicate) ([]Record, error)
}

func unavailable(op, collection string, err error) error {
	return fmt.Errorf("%w: %s %s: %v", ErrUnavailable, op, collection, err)
}

// asDocument returns v as a Document when it is any map form of a sub-document.
func asDocument(v interface{}) (Document, bool) {
	switch m := v.(type) {
	case map[string]interface{}:
		return m, true
	case primitive.M:
		return Document(m), true
	case primitive.D:
		return Document(m.Map()), true
	default:
		return nil, false
	}
}
