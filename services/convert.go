package services

import (
	"ClinicRecords/store"

	"go.mongodb.org/mongo-driver/bson"
)

// toDocument converts a tagged record into a store document through its bson tags.
func toDocument(v interface{}) (store.Document, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	doc := bson.M{}
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return store.Document(doc), nil
}

func fromDocument(doc store.Document, out interface{}) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, out)
}

// decodeAll decodes every record, handing each key to setKey.
func decodeAll[T any](records []store.Record, setKey func(*T, string)) ([]T, error) {
	out := make([]T, 0, len(records))
	for _, r := range records {
		var v T
		if err := fromDocument(r.Doc, &v); err != nil {
			return nil, err
		}
		if setKey != nil {
			setKey(&v, r.Key)
		}
		out = append(out, v)
	}
	return out, nil
}
