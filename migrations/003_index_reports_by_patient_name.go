package migrations

import (
	"ClinicRecords/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// The history search matches substrings, so this index only helps exact and
// prefix lookups made directly against the database.
var reportsByPatientName = Migration{
	Name:       "003_index_reports_by_patient_name",
	Collection: store.ReportCollection,
	Index: mongo.IndexModel{
		Keys:    bson.D{{Key: "patientName", Value: 1}},
		Options: options.Index().SetName("patientName"),
	},
}
