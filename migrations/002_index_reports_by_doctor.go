package migrations

import (
	"ClinicRecords/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var reportsByDoctor = Migration{
	Name:       "002_index_reports_by_doctor",
	Collection: store.ReportCollection,
	Index: mongo.IndexModel{
		Keys:    bson.D{{Key: "doctorId", Value: 1}},
		Options: options.Index().SetName("doctorId"),
	},
}
