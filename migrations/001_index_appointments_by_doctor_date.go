package migrations

import (
	"ClinicRecords/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Serves the today's agenda lookup.
var appointmentsByDoctorAndDate = Migration{
	Name:       "001_index_appointments_by_doctor_date",
	Collection: store.AppointmentCollection,
	Index: mongo.IndexModel{
		Keys:    bson.D{{Key: "doctorName", Value: 1}, {Key: "appointmentDate", Value: 1}},
		Options: options.Index().SetName("doctorName_appointmentDate"),
	},
}
