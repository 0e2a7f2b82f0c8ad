package models

// Appointment links to a doctor and a patient by name only.
type Appointment struct {
	ID              string `json:"id" bson:"-"`
	PatientName     string `json:"patientName" bson:"patientName"`
	AppointmentDate string `json:"appointmentDate" bson:"appointmentDate"` // YYYY-MM-DD
	AppointmentTime string `json:"appointmentTime" bson:"appointmentTime"`
	DoctorName      string `json:"doctorName" bson:"doctorName"`
	Reason          string `json:"reason" bson:"reason"`
	ContactNumber   string `json:"contactNumber" bson:"contactNumber"`
	AdditionalNotes string `json:"additionalNotes" bson:"additionalNotes"`
}
