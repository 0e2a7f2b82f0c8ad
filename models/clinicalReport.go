package models

type ClinicalReport struct {
	ID                    string `json:"id" bson:"-"`
	DoctorID              string `json:"doctorId" bson:"doctorId"`
	PatientName           string `json:"patientName" bson:"patientName"`
	VisitDate             string `json:"visitDate" bson:"visitDate"`
	ReasonForVisit        string `json:"reasonForVisit" bson:"reasonForVisit"`
	BloodPressure         string `json:"bloodPressure" bson:"bloodPressure"`
	HeartRate             string `json:"heartRate" bson:"heartRate"`
	Temperature           string `json:"temperature" bson:"temperature"`
	RespiratoryRate       string `json:"respiratoryRate" bson:"respiratoryRate"`
	CurrentSymptoms       string `json:"currentSymptoms" bson:"currentSymptoms"`
	StartDateOfSymptoms   string `json:"startDateOfSymptoms" bson:"startDateOfSymptoms"`
	SeverityLevel         string `json:"severityLevel" bson:"severityLevel"`
	Diagnosis             string `json:"diagnosis" bson:"diagnosis"`
	DiagnosisNotes        string `json:"diagnosisNotes" bson:"diagnosisNotes"`
	PrescribedMedications string `json:"prescribedMedications" bson:"prescribedMedications"`
	DosageInstructions    string `json:"dosageInstructions" bson:"dosageInstructions"`
	TreatmentPlan         string `json:"treatmentPlan" bson:"treatmentPlan"`
	TestsOrdered          string `json:"testsOrdered" bson:"testsOrdered"`
	LabResults            string `json:"labResults" bson:"labResults"`
	FollowUpRequired      bool   `json:"followUpRequired" bson:"followUpRequired"`
	FollowUpDate          string `json:"followUpDate" bson:"followUpDate"`
	FollowUpInstructions  string `json:"followUpInstructions" bson:"followUpInstructions"`
	DoctorsNotes          string `json:"doctorsNotes" bson:"doctorsNotes"`
	Recommendations       string `json:"recommendations" bson:"recommendations"`
}
