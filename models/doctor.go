package models

type Doctor struct {
	Email               string  `json:"email" bson:"email"`
	Name                string  `json:"name" bson:"name"`
	PasswordHash        string  `json:"-" bson:"password"`
	Age                 int     `json:"age" bson:"age"`
	Gender              string  `json:"gender" bson:"gender"`
	Specialization      string  `json:"specialization" bson:"specialization"`
	YearsExperience     int     `json:"yearsExperience" bson:"yearsExperience"`
	LicenseNumber       string  `json:"licenseNumber" bson:"licenseNumber"`
	Qualifications      string  `json:"qualifications" bson:"qualifications"`
	HospitalAffiliation string  `json:"hospitalAffiliation" bson:"hospitalAffiliation"`
	ShiftTiming         string  `json:"shiftTiming" bson:"shiftTiming"`
	ConsultationFee     float64 `json:"consultationFee" bson:"consultationFee"`
	PhoneNumber         string  `json:"phoneNumber" bson:"phoneNumber"`
}

type DoctorSignup struct {
	Doctor
	Password string `json:"password"`
}

type DoctorUpdate struct {
	Name                *string  `json:"name,omitempty" bson:"name,omitempty"`
	Age                 *int     `json:"age,omitempty" bson:"age,omitempty"`
	Gender              *string  `json:"gender,omitempty" bson:"gender,omitempty"`
	Specialization      *string  `json:"specialization,omitempty" bson:"specialization,omitempty"`
	YearsExperience     *int     `json:"yearsExperience,omitempty" bson:"yearsExperience,omitempty"`
	LicenseNumber       *string  `json:"licenseNumber,omitempty" bson:"licenseNumber,omitempty"`
	Qualifications      *string  `json:"qualifications,omitempty" bson:"qualifications,omitempty"`
	HospitalAffiliation *string  `json:"hospitalAffiliation,omitempty" bson:"hospitalAffiliation,omitempty"`
	ShiftTiming         *string  `json:"shiftTiming,omitempty" bson:"shiftTiming,omitempty"`
	ConsultationFee     *float64 `json:"consultationFee,omitempty" bson:"consultationFee,omitempty"`
	PhoneNumber         *string  `json:"phoneNumber,omitempty" bson:"phoneNumber,omitempty"`
}
