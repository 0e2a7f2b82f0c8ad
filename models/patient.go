package models

type Patient struct {
	Email        string      `json:"email" bson:"email"`
	Name         string      `json:"name" bson:"name"`
	PasswordHash string      `json:"-" bson:"password"`
	Age          int         `json:"age" bson:"age"`
	Gender       string      `json:"gender" bson:"gender"`
	BloodType    string      `json:"bloodType" bson:"bloodType"`
	Allergies    string      `json:"allergies" bson:"allergies"`
	Diseases     string      `json:"diseases" bson:"diseases"`
	Height       float64     `json:"height" bson:"height"`
	Weight       float64     `json:"weight" bson:"weight"`
	LastVisit    string      `json:"lastVisit" bson:"lastVisit"`
	HealthData   *HealthData `json:"healthData,omitempty" bson:"healthData,omitempty"`
}

// HealthData is written only by the health scoring flow.
type HealthData struct {
	BloodPressure    float64 `json:"bloodPressure" bson:"bloodPressure"`
	Sleep            float64 `json:"sleep" bson:"sleep"`
	Temperature      float64 `json:"temperature" bson:"temperature"`
	HeartRate        float64 `json:"heartRate" bson:"heartRate"`
	HealthPercentage int     `json:"healthPercentage" bson:"healthPercentage"`
}

// PatientSignup is the signup body: the profile plus the plaintext password.
type PatientSignup struct {
	Patient
	Password string `json:"password"`
}

// PatientUpdate holds the profile fields a patient may change. Nil fields are left untouched.
type PatientUpdate struct {
	Name      *string  `json:"name,omitempty" bson:"name,omitempty"`
	Age       *int     `json:"age,omitempty" bson:"age,omitempty"`
	Gender    *string  `json:"gender,omitempty" bson:"gender,omitempty"`
	BloodType *string  `json:"bloodType,omitempty" bson:"bloodType,omitempty"`
	Allergies *string  `json:"allergies,omitempty" bson:"allergies,omitempty"`
	Diseases  *string  `json:"diseases,omitempty" bson:"diseases,omitempty"`
	Height    *float64 `json:"height,omitempty" bson:"height,omitempty"`
	Weight    *float64 `json:"weight,omitempty" bson:"weight,omitempty"`
	LastVisit *string  `json:"lastVisit,omitempty" bson:"lastVisit,omitempty"`
}

// HealthDataInput is the storeHealthData body. A nil or zero vital counts as missing.
type HealthDataInput struct {
	Email         string   `json:"email"`
	BloodPressure *float64 `json:"bloodPressure"`
	Sleep         *float64 `json:"sleep"`
	Temperature   *float64 `json:"temperature"`
	HeartRate     *float64 `json:"heartRate"`
}
