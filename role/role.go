package role

import "ClinicRecords/store"

// Role names the account kind a login or signup targets.
type Role string

const (
	Patient Role = "patient"
	Doctor  Role = "doctor"
)

// Parse accepts the role strings clients send.
func Parse(s string) (Role, bool) {
	switch Role(s) {
	case Patient, Doctor:
		return Role(s), true
	}
	return "", false
}

// Collection is the store collection holding accounts of this role.
func (r Role) Collection() string {
	if r == Doctor {
		return store.DoctorCollection
	}
	return store.PatientCollection
}
