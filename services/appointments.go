package services

import (
	"context"
	"fmt"
	"time"

	"ClinicRecords/metrics"
	"ClinicRecords/models"
	"ClinicRecords/store"

	"github.com/rs/zerolog/log"
)

// DateLayout is the ISO calendar date appointments are stored and matched with.
const DateLayout = "2006-01-02"

// Appointments is the appointment repository. Appointments reference doctors
// and patients by name; nothing checks that either exists.
type Appointments struct {
	store store.Store
	keys  KeyGenerator
	now   func() time.Time
}

func NewAppointments(s store.Store, keys KeyGenerator, now func() time.Time) *Appointments {
	if now == nil {
		now = time.Now
	}
	return &Appointments{store: s, keys: keys, now: now}
}

/*
* Validate the names and the date
* Key is the doctor name plus a creation timestamp
* Always a fresh put
 */
func (a *Appointments) Book(ctx context.Context, appt models.Appointment) (string, error) {
	err := checkRequired(
		str("patientName", appt.PatientName),
		str("appointmentDate", appt.AppointmentDate),
		str("doctorName", appt.DoctorName),
	)
	if err != nil {
		return "", err
	}
	if _, err := time.Parse(DateLayout, appt.AppointmentDate); err != nil {
		return "", &InvalidFieldError{Field: "appointmentDate", Reason: "expected YYYY-MM-DD"}
	}

	id := a.keys.NewKey(appt.DoctorName)
	doc, err := toDocument(appt)
	if err != nil {
		return "", fmt.Errorf("encode appointment: %w", err)
	}
	if err := a.store.Put(ctx, store.AppointmentCollection, id, doc); err != nil {
		log.Error().Err(err).Str("doctor", appt.DoctorName).Msg("booking appointment failed")
		return "", err
	}
	metrics.AppointmentsBookedTotal.Inc()
	log.Info().Str("id", id).Str("doctor", appt.DoctorName).Str("date", appt.AppointmentDate).Msg("appointment booked")
	return id, nil
}

// Today is the server-local calendar date used for agenda queries.
func (a *Appointments) Today() string {
	return a.now().Format(DateLayout)
}

// ListForDoctorToday matches doctorName exactly and the stored date string
// against the server's current date. No timezone normalization happens.
func (a *Appointments) ListForDoctorToday(ctx context.Context, doctorName string) ([]models.Appointment, error) {
	if err := checkRequired(str("doctorName", doctorName)); err != nil {
		return nil, err
	}
	records, err := a.store.QueryEqual(ctx, store.AppointmentCollection,
		store.Eq("doctorName", doctorName),
		store.Eq("appointmentDate", a.Today()),
	)
	if err != nil {
		log.Error().Err(err).Str("doctor", doctorName).Msg("today's appointments query failed")
		return nil, err
	}
	return decodeAll(records, setAppointmentID)
}

func (a *Appointments) ListAll(ctx context.Context) ([]models.Appointment, error) {
	records, err := a.store.QueryEqual(ctx, store.AppointmentCollection)
	if err != nil {
		return nil, err
	}
	return decodeAll(records, setAppointmentID)
}

func (a *Appointments) Remove(ctx context.Context, id string) error {
	if err := checkRequired(str("id", id)); err != nil {
		return err
	}
	return a.store.Delete(ctx, store.AppointmentCollection, id)
}

func setAppointmentID(appt *models.Appointment, key string) { appt.ID = key }
