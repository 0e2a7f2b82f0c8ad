package services

import (
	"context"
	"fmt"
	"strings"

	"ClinicRecords/auth"
	"ClinicRecords/metrics"
	"ClinicRecords/models"
	"ClinicRecords/role"
	"ClinicRecords/store"

	"github.com/rs/zerolog/log"
)

// Fields no profile update may write: the key, the credential, and the
// sub-record owned by the health scoring flow.
var protectedFields = []string{"_id", "email", "password", "healthData"}

// Accounts is the patient and doctor account repository. Accounts are keyed by email.
type Accounts struct {
	store  store.Store
	hasher auth.Hasher
}

func NewAccounts(s store.Store, hasher auth.Hasher) *Accounts {
	return &Accounts{store: s, hasher: hasher}
}

// accountKey is the stored form of an email on every account path.
func accountKey(email string) string {
	return strings.TrimSpace(email)
}

/*
* Validate email and record
* Convert the record and force the email field to the key
* Put overwrites any earlier account with the same email
 */
func (a *Accounts) CreateAccount(ctx context.Context, r role.Role, email string, record interface{}) error {
	email = accountKey(email)
	if err := checkRequired(str("email", email), requiredField{name: "record", present: record != nil}); err != nil {
		return err
	}
	doc, err := toDocument(record)
	if err != nil {
		return fmt.Errorf("encode %s account: %w", r, err)
	}
	doc["email"] = email
	if err := a.store.Put(ctx, r.Collection(), email, doc); err != nil {
		log.Error().Err(err).Str("role", string(r)).Str("email", email).Msg("create account failed")
		return err
	}
	return nil
}

/*
* Validate email and password
* Hash the password through the collaborator
* Drop healthData, only the scoring flow writes it
* Store the hash in the record and create the account
 */
func (a *Accounts) Signup(ctx context.Context, r role.Role, email, password string, profile interface{}) error {
	if err := checkRequired(str("email", email), requiredField{name: "password", present: password != ""}); err != nil {
		return err
	}
	hash, err := a.hasher.Hash(password)
	if err != nil {
		log.Error().Err(err).Str("role", string(r)).Msg("hashing password failed")
		return &InvalidFieldError{Field: "password", Reason: err.Error()}
	}
	doc, err := toDocument(profile)
	if err != nil {
		return fmt.Errorf("encode %s account: %w", r, err)
	}
	delete(doc, "healthData")
	doc["password"] = hash
	return a.CreateAccount(ctx, r, email, doc)
}

// FindByEmail decodes the account into out. A missing account is (false, nil).
func (a *Accounts) FindByEmail(ctx context.Context, r role.Role, email string, out interface{}) (bool, error) {
	email = accountKey(email)
	if err := checkRequired(str("email", email)); err != nil {
		return false, err
	}
	doc, ok, err := a.store.Get(ctx, r.Collection(), email)
	if err != nil {
		log.Error().Err(err).Str("role", string(r)).Str("email", email).Msg("find account failed")
		return false, err
	}
	if !ok {
		return false, nil
	}
	if err := fromDocument(doc, out); err != nil {
		return false, fmt.Errorf("decode %s account: %w", r, err)
	}
	return true, nil
}

/*
* Check the account exists
* Drop protected fields from the partial
* Merge the rest so omitted fields keep their stored values
 */
func (a *Accounts) UpdateProfile(ctx context.Context, r role.Role, email string, partial interface{}) error {
	email = accountKey(email)
	if err := checkRequired(str("email", email)); err != nil {
		return err
	}
	_, ok, err := a.store.Get(ctx, r.Collection(), email)
	if err != nil {
		log.Error().Err(err).Str("role", string(r)).Str("email", email).Msg("lookup before update failed")
		return err
	}
	if !ok {
		return ErrNotFound
	}
	doc, err := toDocument(partial)
	if err != nil {
		return fmt.Errorf("encode %s update: %w", r, err)
	}
	for _, f := range protectedFields {
		delete(doc, f)
	}
	if err := a.store.Merge(ctx, r.Collection(), email, doc); err != nil {
		log.Error().Err(err).Str("role", string(r)).Str("email", email).Msg("profile merge failed")
		return err
	}
	return nil
}

// Authenticate returns ErrInvalidCredentials both when the email is unknown and
// when the password does not match, so callers cannot tell which.
func (a *Accounts) Authenticate(ctx context.Context, r role.Role, email, password string) error {
	email = accountKey(email)
	if err := checkRequired(str("email", email), requiredField{name: "password", present: password != ""}); err != nil {
		return err
	}
	doc, ok, err := a.store.Get(ctx, r.Collection(), email)
	if err != nil {
		metrics.RecordLogin(string(r), "error")
		log.Error().Err(err).Str("role", string(r)).Msg("login lookup failed")
		return err
	}
	hash, _ := doc["password"].(string)
	if !ok || !a.hasher.Verify(hash, password) {
		metrics.RecordLogin(string(r), "invalid_credentials")
		return ErrInvalidCredentials
	}
	metrics.RecordLogin(string(r), "success")
	return nil
}

func (a *Accounts) Delete(ctx context.Context, r role.Role, email string) error {
	email = accountKey(email)
	if err := checkRequired(str("email", email)); err != nil {
		return err
	}
	if err := a.store.Delete(ctx, r.Collection(), email); err != nil {
		log.Error().Err(err).Str("role", string(r)).Str("email", email).Msg("delete account failed")
		return err
	}
	return nil
}

func (a *Accounts) ListPatients(ctx context.Context) ([]models.Patient, error) {
	records, err := a.store.QueryEqual(ctx, store.PatientCollection)
	if err != nil {
		return nil, err
	}
	return decodeAll(records, func(p *models.Patient, key string) { p.Email = key })
}

func (a *Accounts) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	records, err := a.store.QueryEqual(ctx, store.DoctorCollection)
	if err != nil {
		return nil, err
	}
	return decodeAll(records, func(d *models.Doctor, key string) { d.Email = key })
}

/*
* Every vital is required and a zero reading counts as missing
* The patient must already exist
* Score the vitals and merge them into the healthData sub-record
 */
func (a *Accounts) StoreHealthData(ctx context.Context, in models.HealthDataInput) (int, error) {
	err := checkRequired(
		str("email", in.Email),
		num("bloodPressure", in.BloodPressure),
		num("sleep", in.Sleep),
		num("temperature", in.Temperature),
		num("heartRate", in.HeartRate),
	)
	if err != nil {
		return 0, err
	}
	email := accountKey(in.Email)
	_, ok, err := a.store.Get(ctx, store.PatientCollection, email)
	if err != nil {
		log.Error().Err(err).Str("email", email).Msg("lookup before health data failed")
		return 0, err
	}
	if !ok {
		return 0, ErrNotFound
	}

	data := models.HealthData{
		BloodPressure: *in.BloodPressure,
		Sleep:         *in.Sleep,
		Temperature:   *in.Temperature,
		HeartRate:     *in.HeartRate,
	}
	data.HealthPercentage = Score(data.BloodPressure, data.Sleep, data.Temperature, data.HeartRate)

	sub, err := toDocument(data)
	if err != nil {
		return 0, fmt.Errorf("encode health data: %w", err)
	}
	if err := a.store.Merge(ctx, store.PatientCollection, email, store.Document{"healthData": sub}); err != nil {
		log.Error().Err(err).Str("email", email).Msg("health data merge failed")
		return 0, err
	}
	metrics.HealthScores.Observe(float64(data.HealthPercentage))
	return data.HealthPercentage, nil
}
