package services

import (
	"context"
	"fmt"
	"strings"

	"ClinicRecords/metrics"
	"ClinicRecords/models"
	"ClinicRecords/store"

	"github.com/rs/zerolog/log"
)

// Reports is the clinical visit report repository.
type Reports struct {
	store store.Store
	keys  KeyGenerator
}

func NewReports(s store.Store, keys KeyGenerator) *Reports {
	return &Reports{store: s, keys: keys}
}

/*
* Validate doctorId and the required clinical fields
* Nothing is written when any of them is missing
* Key is doctorId plus a creation timestamp
 */
func (r *Reports) Submit(ctx context.Context, report models.ClinicalReport) (string, error) {
	err := checkRequired(
		str("doctorId", report.DoctorID),
		str("visitDate", report.VisitDate),
		str("reasonForVisit", report.ReasonForVisit),
		str("bloodPressure", report.BloodPressure),
	)
	if err != nil {
		return "", err
	}
	id := r.keys.NewKey(report.DoctorID)
	doc, err := toDocument(report)
	if err != nil {
		return "", fmt.Errorf("encode report: %w", err)
	}
	if err := r.store.Put(ctx, store.ReportCollection, id, doc); err != nil {
		log.Error().Err(err).Str("doctorId", report.DoctorID).Msg("submitting report failed")
		return "", err
	}
	metrics.ReportsSubmittedTotal.Inc()
	return id, nil
}

func (r *Reports) ListByDoctor(ctx context.Context, doctorID string) ([]models.ClinicalReport, error) {
	if err := checkRequired(str("doctorId", doctorID)); err != nil {
		return nil, err
	}
	records, err := r.store.QueryEqual(ctx, store.ReportCollection, store.Eq("doctorId", doctorID))
	if err != nil {
		log.Error().Err(err).Str("doctorId", doctorID).Msg("reports by doctor query failed")
		return nil, err
	}
	return decodeAll(records, setReportID)
}

// GetByID returns (nil, false, nil) when no report has the id.
func (r *Reports) GetByID(ctx context.Context, id string) (*models.ClinicalReport, bool, error) {
	if err := checkRequired(str("id", id)); err != nil {
		return nil, false, err
	}
	doc, ok, err := r.store.Get(ctx, store.ReportCollection, id)
	if err != nil || !ok {
		return nil, false, err
	}
	report := &models.ClinicalReport{}
	if err := fromDocument(doc, report); err != nil {
		return nil, false, fmt.Errorf("decode report: %w", err)
	}
	report.ID = id
	return report, true, nil
}

// ListByPatientName is the case history search: a case-insensitive substring
// match on the free-text patient name. Two patients sharing a name are
// indistinguishable here.
func (r *Reports) ListByPatientName(ctx context.Context, patientName string) ([]models.ClinicalReport, error) {
	if err := checkRequired(str("patientName", patientName)); err != nil {
		return nil, err
	}
	records, err := r.store.QueryEqual(ctx, store.ReportCollection)
	if err != nil {
		log.Error().Err(err).Str("patientName", patientName).Msg("patient history scan failed")
		return nil, err
	}
	reports, err := decodeAll(records, setReportID)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(strings.TrimSpace(patientName))
	matched := []models.ClinicalReport{}
	for _, rep := range reports {
		if strings.Contains(strings.ToLower(rep.PatientName), needle) {
			matched = append(matched, rep)
		}
	}
	return matched, nil
}

func (r *Reports) Remove(ctx context.Context, id string) error {
	if err := checkRequired(str("id", id)); err != nil {
		return err
	}
	return r.store.Delete(ctx, store.ReportCollection, id)
}

func setReportID(rep *models.ClinicalReport, key string) { rep.ID = key }
