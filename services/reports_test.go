package services

import (
	"context"
	"testing"

	"ClinicRecords/models"
	"ClinicRecords/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReports() (*Reports, *countingStore) {
	cs := &countingStore{MemoryStore: store.NewMemoryStore()}
	return NewReports(cs, NewTimestampKeys(clockAt(fixedNow))), cs
}

func visit(doctorID, patient string) models.ClinicalReport {
	return models.ClinicalReport{
		DoctorID:         doctorID,
		PatientName:      patient,
		VisitDate:        "2026-10-15",
		ReasonForVisit:   "General Checkup",
		BloodPressure:    "120/80",
		HeartRate:        "72",
		Diagnosis:        "Flu",
		FollowUpRequired: true,
	}
}

func TestSubmit_MissingBloodPressure(t *testing.T) {
	r, cs := newReports()
	report := visit("dr@x.com", "Jane Doe")
	report.BloodPressure = ""

	_, err := r.Submit(context.Background(), report)
	var missing *MissingFieldsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"bloodPressure"}, missing.Fields)
	assert.Contains(t, err.Error(), "bloodPressure")
	assert.Zero(t, cs.writes)
}

func TestSubmit_NamesEveryMissingField(t *testing.T) {
	r, cs := newReports()
	_, err := r.Submit(context.Background(), models.ClinicalReport{DoctorID: "dr@x.com", ReasonForVisit: "  "})
	var missing *MissingFieldsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"visitDate", "reasonForVisit", "bloodPressure"}, missing.Fields)
	assert.Zero(t, cs.writes)
}

func TestSubmit_ThenGetByID(t *testing.T) {
	ctx := context.Background()
	r, _ := newReports()
	id, err := r.Submit(ctx, visit("dr@x.com", "Jane Doe"))
	require.NoError(t, err)
	assert.Contains(t, id, "dr@x.com-")

	got, ok, err := r.GetByID(ctx, id)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "Flu", got.Diagnosis)
	assert.True(t, got.FollowUpRequired)
}

func TestGetByID_Absent(t *testing.T) {
	r, _ := newReports()
	got, ok, err := r.GetByID(context.Background(), "dr@x.com-1")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestListByDoctor(t *testing.T) {
	ctx := context.Background()
	r, _ := newReports()
	for _, doctor := range []string{"a@x.com", "a@x.com", "b@x.com"} {
		_, err := r.Submit(ctx, visit(doctor, "Jane Doe"))
		require.NoError(t, err)
	}

	reports, err := r.ListByDoctor(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Len(t, reports, 2)
	for _, rep := range reports {
		assert.Equal(t, "a@x.com", rep.DoctorID)
		assert.NotEmpty(t, rep.ID)
	}

	none, err := r.ListByDoctor(ctx, "c@x.com")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestListByPatientName_CaseInsensitiveSubstring(t *testing.T) {
	ctx := context.Background()
	r, _ := newReports()
	for _, name := range []string{"Jane Doe", "John Doe", "Janet Smith"} {
		_, err := r.Submit(ctx, visit("dr@x.com", name))
		require.NoError(t, err)
	}

	tests := []struct {
		query string
		want  []string
	}{
		{"jane", []string{"Jane Doe"}},
		{"JAN", []string{"Jane Doe", "Janet Smith"}},
		{"doe", []string{"Jane Doe", "John Doe"}},
		{"Jane Doe", []string{"Jane Doe"}},
		{"nobody", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			reports, err := r.ListByPatientName(ctx, tt.query)
			require.NoError(t, err)
			names := []string{}
			for _, rep := range reports {
				names = append(names, rep.PatientName)
			}
			assert.ElementsMatch(t, tt.want, names)
		})
	}
}

func TestListByPatientName_RequiresName(t *testing.T) {
	r, _ := newReports()
	_, err := r.ListByPatientName(context.Background(), " ")
	var missing *MissingFieldsError
	assert.ErrorAs(t, err, &missing)
}

func TestReportsRemove(t *testing.T) {
	ctx := context.Background()
	r, _ := newReports()
	id, err := r.Submit(ctx, visit("dr@x.com", "Jane Doe"))
	require.NoError(t, err)
	require.NoError(t, r.Remove(ctx, id))

	_, ok, err := r.GetByID(ctx, id)
	require.NoError(t, err)
	assert.False(t, ok)
}
