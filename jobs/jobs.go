package jobs

import (
	"context"
	"time"

	"ClinicRecords/metrics"
	"ClinicRecords/models"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

const DefaultAgendaSchedule = "5 0 * * *"

type DoctorLister interface {
	ListDoctors(ctx context.Context) ([]models.Doctor, error)
}

type AgendaSource interface {
	ListForDoctorToday(ctx context.Context, doctorName string) ([]models.Appointment, error)
}

type Scheduler struct {
	cron         *cron.Cron
	doctors      DoctorLister
	appointments AgendaSource
	timeout      time.Duration
}

func NewScheduler(doctors DoctorLister, appointments AgendaSource) *Scheduler {
	return &Scheduler{
		cron:         cron.New(),
		doctors:      doctors,
		appointments: appointments,
		timeout:      time.Minute,
	}
}

// StartDailyScheduler registers the agenda run on schedule and starts the cron loop.
func (s *Scheduler) StartDailyScheduler(schedule string) error {
	if schedule == "" {
		schedule = DefaultAgendaSchedule
	}
	_, err := s.cron.AddFunc(schedule, func() {
		log.Info().Msg("running daily agenda")
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		s.RunDailyAgenda(ctx)
	})
	if err != nil {
		return err
	}
	s.cron.Start()
	log.Info().Str("schedule", schedule).Msg("daily agenda scheduled")
	return nil
}

// Stop waits for a running agenda to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

/*
* Clear yesterday's series so renamed or removed doctors drop out
* Fetch every doctor
* Count today's appointments by the doctor's name
* One doctor failing is logged and skipped
 */
func (s *Scheduler) RunDailyAgenda(ctx context.Context) map[string]int {
	counts := map[string]int{}
	metrics.AgendaAppointments.Reset()
	doctors, err := s.doctors.ListDoctors(ctx)
	if err != nil {
		log.Error().Err(err).Msg("agenda: listing doctors failed")
		return counts
	}
	for _, d := range doctors {
		if d.Name == "" {
			log.Warn().Str("email", d.Email).Msg("agenda: doctor without a name")
			continue
		}
		appts, err := s.appointments.ListForDoctorToday(ctx, d.Name)
		if err != nil {
			log.Error().Err(err).Str("doctor", d.Name).Msg("agenda: listing appointments failed")
			continue
		}
		counts[d.Name] = len(appts)
		metrics.AgendaAppointments.WithLabelValues(d.Name).Set(float64(len(appts)))
		log.Info().Str("doctor", d.Name).Int("appointments", len(appts)).Msg("agenda")
	}
	return counts
}
