package reminder

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"

	"github.com/healthyfeet/salon-scheduler/internal/config"
	domain "github.com/healthyfeet/salon-scheduler/internal/domain/booking"
	"github.com/healthyfeet/salon-scheduler/internal/models"
	"github.com/healthyfeet/salon-scheduler/internal/timezone"
)

const reminderTemplateName = "recordatorio"

// Service envía recordatorios de las citas confirmadas de mañana.
// Sin credenciales de Twilio solo deja el mensaje rendido en el log;
// un envío fallido jamás afecta la agenda.
type Service struct {
	db     *gorm.DB
	cfg    *config.Config
	client *twilio.RestClient
	loc    *time.Location
}

func NewService(db *gorm.DB, cfg *config.Config) *Service {
	s := &Service{
		db:  db,
		cfg: cfg,
		loc: timezone.Location(cfg.Timezone),
	}

	if cfg.TwilioAccountSID != "" && cfg.TwilioAuthToken != "" {
		s.client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.TwilioAccountSID,
			Password: cfg.TwilioAuthToken,
		})
	}

	return s
}

func (s *Service) StartScheduler() {
	c := cron.New(cron.WithLocation(s.loc))

	if _, err := c.AddFunc(s.cfg.ReminderCron, s.SendTomorrowReminders); err != nil {
		log.Printf("invalid reminder cron %q: %v", s.cfg.ReminderCron, err)
		return
	}

	c.Start()
	log.Println("Reminder scheduler started")
}

func (s *Service) SendTomorrowReminders() {
	now := time.Now().In(s.loc)
	tomorrow := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc).
		AddDate(0, 0, 1)

	var tpl models.MessageTemplate
	if err := s.db.Where("name = ?", reminderTemplateName).First(&tpl).Error; err != nil {
		log.Printf("reminder template %q not found, skipping run", reminderTemplateName)
		return
	}

	var appointments []models.Appointment
	if err := s.db.
		Preload("Client").
		Preload("Service").
		Where("date = ? AND status = ?", tomorrow, string(domain.StatusConfirmed)).
		Order("time ASC").
		Find(&appointments).Error; err != nil {
		log.Printf("failed to list tomorrow appointments: %v", err)
		return
	}

	for _, ap := range appointments {
		msg := Render(tpl.Body, TemplateData{
			ClientName:  ap.Client.Name,
			Date:        ap.Date.Format("02/01/2006"),
			Time:        ap.Time,
			ServiceName: ap.Service.Name,
		})

		s.send(ap.Client.Phone, msg)
	}

	log.Printf("reminders processed: %d appointments for %s",
		len(appointments), tomorrow.Format("2006-01-02"))
}

func (s *Service) send(phone, body string) {
	if s.client == nil || s.cfg.TwilioFrom == "" {
		log.Printf("reminder (dry-run) to %s: %s", phone, body)
		return
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo("+52" + phone)
	params.SetFrom(s.cfg.TwilioFrom)
	params.SetBody(body)

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		log.Printf("failed to send reminder to %s: %v", phone, err)
	}
}
