package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"id_validator/internal/domain"
)

type AlertChannel string

const (
	AlertEmail AlertChannel = "email"
	AlertSlack AlertChannel = "slack"
)

type EmailService interface {
	SendEmail(to, subject, body string) error
}

type SlackService interface {
	SendMessage(channel, message string) error
}

type AlertMessage struct {
	Channel   AlertChannel
	Recipient string
	Subject   string
	Message   string
	CreatedAt time.Time
}

// AlertService fans flagged attempts out to the configured channels through
// a worker pool.
type AlertService struct {
	emailService EmailService
	slackService SlackService
	messageQueue chan AlertMessage
	workers      int
	shutdownChan chan struct{}
	wg           sync.WaitGroup
	logger       *slog.Logger
}

func NewAlertService(
	emailService EmailService,
	slackService SlackService,
	workers int,
	logger *slog.Logger,
) *AlertService {
	if logger == nil {
		logger = slog.Default()
	}

	service := &AlertService{
		emailService: emailService,
		slackService: slackService,
		messageQueue: make(chan AlertMessage, 1000),
		workers:      workers,
		shutdownChan: make(chan struct{}),
		logger:       logger,
	}

	service.startWorkers()

	return service
}

func (s *AlertService) SendFlagAlert(ctx context.Context, attempt *domain.Attempt) error {
	flags := make([]string, 0, len(attempt.Flags))
	for _, flag := range attempt.Flags {
		flags = append(flags, string(flag))
	}

	message := fmt.Sprintf(
		"Flagged identifier\nAttempt ID: %s\nType: %s\nValid: %t\nFlags: %s",
		attempt.ID, attempt.Type, attempt.Valid, strings.Join(flags, ", "),
	)

	alerts := []AlertMessage{
		{
			Channel:   AlertSlack,
			Recipient: "#id-fraud-alerts",
			Subject:   "Flagged identifier",
			Message:   message,
			CreatedAt: time.Now(),
		},
		{
			Channel:   AlertEmail,
			Recipient: "compliance@example.com",
			Subject:   fmt.Sprintf("Flagged identifier: %s", attempt.ID),
			Message:   message,
			CreatedAt: time.Now(),
		},
	}

	for _, alert := range alerts {
		select {
		case s.messageQueue <- alert:
			s.logger.Info("Flag alert queued",
				slog.String("channel", string(alert.Channel)),
				slog.String("attempt_id", attempt.ID))
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return nil
}

func (s *AlertService) startWorkers() {
	for i := 0; i < s.workers; i++ {
		s.wg.Add(1)
		go s.worker(i)
	}
}

func (s *AlertService) worker(id int) {
	defer s.wg.Done()

	for {
		select {
		case msg := <-s.messageQueue:
			s.processAlert(msg, id)
		case <-s.shutdownChan:
			return
		}
	}
}

func (s *AlertService) processAlert(msg AlertMessage, workerID int) {
	var err error

	switch msg.Channel {
	case AlertEmail:
		err = s.emailService.SendEmail(msg.Recipient, msg.Subject, msg.Message)
	case AlertSlack:
		err = s.slackService.SendMessage(msg.Recipient, msg.Message)
	default:
		err = fmt.Errorf("unknown alert channel: %s", msg.Channel)
	}

	if err != nil {
		s.logger.Error("Failed to send alert",
			slog.String("channel", string(msg.Channel)),
			slog.String("recipient", msg.Recipient),
			slog.String("error", err.Error()),
			slog.Int("worker_id", workerID))
		return
	}

	s.logger.Info("Alert sent",
		slog.String("channel", string(msg.Channel)),
		slog.String("recipient", msg.Recipient),
		slog.Int("worker_id", workerID))
}

func (s *AlertService) Shutdown(ctx context.Context) error {
	close(s.shutdownChan)

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("Alert service shutdown complete")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type MockEmailService struct {
	mu         sync.Mutex
	SentEmails []struct {
		To      string
		Subject string
		Body    string
	}
}

func (m *MockEmailService) SendEmail(to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SentEmails = append(m.SentEmails, struct {
		To      string
		Subject string
		Body    string
	}{to, subject, body})
	return nil
}

func (m *MockEmailService) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.SentEmails)
}

type MockSlackService struct {
	mu           sync.Mutex
	SentMessages []struct {
		Channel string
		Message string
	}
}

func (m *MockSlackService) SendMessage(channel, message string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SentMessages = append(m.SentMessages, struct {
		Channel string
		Message string
	}{channel, message})
	return nil
}

func (m *MockSlackService) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.SentMessages)
}
