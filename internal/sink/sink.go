package sink

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"example.com/home-readiness/backend/internal/config"
	"example.com/home-readiness/backend/internal/models"
)

// AssessmentStore — приемник результатов оценки.
type AssessmentStore interface {
	Create(ctx context.Context, assessment models.Assessment) (models.Assessment, error)
}

// EventStore — приемник аналитических событий.
type EventStore interface {
	Create(ctx context.Context, eventType models.EventType, properties json.RawMessage) (models.Event, error)
}

type record struct {
	assessment *models.Assessment
	eventType  models.EventType
	properties json.RawMessage
}

// Sink — асинхронный best-effort приемник данных. Постановка в очередь
// никогда не блокирует: при заполненном буфере запись отбрасывается,
// ошибки записи логируются и не возвращаются вызывающему. Ответ с
// оценкой никогда не зависит от судьбы сохранения.
type Sink struct {
	assessments AssessmentStore
	events      EventStore
	logger      *slog.Logger
	timeout     time.Duration
	records     chan record
	done        chan struct{}
	disabled    bool
}

// New запускает фоновую запись. Нулевые хранилища переводят sink
// в выключенный режим: оценки продолжают отдаваться без сохранения.
func New(assessments AssessmentStore, events EventStore, logger *slog.Logger, cfg config.SinkConfig) *Sink {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Sink{
		assessments: assessments,
		events:      events,
		logger:      logger,
		timeout:     cfg.WriteTimeout,
		records:     make(chan record, cfg.BufferSize),
		done:        make(chan struct{}),
		disabled:    assessments == nil && events == nil,
	}

	if s.disabled {
		logger.Info("persistence not configured, assessment sink disabled")
		close(s.done)
		return s
	}

	go s.run()
	return s
}

// EnqueueAssessment ставит в очередь результат оценки вместе
// с событием assessment_completed.
func (s *Sink) EnqueueAssessment(assessment models.Assessment, eventProperties json.RawMessage) {
	s.enqueue(record{
		assessment: &assessment,
		eventType:  models.EventAssessmentCompleted,
		properties: eventProperties,
	})
}

// EnqueueEvent ставит в очередь отдельное событие.
func (s *Sink) EnqueueEvent(eventType models.EventType, properties json.RawMessage) {
	s.enqueue(record{eventType: eventType, properties: properties})
}

// Close останавливает фоновую запись, дописав накопленный буфер.
func (s *Sink) Close() {
	if s.disabled {
		return
	}

	close(s.records)
	<-s.done
}

func (s *Sink) enqueue(r record) {
	if s.disabled {
		return
	}

	select {
	case s.records <- r:
	default:
		s.logger.Warn("sink buffer full, dropping record", slog.String("event_type", string(r.eventType)))
	}
}

func (s *Sink) run() {
	defer close(s.done)

	for r := range s.records {
		s.write(r)
	}
}

func (s *Sink) write(r record) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if r.assessment != nil && s.assessments != nil {
		if _, err := s.assessments.Create(ctx, *r.assessment); err != nil {
			s.logger.Error("failed to save assessment", slog.String("error", err.Error()))
		}
	}

	if r.eventType != "" && s.events != nil {
		if _, err := s.events.Create(ctx, r.eventType, r.properties); err != nil {
			s.logger.Error("failed to save event",
				slog.String("event_type", string(r.eventType)),
				slog.String("error", err.Error()),
			)
		}
	}
}
