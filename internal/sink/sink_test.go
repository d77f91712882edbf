package sink

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"example.com/home-readiness/backend/internal/config"
	"example.com/home-readiness/backend/internal/models"
)

type fakeAssessmentStore struct {
	mu    sync.Mutex
	saved []models.Assessment
	err   error
}

func (s *fakeAssessmentStore) Create(_ context.Context, assessment models.Assessment) (models.Assessment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return assessment, s.err
	}
	s.saved = append(s.saved, assessment)
	return assessment, nil
}

type fakeEventStore struct {
	mu    sync.Mutex
	saved []models.EventType
	err   error
}

func (s *fakeEventStore) Create(_ context.Context, eventType models.EventType, _ json.RawMessage) (models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return models.Event{}, s.err
	}
	s.saved = append(s.saved, eventType)
	return models.Event{EventType: eventType}, nil
}

func testSinkConfig() config.SinkConfig {
	return config.SinkConfig{BufferSize: 16, WriteTimeout: time.Second}
}

// TestSinkWritesAssessmentAndEvent проверяет доставку оценки и события.
func TestSinkWritesAssessmentAndEvent(t *testing.T) {
	assessments := &fakeAssessmentStore{}
	events := &fakeEventStore{}

	s := New(assessments, events, nil, testSinkConfig())
	s.EnqueueAssessment(models.Assessment{TotalScore: 63}, json.RawMessage(`{"score":63}`))
	s.Close()

	if len(assessments.saved) != 1 || assessments.saved[0].TotalScore != 63 {
		t.Fatalf("expected one saved assessment, got %+v", assessments.saved)
	}
	if len(events.saved) != 1 || events.saved[0] != models.EventAssessmentCompleted {
		t.Fatalf("expected assessment_completed event, got %+v", events.saved)
	}
}

// TestSinkSwallowsWriteErrors проверяет, что ошибка записи не всплывает.
func TestSinkSwallowsWriteErrors(t *testing.T) {
	assessments := &fakeAssessmentStore{err: errors.New("db down")}
	events := &fakeEventStore{err: errors.New("db down")}

	s := New(assessments, events, nil, testSinkConfig())
	s.EnqueueAssessment(models.Assessment{}, nil)
	s.EnqueueEvent(models.EventWaitlistJoined, nil)

	// Close не должен паниковать и обязан дождаться фоновой записи.
	s.Close()
}

// TestSinkDisabled проверяет no-op режим без настроенного хранилища.
func TestSinkDisabled(t *testing.T) {
	s := New(nil, nil, nil, testSinkConfig())

	s.EnqueueAssessment(models.Assessment{}, nil)
	s.EnqueueEvent(models.EventWaitlistJoined, nil)
	s.Close()
}

// TestSinkDrainsOnClose проверяет дозапись буфера при остановке.
func TestSinkDrainsOnClose(t *testing.T) {
	events := &fakeEventStore{}

	s := New(nil, events, nil, testSinkConfig())
	for i := 0; i < 10; i++ {
		s.EnqueueEvent(models.EventWaitlistJoined, nil)
	}
	s.Close()

	if len(events.saved) != 10 {
		t.Fatalf("expected 10 events after close, got %d", len(events.saved))
	}
}
