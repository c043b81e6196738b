package services

import (
	"encoding/json"
	"log"
	"time"

	"gg-note/ggnote/broker"
	"gg-note/ggnote/database"
	"gg-note/ggnote/models"

	"github.com/google/uuid"
)

type EventDispatcherServiceInterface interface {
	Start()
	Stop()
	DispatchPending() error
}

// EventDispatcherService drains the transactional outbox: undispatched
// event rows are published on the broker and marked dispatched. Mutations
// stay observable even when the broker was down at write time.
type EventDispatcherService struct {
	db       *database.Database
	interval time.Duration
	stopChan chan struct{}
	running  bool
}

func NewEventDispatcherService(db *database.Database) *EventDispatcherService {
	return &EventDispatcherService{
		db:       db,
		interval: 500 * time.Millisecond,
		stopChan: make(chan struct{}),
	}
}

func (s *EventDispatcherService) Start() {
	if s.running {
		return
	}
	s.running = true
	go s.run()
	log.Println("Event dispatcher started")
}

func (s *EventDispatcherService) Stop() {
	if !s.running {
		return
	}
	s.running = false
	close(s.stopChan)
	log.Println("Event dispatcher stopped")
}

func (s *EventDispatcherService) run() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if err := s.DispatchPending(); err != nil {
				log.Printf("Failed to dispatch pending events: %v", err)
			}
		case <-s.stopChan:
			return
		}
	}
}

// DispatchPending publishes every undispatched event in timestamp order.
func (s *EventDispatcherService) DispatchPending() error {
	var events []models.Event
	if err := s.db.DB.Where("dispatched = ?", false).
		Order("timestamp ASC").Find(&events).Error; err != nil {
		return err
	}

	for _, event := range events {
		var payload map[string]interface{}
		if len(event.Data) > 0 {
			if err := json.Unmarshal(event.Data, &payload); err != nil {
				log.Printf("Event %s carries malformed data: %v", event.ID, err)
			}
		}
		message := models.StandardMessage{
			ID:        uuid.New().String(),
			Event:     event.Event,
			Entity:    event.Entity,
			Timestamp: event.Timestamp,
			Payload:   payload,
		}

		data, err := message.ToJSON()
		if err != nil {
			return err
		}
		if err := broker.PublishMessage(event.Event, data); err != nil {
			return err
		}

		now := time.Now().UTC()
		if err := s.db.DB.Model(&models.Event{}).Where("id = ?", event.ID).
			Updates(map[string]interface{}{"dispatched": true, "dispatched_at": now}).Error; err != nil {
			return err
		}
	}
	return nil
}
