// File: services/events/publisher.go
package events

import (
	"encoding/json"
	"time"

	"tablebook/models"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Task types consumed by the external reporting pipeline.
const (
	TypeReservationCreated   = "reservation:created"
	TypeReservationCancelled = "reservation:cancelled"
	TypeReservationUpdated   = "reservation:updated"

	// QueueEvents is the asynq queue the reporting workers drain.
	QueueEvents = "events"
)

// ReservationEvent is the payload enqueued for every booking state change.
type ReservationEvent struct {
	EventID     string             `json:"eventId"`
	Reservation models.Reservation `json:"reservation"`
	EmittedAt   time.Time          `json:"emittedAt"`
}

// Publisher emits reservation lifecycle events. Delivery is fire-and-forget:
// the scheduling engine's correctness never depends on it, so implementations
// log failures instead of returning them.
type Publisher interface {
	ReservationCreated(res *models.Reservation)
	ReservationCancelled(res *models.Reservation)
	ReservationUpdated(res *models.Reservation)
}

// AsynqPublisher enqueues events onto the Redis-backed task queue.
type AsynqPublisher struct {
	Client *asynq.Client
	Logger *zap.Logger
}

// NewAsynqPublisher constructs a Publisher over an asynq client.
func NewAsynqPublisher(client *asynq.Client, logger *zap.Logger) *AsynqPublisher {
	return &AsynqPublisher{Client: client, Logger: logger}
}

func (p *AsynqPublisher) ReservationCreated(res *models.Reservation) {
	p.enqueue(TypeReservationCreated, res)
}

func (p *AsynqPublisher) ReservationCancelled(res *models.Reservation) {
	p.enqueue(TypeReservationCancelled, res)
}

func (p *AsynqPublisher) ReservationUpdated(res *models.Reservation) {
	p.enqueue(TypeReservationUpdated, res)
}

func (p *AsynqPublisher) enqueue(taskType string, res *models.Reservation) {
	payload, err := json.Marshal(ReservationEvent{
		EventID:     uuid.New().String(),
		Reservation: *res,
		EmittedAt:   time.Now(),
	})
	if err != nil {
		p.Logger.Error("failed to marshal reservation event",
			zap.String("type", taskType), zap.String("reservationId", res.ID), zap.Error(err))
		return
	}

	task := asynq.NewTask(taskType, payload)
	if _, err := p.Client.Enqueue(task, asynq.Queue(QueueEvents)); err != nil {
		p.Logger.Warn("failed to enqueue reservation event",
			zap.String("type", taskType), zap.String("reservationId", res.ID), zap.Error(err))
	}
}
