package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"tablebook/config"
	"tablebook/services/booking"
	"tablebook/services/events"

	"github.com/hibiken/asynq"
)

const TypeReconcileStatuses = "reservation:reconcile"

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitReconcileWorker runs the async worker in background. It drains the
// reconciliation queue plus the reservation event queue; events are consumed
// by logging them, standing in for an external reporting pipeline.
func InitReconcileWorker(svc booking.ReservationService) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default":          2,
				events.QueueEvents: 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReconcileStatuses, handleReconcileTask(svc))
	mux.HandleFunc(events.TypeReservationCreated, handleReservationEvent)
	mux.HandleFunc(events.TypeReservationCancelled, handleReservationEvent)
	mux.HandleFunc(events.TypeReservationUpdated, handleReservationEvent)

	// Start async worker with retry logic
	go func() {
		log.Println("[ReconcileWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReconcileWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReconcileWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

// InitReconcileScheduler enqueues the reconciliation task on a fixed
// interval so reservation statuses track wall-clock time even when no
// request traffic arrives.
func InitReconcileScheduler() {
	scheduler := asynq.NewScheduler(redisOpts(), nil)

	task := asynq.NewTask(TypeReconcileStatuses, nil)
	if _, err := scheduler.Register(config.AppConfig.ReconcileInterval, task); err != nil {
		log.Fatalf("[ReconcileScheduler] Failed to register reconcile task: %v", err)
	}

	go func() {
		log.Printf("[ReconcileScheduler] Scheduling status reconciliation %s", config.AppConfig.ReconcileInterval)
		if err := scheduler.Run(); err != nil {
			log.Fatalf("[ReconcileScheduler] Scheduler stopped: %v", err)
		}
	}()
}

func handleReconcileTask(svc booking.ReservationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		return svc.RunStatusReconciliation(ctx)
	}
}

func handleReservationEvent(ctx context.Context, task *asynq.Task) error {
	var ev events.ReservationEvent
	if err := json.Unmarshal(task.Payload(), &ev); err != nil {
		log.Printf("[EventHandler] Invalid payload: %v", err)
		return err
	}

	log.Printf("[EventHandler] %s reservation=%s table=%s waiter=%s status=%s",
		task.Type(), ev.Reservation.ID, ev.Reservation.TableID, ev.Reservation.WaiterID, ev.Reservation.Status)
	return nil
}
