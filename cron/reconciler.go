package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"worklane/config"
	"worklane/models"

	bookingRepo "worklane/database/repository/booking"
	resourceRepo "worklane/database/repository/resource"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

const TypeBlockReconcile = "blocks:reconcile"

// InitReconcileWorker runs the block-reconciliation worker in the
// background. Each task names a booking; once that booking reaches a
// terminal status, the blocked ranges it pushed onto its resources are
// removed so the time becomes proposable again.
func InitReconcileWorker(bookings bookingRepo.BookingRepository, resources resourceRepo.ResourceRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReconcileDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeBlockReconcile, handleReconcileTask(bookings, resources))

	go monitorRedisConnection()

	go func() {
		log.Println("[ReconcileWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReconcileWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReconcileWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReconcileTask(bookings bookingRepo.BookingRepository, resources resourceRepo.ResourceRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.BlockReconcilePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReconcileHandler] Invalid payload: %v", err)
			return err
		}

		booking, err := bookings.GetByID(ctx, p.BookingID)
		if err != nil {
			log.Printf("[ReconcileHandler] Failed to load booking %s: %v", p.BookingID, err)
			return err
		}
		if !booking.Terminal() {
			// Not released yet; the lifecycle transition will enqueue again.
			return nil
		}

		removed, err := resources.RemoveBlockedRangesByReference(ctx, booking.ID)
		if err != nil {
			log.Printf("[ReconcileHandler] Failed to release blocks for booking %s: %v", booking.ID, err)
			return err
		}
		log.Printf("[ReconcileHandler] Released blocked ranges for booking %s (%d resources touched)", booking.ID, removed)
		return nil
	}
}

// EnqueueBlockReconcile schedules a reconciliation pass for a booking after
// the given delay.
func EnqueueBlockReconcile(client *asynq.Client, bookingID string, delay time.Duration) error {
	payload, err := json.Marshal(models.BlockReconcilePayload{BookingID: bookingID})
	if err != nil {
		return err
	}
	task := asynq.NewTask(TypeBlockReconcile, payload)
	_, err = client.Enqueue(task, asynq.ProcessIn(delay))
	return err
}

// NewReconcileClient returns an asynq client bound to the reconcile queue.
func NewReconcileClient() *asynq.Client {
	return asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReconcileDB,
	})
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReconcileDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ReconcileWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
