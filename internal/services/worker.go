package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"careercopilot/verifier/internal/repositories"
)

// Worker decouples the HTTP request from pipeline execution. It never
// parallelizes the stages of a run; concurrency only controls how many
// independent runs may execute at once (default 1).
type Worker interface {
	Start(ctx context.Context)
	Stop()
	EnqueueJob(verificationID uuid.UUID)
}

type worker struct {
	verRepo         repositories.VerificationRepository
	verifierService VerifierService
	jobQueue        chan uuid.UUID
	concurrency     int
	wg              sync.WaitGroup
	stopChan        chan struct{}
}

func NewWorker(
	verRepo repositories.VerificationRepository,
	verifierService VerifierService,
	concurrency int,
) Worker {
	return &worker{
		verRepo:         verRepo,
		verifierService: verifierService,
		jobQueue:        make(chan uuid.UUID, 100),
		concurrency:     concurrency,
		stopChan:        make(chan struct{}),
	}
}

// Start implements Worker.
func (w *worker) Start(ctx context.Context) {
	log.Printf("🚀 Starting worker with %d concurrent workers\n", w.concurrency)

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.processJobs(ctx, i+1)
	}

	// Poll for jobs that were queued but never picked up (e.g. after a restart)
	w.wg.Add(1)
	go w.pollPendingJobs(ctx)
}

// Stop implements Worker.
func (w *worker) Stop() {
	log.Println("🛑 Stopping worker...")
	close(w.stopChan)
	w.wg.Wait()
	log.Println("✅ Worker stopped")
}

// EnqueueJob implements Worker.
func (w *worker) EnqueueJob(verificationID uuid.UUID) {
	select {
	case w.jobQueue <- verificationID:
		log.Printf("📥 Verification %s enqueued\n", verificationID)
	case <-w.stopChan:
		log.Printf("⚠️  Worker stopped, cannot enqueue verification %s\n", verificationID)
	}
}

func (w *worker) processJobs(ctx context.Context, workerID int) {
	defer w.wg.Done()

	for {
		select {
		case <-w.stopChan:
			log.Printf("👷 Worker #%d stopped\n", workerID)
			return
		case verificationID := <-w.jobQueue:
			log.Printf("👷 Worker #%d processing verification %s\n", workerID, verificationID)
			if err := w.verifierService.VerifyDocuments(ctx, verificationID); err != nil {
				log.Printf("❌ Worker #%d failed verification %s: %v\n", workerID, verificationID, err)
			} else {
				log.Printf("✅ Worker #%d completed verification %s\n", workerID, verificationID)
			}
		}
	}
}

func (w *worker) pollPendingJobs(ctx context.Context) {
	defer w.wg.Done()
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopChan:
			return
		case <-ticker.C:
			pendingJobs, err := w.verRepo.FindPendingJobs(10)
			if err != nil {
				log.Printf("⚠️  Failed to fetch pending verifications: %v\n", err)
				continue
			}

			if len(pendingJobs) > 0 {
				log.Printf("📋 Found %d pending verifications\n", len(pendingJobs))
			}

			for _, job := range pendingJobs {
				w.EnqueueJob(job.ID)
			}
		}
	}
}
