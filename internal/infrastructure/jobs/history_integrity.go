package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"

	"kyc-chain.backend/internal/usecases"
	"kyc-chain.backend/pkg/logger"
	"kyc-chain.backend/pkg/metrics"
)

// HistoryIntegrityJob periodically re-walks every customer's status history
// hash chain. A broken link means a stored entry was rewritten out of band.
type HistoryIntegrityJob struct {
	statusUsecase *usecases.StatusUsecase
	metrics       *metrics.Metrics
	interval      time.Duration
	stop          chan struct{}
}

func NewHistoryIntegrityJob(statusUsecase *usecases.StatusUsecase, m *metrics.Metrics, interval time.Duration) *HistoryIntegrityJob {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &HistoryIntegrityJob{
		statusUsecase: statusUsecase,
		metrics:       m,
		interval:      interval,
		stop:          make(chan struct{}),
	}
}

func (j *HistoryIntegrityJob) Start(ctx context.Context) {
	logger.Info(ctx, "starting history integrity job", zap.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "history integrity job stopped (context cancelled)")
			return
		case <-j.stop:
			logger.Info(ctx, "history integrity job stopped")
			return
		case <-ticker.C:
			j.RunOnce(ctx)
		}
	}
}

func (j *HistoryIntegrityJob) Stop() {
	close(j.stop)
}

// RunOnce verifies every customer chain and returns the number of broken
// chains found.
func (j *HistoryIntegrityJob) RunOnce(ctx context.Context) int {
	if j.metrics != nil {
		j.metrics.IntegrityChecksTotal.Inc()
	}

	kycIDs, err := j.statusUsecase.HistoryKycIDs(ctx)
	if err != nil {
		logger.Error(ctx, "history integrity: listing customers failed", zap.Error(err))
		return 0
	}

	broken := 0
	for _, kycID := range kycIDs {
		idx, err := j.statusUsecase.VerifyHistory(ctx, kycID)
		if err != nil {
			logger.Error(ctx, "history integrity: verification failed",
				zap.String("kyc_id", kycID), zap.Error(err))
			continue
		}
		if idx >= 0 {
			broken++
			if j.metrics != nil {
				j.metrics.IntegrityFailuresTotal.Inc()
			}
			logger.Error(ctx, "history integrity: hash chain broken",
				zap.String("kyc_id", kycID), zap.Int("entry_index", idx))
		}
	}

	return broken
}
