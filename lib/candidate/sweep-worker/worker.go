package sweepworker

import (
	"context"
	"time"

	candidatehandler "hr-pipeline-backend/lib/candidate"
	baseworker "hr-pipeline-backend/lib/utils/base-worker"
)

// Периодическая отметка кандидатов с неположительным ответом
// как not_pushing_forward, правило отбора - в lib/pipeline
func StartWorker(ctx context.Context, interval time.Duration) {
	worker := baseworker.NewInstance("NegativeCandidateSweep", 30*time.Second, interval)
	go worker.Run(ctx, func(ctx context.Context) {
		marked, err := candidatehandler.Instance.MarkNegativeCandidates()
		if err != nil {
			worker.GetLogger().WithError(err).Error("ошибка регламентной отметки кандидатов")
			return
		}
		if marked != 0 {
			worker.GetLogger().WithField("marked", marked).Info("кандидаты отмечены")
		}
	})
}
