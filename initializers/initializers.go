package initializers

import (
	"context"
	"time"

	"hr-pipeline-backend/config"
	aihandler "hr-pipeline-backend/lib/ai"
	briefinghandler "hr-pipeline-backend/lib/briefing"
	candidatehandler "hr-pipeline-backend/lib/candidate"
	sweepworker "hr-pipeline-backend/lib/candidate/sweep-worker"
	consenttemplatehandler "hr-pipeline-backend/lib/consent-template"
	xlsexport "hr-pipeline-backend/lib/export/xls"
	filestorage "hr-pipeline-backend/lib/file-storage"
	rolehandler "hr-pipeline-backend/lib/role"
)

func InitAllServices(ctx context.Context) {
	InitLogger()
	config.InitConfig()
	InitStorage()
	InitS3()
	InitSmtp()
	filestorage.NewHandler()
	aihandler.NewHandler()
	xlsexport.NewHandler()
	rolehandler.NewHandler()
	candidatehandler.NewHandler()
	briefinghandler.NewHandler()
	consenttemplatehandler.NewHandler()
	go initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	if config.Conf.Sweep.Enabled != nil && !*config.Conf.Sweep.Enabled {
		return
	}
	interval := time.Duration(config.Conf.Sweep.IntervalMin) * time.Minute
	// Задача регламентной отметки кандидатов с отрицательным ответом
	sweepworker.StartWorker(ctx, interval)
}
