package initializers

import (
	log "github.com/sirupsen/logrus"

	"hr-pipeline-backend/config"
	"hr-pipeline-backend/db"
	"hr-pipeline-backend/lib/storage"
	"hr-pipeline-backend/lib/storage/dbstore"
	"hr-pipeline-backend/lib/storage/filestore"
)

// InitStorage выбирает бэкенд хранилища по конфигурации.
// Оба бэкенда дают одинаковые наблюдаемые результаты операций.
func InitStorage() {
	switch config.Conf.Storage.Mode {
	case "db":
		InitDBConnection()
		storage.Instance = dbstore.NewInstance(db.DB)
		log.Info("хранилище: реляционная БД")
	case "file":
		storage.Instance = filestore.NewInstance(config.Conf.Storage.DataDir)
		log.WithField("data_dir", config.Conf.Storage.DataDir).Info("хранилище: файловое")
	default:
		panic("неизвестный режим хранилища: " + config.Conf.Storage.Mode)
	}
}
