package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	dbmodels "hr-pipeline-backend/models/db"
)

func AutoMigrateDB(db *gorm.DB) error {
	log.Info("Запуск миграций")
	if err := db.AutoMigrate(&dbmodels.Role{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Role")
	}
	if err := db.AutoMigrate(&dbmodels.JobDescription{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры JobDescription")
	}
	if err := db.AutoMigrate(&dbmodels.Candidate{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Candidate")
	}
	if err := db.AutoMigrate(&dbmodels.Interview{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Interview")
	}
	if err := db.AutoMigrate(&dbmodels.HRBriefing{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры HRBriefing")
	}
	if err := db.AutoMigrate(&dbmodels.RoleHRBriefing{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры RoleHRBriefing")
	}
	if err := db.AutoMigrate(&dbmodels.EvaluationChat{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры EvaluationChat")
	}
	if err := db.AutoMigrate(&dbmodels.ConsentTemplate{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры ConsentTemplate")
	}
	// базы старых версий создавались без этой колонки,
	// на уже обновлённой схеме команда падает и это нормально
	db.Exec("ALTER TABLE roles ADD COLUMN created_by_user_id varchar(255);")
	log.Info("Миграция прошла успешно")
	return nil
}
