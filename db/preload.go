package db

import (
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	dbmodels "hr-pipeline-backend/models/db"
)

func InitPreload() {
	addDefaultConsentTemplate()
}

const defaultConsentContent = `I consent to the processing of my personal data for the purposes of this recruitment process, including storage of my resume, interview records and communication history.`

// addDefaultConsentTemplate добавляет стартовый шаблон согласия,
// если в базе нет ни одного
func addDefaultConsentTemplate() {
	var count int64
	if err := DB.Model(&dbmodels.ConsentTemplate{}).Count(&count).Error; err != nil {
		log.WithError(err).Error("ошибка проверки шаблонов согласий")
		return
	}
	if count > 0 {
		return
	}
	now := time.Now().Format(time.RFC3339)
	rec := dbmodels.ConsentTemplate{
		BaseModel: dbmodels.BaseModel{
			ID:        uuid.NewString(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:    "Standard Data Processing Consent",
		Content: defaultConsentContent,
	}
	if err := DB.Create(&rec).Error; err != nil {
		log.WithError(err).Error("ошибка добавления шаблона согласия")
		return
	}
	log.Info("Добавлен стартовый шаблон согласия")
}
