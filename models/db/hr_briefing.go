package dbmodels

import (
	pipelineapimodels "hr-pipeline-backend/models/api/pipeline"
)

// HRBriefing - независимая сущность, привязывается к вакансиям
// через таблицу связей RoleHRBriefing
type HRBriefing struct {
	BaseModel
	Summary         string  `gorm:"type:text"`
	ExtractedFields JSONMap `gorm:"type:text"`
	Transcription   string  `gorm:"type:text"`
	AudioFilePath   *string `gorm:"type:varchar(1000)"`
}

func (b HRBriefing) ToModel(roleIDs []string) pipelineapimodels.BriefingView {
	fields := map[string]interface{}(b.ExtractedFields)
	if fields == nil {
		fields = map[string]interface{}{}
	}
	if roleIDs == nil {
		roleIDs = []string{}
	}
	return pipelineapimodels.BriefingView{
		ID:              b.ID,
		Summary:         b.Summary,
		ExtractedFields: fields,
		Transcription:   b.Transcription,
		RoleIDs:         roleIDs,
		AudioFilePath:   b.AudioFilePath,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// RoleHRBriefing - связь брифинга с вакансией. Внешнего ключа на
// вакансии нет намеренно: удаление вакансии не разрывает привязку,
// в списке брифингов такая вакансия показывается заглушкой названия.
type RoleHRBriefing struct {
	RoleID     string `gorm:"primaryKey;type:varchar(36)"`
	BriefingID string `gorm:"primaryKey;type:varchar(36)"`

	Briefing *HRBriefing `gorm:"foreignKey:BriefingID;constraint:OnDelete:CASCADE"`
}
