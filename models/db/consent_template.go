package dbmodels

import (
	pipelineapimodels "hr-pipeline-backend/models/api/pipeline"
)

type ConsentTemplate struct {
	BaseModel
	Name    string `gorm:"type:varchar(500)"`
	Content string `gorm:"type:text"`
}

func (t ConsentTemplate) ToModel() pipelineapimodels.ConsentTemplateView {
	return pipelineapimodels.ConsentTemplateView{
		ID:        t.ID,
		Name:      t.Name,
		Content:   t.Content,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
