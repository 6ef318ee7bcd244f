package dbmodels

import (
	pipelineapimodels "hr-pipeline-backend/models/api/pipeline"
)

// EvaluationChat - чат оценки, хранится и перезаписывается целиком
type EvaluationChat struct {
	RoleID    string       `gorm:"primaryKey;type:varchar(36)"`
	Messages  ChatMessages `gorm:"type:text"`
	UpdatedAt string       `gorm:"type:varchar(50)"`
}

func (c EvaluationChat) ToModel() []pipelineapimodels.ChatMessage {
	if c.Messages == nil {
		return []pipelineapimodels.ChatMessage{}
	}
	return c.Messages
}
