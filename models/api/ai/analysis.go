package aimodels

import (
	"hr-pipeline-backend/models"
)

// ReplyAnalysis - результат анализа текста ответа кандидата
type ReplyAnalysis struct {
	Sentiment models.ReplySentiment  `json:"sentiment" mapstructure:"sentiment"`
	Intent    string                 `json:"intent" mapstructure:"intent"`
	KeyPoints []string               `json:"key_points" mapstructure:"key_points"`
	Analysis  map[string]interface{} `json:"analysis" mapstructure:"analysis"`
}
