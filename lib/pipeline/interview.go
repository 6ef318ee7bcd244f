package pipeline

import (
	"hr-pipeline-backend/models"
	pipelineapimodels "hr-pipeline-backend/models/api/pipeline"
)

// NewInterview - интервью со значениями по умолчанию
func NewInterview() pipelineapimodels.InterviewView {
	return pipelineapimodels.InterviewView{
		KeyPoints:          []string{},
		Strengths:          []string{},
		Concerns:           []string{},
		Recommendation:     models.RecommendationMaybe,
		CandidateResponses: map[string]interface{}{},
		InterviewCompleted: true,
	}
}

// MergeInterview накладывает только заполненные поля на сохранённое интервью,
// отсутствующие поля не затираются
func MergeInterview(existing pipelineapimodels.InterviewView, data pipelineapimodels.InterviewData) pipelineapimodels.InterviewView {
	if data.Summary != nil {
		existing.Summary = *data.Summary
	}
	if data.Transcription != nil {
		existing.Transcription = *data.Transcription
	}
	if data.FitScore != nil {
		existing.FitScore = data.FitScore
	}
	if data.KeyPoints != nil {
		existing.KeyPoints = *data.KeyPoints
	}
	if data.Strengths != nil {
		existing.Strengths = *data.Strengths
	}
	if data.Concerns != nil {
		existing.Concerns = *data.Concerns
	}
	if data.Recommendation != nil {
		existing.Recommendation = models.ParseRecommendation(*data.Recommendation)
	}
	if data.CandidateResponses != nil {
		existing.CandidateResponses = data.CandidateResponses
	}
	if data.InterviewCompleted != nil {
		existing.InterviewCompleted = *data.InterviewCompleted
	}
	if data.AudioFilePath != nil {
		existing.AudioFilePath = data.AudioFilePath
	}
	return existing
}
