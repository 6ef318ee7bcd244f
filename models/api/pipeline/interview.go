package pipelineapimodels

import (
	"hr-pipeline-backend/models"
)

// InterviewView - единственное интервью пары (вакансия, кандидат)
type InterviewView struct {
	Summary            string                 `json:"summary"`
	Transcription      string                 `json:"transcription"`
	FitScore           *int                   `json:"fit_score"`
	KeyPoints          []string               `json:"key_points"`
	Strengths          []string               `json:"strengths"`
	Concerns           []string               `json:"concerns"`
	Recommendation     models.Recommendation  `json:"recommendation"`
	CandidateResponses map[string]interface{} `json:"candidate_responses"`
	InterviewCompleted bool                   `json:"interview_completed"`
	AudioFilePath      *string                `json:"audio_file_path,omitempty"`
}

// InterviewData - частичные данные интервью,
// незаполненные поля не затирают сохранённые значения
type InterviewData struct {
	Summary            *string                `json:"summary"`
	Transcription      *string                `json:"transcription"`
	FitScore           *int                   `json:"fit_score"`
	KeyPoints          *[]string              `json:"key_points"`
	Strengths          *[]string              `json:"strengths"`
	Concerns           *[]string              `json:"concerns"`
	Recommendation     *string                `json:"recommendation"`
	CandidateResponses map[string]interface{} `json:"candidate_responses"`
	InterviewCompleted *bool                  `json:"interview_completed"`
	AudioFilePath      *string                `json:"audio_file_path"`
}
