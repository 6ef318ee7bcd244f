package dbmodels

import (
	"hr-pipeline-backend/models"
	pipelineapimodels "hr-pipeline-backend/models/api/pipeline"
)

// Interview - не более одного на пару (вакансия, кандидат),
// единственность закреплена составным уникальным индексом
type Interview struct {
	ID                 uint       `gorm:"primaryKey;autoIncrement"`
	RoleID             string     `gorm:"type:varchar(36);uniqueIndex:uq_interview_role_candidate"`
	CandidateID        string     `gorm:"type:varchar(36);uniqueIndex:uq_interview_role_candidate"`
	Summary            string     `gorm:"type:text"`
	Transcription      string     `gorm:"type:text"`
	FitScore           *int
	KeyPoints          StringList `gorm:"type:text"`
	Strengths          StringList `gorm:"type:text"`
	Concerns           StringList `gorm:"type:text"`
	Recommendation     *string    `gorm:"type:varchar(50)"`
	CandidateResponses JSONMap    `gorm:"type:text"`
	InterviewCompleted bool       `gorm:"default:true"`
	AudioFilePath      *string    `gorm:"type:varchar(1000)"`
	CreatedAt          string     `gorm:"type:varchar(50)"`
	UpdatedAt          string     `gorm:"type:varchar(50)"`
}

func (inv Interview) ToModel() pipelineapimodels.InterviewView {
	keyPoints := []string(inv.KeyPoints)
	if keyPoints == nil {
		keyPoints = []string{}
	}
	strengths := []string(inv.Strengths)
	if strengths == nil {
		strengths = []string{}
	}
	concerns := []string(inv.Concerns)
	if concerns == nil {
		concerns = []string{}
	}
	responses := map[string]interface{}(inv.CandidateResponses)
	if responses == nil {
		responses = map[string]interface{}{}
	}
	recommendation := ""
	if inv.Recommendation != nil {
		recommendation = *inv.Recommendation
	}
	return pipelineapimodels.InterviewView{
		Summary:            inv.Summary,
		Transcription:      inv.Transcription,
		FitScore:           inv.FitScore,
		KeyPoints:          keyPoints,
		Strengths:          strengths,
		Concerns:           concerns,
		Recommendation:     models.ParseRecommendation(recommendation),
		CandidateResponses: responses,
		InterviewCompleted: inv.InterviewCompleted,
		AudioFilePath:      inv.AudioFilePath,
	}
}

func (inv *Interview) ApplyView(view pipelineapimodels.InterviewView) {
	inv.Summary = view.Summary
	inv.Transcription = view.Transcription
	inv.FitScore = view.FitScore
	inv.KeyPoints = StringList(view.KeyPoints)
	inv.Strengths = StringList(view.Strengths)
	inv.Concerns = StringList(view.Concerns)
	recommendation := string(view.Recommendation)
	inv.Recommendation = &recommendation
	inv.CandidateResponses = JSONMap(view.CandidateResponses)
	inv.InterviewCompleted = view.InterviewCompleted
	inv.AudioFilePath = view.AudioFilePath
}
