package dbmodels

import (
	pipelineapimodels "hr-pipeline-backend/models/api/pipeline"
)

type Role struct {
	BaseModel
	Title              string     `gorm:"type:varchar(500)"`
	Status             string     `gorm:"type:varchar(50)"`
	HiringBudget       *float64
	Vacancies          *int
	Urgency            *string    `gorm:"type:varchar(100)"`
	Timeline           *string    `gorm:"type:varchar(200)"`
	RequirementFields  StringList `gorm:"column:candidate_requirement_fields;type:text"`
	EvaluationCriteria StringList `gorm:"type:text"`
	CreatedByUserID    *string    `gorm:"type:varchar(255)"`

	Candidates     []Candidate     `gorm:"foreignKey:RoleID;constraint:OnDelete:CASCADE"`
	JD             *JobDescription `gorm:"foreignKey:RoleID;constraint:OnDelete:CASCADE"`
	EvaluationChat *EvaluationChat `gorm:"foreignKey:RoleID;constraint:OnDelete:CASCADE"`
}

func (r Role) ToModel() pipelineapimodels.RoleView {
	requirementFields := []string(r.RequirementFields)
	if requirementFields == nil {
		requirementFields = []string{}
	}
	evaluationCriteria := []string(r.EvaluationCriteria)
	if evaluationCriteria == nil {
		evaluationCriteria = []string{}
	}
	return pipelineapimodels.RoleView{
		ID:                 r.ID,
		Title:              r.Title,
		Status:             r.Status,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
		CreatedByUserID:    r.CreatedByUserID,
		HiringBudget:       r.HiringBudget,
		Vacancies:          r.Vacancies,
		Urgency:            r.Urgency,
		Timeline:           r.Timeline,
		RequirementFields:  requirementFields,
		EvaluationCriteria: evaluationCriteria,
	}
}
