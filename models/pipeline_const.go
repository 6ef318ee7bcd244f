package models

import "strings"

type PipelineColumn string

const (
	ColumnOutreach   PipelineColumn = "outreach"
	ColumnFollowUp   PipelineColumn = "follow-up"
	ColumnEvaluation PipelineColumn = "evaluation"
)

type ReplySentiment string

const (
	SentimentPositive ReplySentiment = "positive"
	SentimentNeutral  ReplySentiment = "neutral"
	SentimentNegative ReplySentiment = "negative"
)

type ConsentStatus string

const (
	ConsentStatusConsented ConsentStatus = "consented"
	ConsentStatusDeclined  ConsentStatus = "declined"
)

type Recommendation string

const (
	RecommendationYes   Recommendation = "yes"
	RecommendationNo    Recommendation = "no"
	RecommendationMaybe Recommendation = "maybe"
)

// токены статуса почтового взаимодействия с кандидатом
const (
	EmailStatusConsentSent     = "consent_sent"
	EmailStatusConsentReceived = "consent_received"
	EmailStatusConsentDeclined = "consent_declined"
)

// фиксированные ключи чеклиста кандидата
const (
	ChecklistConsentFormSent               = "consent_form_sent"
	ChecklistConsentFormReceived           = "consent_form_received"
	ChecklistUpdatedCvReceived             = "updated_cv_received"
	ChecklistScreeningInterviewScheduled   = "screening_interview_scheduled"
	ChecklistScreeningInterviewCompleted   = "screening_interview_completed"
)

const (
	RoleStatusNew         = "New"
	DefaultCandidateColor = "amber-transparent"
)

func ChecklistKeys() []string {
	return []string{
		ChecklistConsentFormSent,
		ChecklistConsentFormReceived,
		ChecklistUpdatedCvReceived,
		ChecklistScreeningInterviewScheduled,
		ChecklistScreeningInterviewCompleted,
	}
}

// стартовый набор полей, которые кандидат должен указать по вакансии
func DefaultRequirementFields() []string {
	return []string{
		"expected_salary",
		"earliest_start_date",
		"work_authorization",
		"location_preferences",
		"notice_period",
	}
}

// стартовый набор критериев оценки
func DefaultEvaluationCriteria() []string {
	return []string{
		"Must-haves",
		"Nice-to-haves",
		"Competencies",
		"Technical criteria",
		"Behavioral criteria",
	}
}

func ParseRecommendation(value string) Recommendation {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case string(RecommendationYes):
		return RecommendationYes
	case string(RecommendationNo):
		return RecommendationNo
	default:
		return RecommendationMaybe
	}
}
