package pipelineapimodels

// RoleView - представление вакансии, одинаковое для обоих бэкендов
type RoleView struct {
	ID                 string   `json:"id"`
	Title              string   `json:"title"`
	Status             string   `json:"status"`
	CreatedAt          string   `json:"created_at"`
	UpdatedAt          string   `json:"updated_at"`
	CreatedByUserID    *string  `json:"created_by_user_id"`
	CreatedByEmail     *string  `json:"created_by_email,omitempty"` // устаревшее поле, используется только для вывода created_by_user_id
	HiringBudget       *float64 `json:"hiring_budget"`
	Vacancies          *int     `json:"vacancies"`
	Urgency            *string  `json:"urgency"`
	Timeline           *string  `json:"timeline"`
	RequirementFields  []string `json:"candidate_requirement_fields"`
	EvaluationCriteria []string `json:"evaluation_criteria"`
}

// RoleListItem - элемент списка вакансий с агрегатами,
// агрегаты вычисляются при каждом чтении и не хранятся
type RoleListItem struct {
	RoleView
	CandidatesCount           int  `json:"candidates_count"`
	SuccessfulCandidatesCount int  `json:"successful_candidates_count"`
	OutreachCount             int  `json:"outreach_count"`
	FollowUpCount             int  `json:"follow_up_count"`
	EvaluationCount           int  `json:"evaluation_count"`
	SentToClientCount         int  `json:"sent_to_client_count"`
	NotPushingForwardCount    int  `json:"not_pushing_forward_count"`
	HasJD                     bool `json:"has_jd"`
	HasHRBriefing             bool `json:"has_hr_briefing"`
}

type RoleData struct {
	Title              string   `json:"title"`
	Status             string   `json:"status"`
	CreatedByUserID    *string  `json:"created_by_user_id"`
	HiringBudget       *float64 `json:"hiring_budget"`
	Vacancies          *int     `json:"vacancies"`
	Urgency            *string  `json:"urgency"`
	Timeline           *string  `json:"timeline"`
	RequirementFields  []string `json:"candidate_requirement_fields"`
	EvaluationCriteria []string `json:"evaluation_criteria"`
}

// RoleUpdate - частичное обновление, применяются только заполненные поля
type RoleUpdate struct {
	Title              *string   `json:"title"`
	Status             *string   `json:"status"`
	CreatedByUserID    *string   `json:"created_by_user_id"`
	HiringBudget       *float64  `json:"hiring_budget"`
	Vacancies          *int      `json:"vacancies"`
	Urgency            *string   `json:"urgency"`
	Timeline           *string   `json:"timeline"`
	RequirementFields  *[]string `json:"candidate_requirement_fields"`
	EvaluationCriteria *[]string `json:"evaluation_criteria"`
}
