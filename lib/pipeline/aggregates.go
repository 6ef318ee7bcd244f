package pipeline

import (
	"fmt"

	"hr-pipeline-backend/models"
	pipelineapimodels "hr-pipeline-backend/models/api/pipeline"
)

// FillRoleAggregates пересчитывает агрегаты по текущему состоянию кандидатов,
// хранимых счётчиков нет
func FillRoleAggregates(item *pipelineapimodels.RoleListItem, candidates []pipelineapimodels.CandidateView) {
	item.CandidatesCount = len(candidates)
	for _, c := range candidates {
		switch c.Column {
		case models.ColumnFollowUp:
			item.FollowUpCount++
		case models.ColumnEvaluation:
			item.EvaluationCount++
		default:
			item.OutreachCount++
		}
		if c.SentToClient {
			item.SentToClientCount++
			item.SuccessfulCandidatesCount++
		}
		if c.NotPushingForward {
			item.NotPushingForwardCount++
		}
	}
}

// UnknownRoleTitle - заглушка названия для удалённой вакансии,
// привязка к брифингу при этом сохраняется
func UnknownRoleTitle(roleID string) string {
	if len(roleID) > 8 {
		roleID = roleID[:8]
	}
	return fmt.Sprintf("Unknown role (%s)", roleID)
}
