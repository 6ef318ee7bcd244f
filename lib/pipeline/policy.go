package pipeline

import (
	"strings"

	"hr-pipeline-backend/models"
	pipelineapimodels "hr-pipeline-backend/models/api/pipeline"
)

// ShouldMarkNotPushingForward - политика вызывающей стороны, не правило движка:
// кандидат считается отказавшимся, если его ответ на первичное письмо
// (или outreach-ответ, сохранённый как simulated_email) не положительный.
// Ответы на запрос согласия не учитываются.
func ShouldMarkNotPushingForward(c pipelineapimodels.CandidateView) bool {
	if c.OutreachReply != nil {
		sentiment := normalizeSentiment(string(c.OutreachReply.Sentiment))
		if sentiment != "" && sentiment != string(models.SentimentPositive) {
			return true
		}
	}
	if c.SimulatedEmail != nil && c.SimulatedEmail.Type != "consent_reply" && c.SimulatedEmail.ConsentStatus == "" {
		sentiment := normalizeSentiment(string(c.SimulatedEmail.Sentiment))
		intent := normalizeSentiment(c.SimulatedEmail.Intent)
		if intent == "not_interested" {
			return true
		}
		if sentiment != "" && sentiment != string(models.SentimentPositive) {
			return true
		}
	}
	return false
}

func normalizeSentiment(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
