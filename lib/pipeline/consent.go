package pipeline

import (
	"fmt"

	"hr-pipeline-backend/models"
	pipelineapimodels "hr-pipeline-backend/models/api/pipeline"
)

const consentEmailBody = `Dear %s,

Thank you for your interest in the %s role.

As part of our recruitment process, we need your consent to process your personal data. Please review the consent details below:

%s

Please reply to this email with either:
- "I CONSENT" if you agree to the terms above
- "I DO NOT CONSENT" if you do not agree

Best regards,
Recruitment Team`

// ComposeConsentEmail собирает письмо запроса согласия,
// текст одинаков для обоих бэкендов
func ComposeConsentEmail(c pipelineapimodels.CandidateView, roleTitle string, data pipelineapimodels.ConsentEmailData, sentAt string) pipelineapimodels.ConsentEmailRecord {
	if roleTitle == "" {
		roleTitle = data.RoleTitle
	}
	if roleTitle == "" {
		roleTitle = "Position"
	}
	candidateName := data.CandidateName
	if candidateName == "" {
		candidateName = c.Name
	}
	if candidateName == "" {
		candidateName = "Candidate"
	}
	subject := data.Subject
	if subject == "" {
		subject = fmt.Sprintf("Consent Request - %s", roleTitle)
	}
	to := data.Email
	if to == "" {
		to = fmt.Sprintf("%s@example.com", c.Name)
	}
	return pipelineapimodels.ConsentEmailRecord{
		To:               to,
		Subject:          subject,
		Content:          fmt.Sprintf(consentEmailBody, candidateName, roleTitle, data.ConsentContent),
		ConsentContent:   data.ConsentContent,
		ConsentContentID: data.ConsentContentID,
		CandidateName:    candidateName,
		SentAt:           sentAt,
		Status:           "sent",
	}
}

// ComposeConsentReply собирает записи ответа на запрос согласия
func ComposeConsentReply(c pipelineapimodels.CandidateView, reply pipelineapimodels.ConsentReplyData, receivedAt string) (pipelineapimodels.SimulatedEmailRecord, pipelineapimodels.ConsentReplyRecord) {
	status := reply.ConsentStatus
	if status != models.ConsentStatusDeclined {
		status = models.ConsentStatusConsented
	}
	sentiment := reply.Sentiment
	if sentiment == "" {
		sentiment = models.SentimentPositive
	}
	intent := reply.Intent
	if intent == "" {
		intent = "interested"
	}
	analysis := reply.Analysis
	if analysis == nil {
		analysis = map[string]interface{}{}
	}
	consentContent := ""
	consentContentID := ""
	if c.ConsentEmail != nil {
		consentContent = c.ConsentEmail.ConsentContent
		consentContentID = c.ConsentEmail.ConsentContentID
	}
	sim := pipelineapimodels.SimulatedEmailRecord{
		Content:          reply.Content,
		Sentiment:        sentiment,
		Intent:           intent,
		Analysis:         analysis,
		Timestamp:        receivedAt,
		Type:             "consent_reply",
		ConsentStatus:    status,
		ConsentContent:   consentContent,
		ConsentContentID: consentContentID,
	}
	response := reply.Response
	if response == "" {
		response = "I CONSENT"
		if status == models.ConsentStatusDeclined {
			response = "I DO NOT CONSENT"
		}
	}
	rec := pipelineapimodels.ConsentReplyRecord{
		ReceivedAt:  receivedAt,
		Status:      status,
		RespondedBy: c.Name,
		Response:    response,
	}
	return sim, rec
}

// ComposeOutreachReply нормализует данные ответа от внешнего анализатора
func ComposeOutreachReply(reply pipelineapimodels.OutreachReplyData, receivedAt string) pipelineapimodels.OutreachReplyRecord {
	content := reply.Content
	if content == "" {
		content = reply.Body
	}
	sentiment := reply.Sentiment
	if sentiment == "" {
		sentiment = models.SentimentNeutral
	}
	intent := reply.Intent
	if intent == "" {
		intent = "needs_info"
	}
	analysis := reply.Analysis
	if analysis == nil {
		analysis = map[string]interface{}{}
	}
	return pipelineapimodels.OutreachReplyRecord{
		Content:    content,
		Subject:    reply.Subject,
		Sentiment:  sentiment,
		Intent:     intent,
		Analysis:   analysis,
		ReceivedAt: receivedAt,
	}
}
