// Пакет pipeline - единственное место, где перечислены все правила
// смены колонки и чеклиста кандидата. Оба бэкенда хранения применяют
// эти правила внутри своих мутирующих операций, собственных проверок
// колонок у бэкендов нет.
package pipeline

import (
	"hr-pipeline-backend/models"
	pipelineapimodels "hr-pipeline-backend/models/api/pipeline"
)

// NewChecklist возвращает чеклист со всеми пятью ключами в false
func NewChecklist() map[string]bool {
	checklist := make(map[string]bool, 5)
	for _, key := range models.ChecklistKeys() {
		checklist[key] = false
	}
	return checklist
}

// ensureChecklist инициализирует чеклист только при его отсутствии,
// существующий прогресс не сбрасывается
func ensureChecklist(c *pipelineapimodels.CandidateView) {
	if c.Checklist == nil {
		c.Checklist = NewChecklist()
	}
}

// ApplyStatusUpdate применяет частичное обновление карточки:
// чеклист мержится поключево, после мержа перепроверяется правило
// перехода follow-up -> evaluation
func ApplyStatusUpdate(c *pipelineapimodels.CandidateView, upd pipelineapimodels.StatusUpdate) {
	if upd.Column != nil {
		if *upd.Column == models.ColumnFollowUp {
			ensureChecklist(c)
		}
		c.Column = *upd.Column
	}
	if upd.Checklist != nil {
		if c.Checklist == nil {
			c.Checklist = map[string]bool{}
		}
		for key, value := range upd.Checklist {
			c.Checklist[key] = value
		}
	}
	if upd.Color != nil {
		c.Color = *upd.Color
	}
	if upd.OutreachSent != nil {
		c.OutreachSent = *upd.OutreachSent
	}
	if upd.OutreachMessage != nil {
		c.OutreachMessage = upd.OutreachMessage
	}
	if upd.ConsentFormSent != nil {
		c.ConsentFormSent = *upd.ConsentFormSent
	}
	if upd.ConsentFormReceived != nil {
		c.ConsentFormReceived = *upd.ConsentFormReceived
	}
	if upd.EmailStatus != nil {
		c.EmailStatus = upd.EmailStatus
	}
	if upd.NotPushingForward != nil {
		c.NotPushingForward = *upd.NotPushingForward
	}
	if upd.SentToClient != nil {
		c.SentToClient = *upd.SentToClient
	}
	if upd.ConsentEmail != nil {
		c.ConsentEmail = upd.ConsentEmail
	}
	if upd.ConsentReply != nil {
		c.ConsentReply = upd.ConsentReply
	}
	if upd.SimulatedEmail != nil {
		c.SimulatedEmail = upd.SimulatedEmail
	}
	if upd.OutreachReply != nil {
		c.OutreachReply = upd.OutreachReply
	}
	if c.Checklist != nil && c.Checklist[models.ChecklistScreeningInterviewCompleted] {
		c.Column = models.ColumnEvaluation
	}
}

// ApplyOutreachReply сохраняет последний ответ на первичное письмо.
// Только строго положительный ответ переводит кандидата в follow-up,
// нейтральный и отрицательный колонку не меняют.
func ApplyOutreachReply(c *pipelineapimodels.CandidateView, reply pipelineapimodels.OutreachReplyRecord) {
	c.OutreachReply = &reply
	if reply.Sentiment == models.SentimentPositive {
		c.Column = models.ColumnFollowUp
		ensureChecklist(c)
	}
}

// ApplyConsentEmail фиксирует отправку запроса согласия
func ApplyConsentEmail(c *pipelineapimodels.CandidateView, email pipelineapimodels.ConsentEmailRecord) {
	c.ConsentEmail = &email
	c.ConsentFormSent = true
	status := models.EmailStatusConsentSent
	c.EmailStatus = &status
	if c.Checklist == nil {
		c.Checklist = map[string]bool{}
	}
	c.Checklist[models.ChecklistConsentFormSent] = true
}

// ApplyConsentReply фиксирует ответ на запрос согласия,
// колонка кандидата не меняется
func ApplyConsentReply(c *pipelineapimodels.CandidateView, sim pipelineapimodels.SimulatedEmailRecord, reply pipelineapimodels.ConsentReplyRecord) {
	c.SimulatedEmail = &sim
	c.ConsentReply = &reply
	consented := reply.Status == models.ConsentStatusConsented
	c.ConsentFormReceived = consented
	status := models.EmailStatusConsentDeclined
	if consented {
		status = models.EmailStatusConsentReceived
	}
	c.EmailStatus = &status
	if c.Checklist == nil {
		c.Checklist = map[string]bool{}
	}
	c.Checklist[models.ChecklistConsentFormReceived] = consented
}

// ApplyInterviewSaved переводит кандидата в evaluation,
// если сохранено завершённое интервью. Повторное применение - no-op.
func ApplyInterviewSaved(c *pipelineapimodels.CandidateView, interviewCompleted bool) {
	if interviewCompleted {
		c.Column = models.ColumnEvaluation
	}
}
