// Пакет storage описывает контракт хранилища конвейера подбора.
// Обе реализации (файловая и реляционная) обязаны давать одинаковые
// наблюдаемые результаты для каждой операции чтения.
package storage

import (
	"github.com/pkg/errors"
	pipelineapimodels "hr-pipeline-backend/models/api/pipeline"
)

// ErrNotFound возвращается мутирующими операциями по несуществующему id,
// операции чтения по несуществующему id возвращают nil без ошибки
var ErrNotFound = errors.New("запись не найдена")

type Provider interface {
	// вакансии
	CreateRole(data pipelineapimodels.RoleData) (id string, err error)
	GetAllRoles() (list []pipelineapimodels.RoleListItem, err error)
	GetRole(roleID string) (rec *pipelineapimodels.RoleView, err error)
	UpdateRole(roleID string, upd pipelineapimodels.RoleUpdate) error
	DeleteRole(roleID string) error

	// описание вакансии, не более одного на вакансию
	SaveParsedJD(roleID string, jd pipelineapimodels.JDView) error
	GetParsedJD(roleID string) (rec *pipelineapimodels.JDView, err error)
	UpdateParsedJD(roleID string, upd pipelineapimodels.JDUpdate) error

	// кандидаты
	CreateCandidate(roleID string, data pipelineapimodels.CandidateData) (id string, err error)
	GetCandidates(roleID string) (list []pipelineapimodels.CandidateView, err error)
	GetCandidate(roleID, candidateID string) (rec *pipelineapimodels.CandidateView, err error)
	DeleteCandidate(roleID, candidateID string) error
	UpdateCandidateStatus(roleID, candidateID string, upd pipelineapimodels.StatusUpdate) error

	// переписка с кандидатом
	SaveOutreachMessage(roleID, candidateID, message string) error
	UpdateOutreachMessage(roleID, candidateID, message string) error
	RecordOutreachReply(roleID, candidateID string, reply pipelineapimodels.OutreachReplyData) (rec *pipelineapimodels.CandidateView, err error)
	SendConsentEmail(roleID, candidateID string, data pipelineapimodels.ConsentEmailData) error
	RecordConsentReply(roleID, candidateID string, reply pipelineapimodels.ConsentReplyData) error

	// интервью, не более одного на пару (вакансия, кандидат)
	SaveInterviewData(roleID, candidateID string, data pipelineapimodels.InterviewData) error
	GetInterviewData(roleID, candidateID string) (rec *pipelineapimodels.InterviewView, err error)

	// HR-брифинги
	CreateHRBriefing(data pipelineapimodels.BriefingData, roleIDs []string) (id string, err error)
	GetAllHRBriefings() (list []pipelineapimodels.BriefingView, err error)
	GetRoleHRBriefing(roleID string) (rec *pipelineapimodels.BriefingView, err error)
	UpdateHRBriefingRoles(briefingID string, roleIDs []string) error

	// чат оценки, читается и пишется целиком
	SaveEvaluationChat(roleID string, messages []pipelineapimodels.ChatMessage) error
	GetEvaluationChat(roleID string) (list []pipelineapimodels.ChatMessage, err error)

	// шаблоны согласий
	SaveConsentTemplate(data pipelineapimodels.ConsentTemplateData) (id string, err error)
	GetAllConsentTemplates() (list []pipelineapimodels.ConsentTemplateView, err error)
	GetConsentTemplate(templateID string) (rec *pipelineapimodels.ConsentTemplateView, err error)
	DeleteConsentTemplate(templateID string) error
}

var Instance Provider
