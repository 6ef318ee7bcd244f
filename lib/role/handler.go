package rolehandler

import (
	"bytes"

	log "github.com/sirupsen/logrus"

	aihandler "hr-pipeline-backend/lib/ai"
	xlsexport "hr-pipeline-backend/lib/export/xls"
	"hr-pipeline-backend/lib/storage"
	pipelineapimodels "hr-pipeline-backend/models/api/pipeline"
)

// Provider - операции над вакансиями, их описаниями и чатом оценки
type Provider interface {
	Create(data pipelineapimodels.RoleData) (id string, err error)
	List() ([]pipelineapimodels.RoleListItem, error)
	Get(roleID string) (*pipelineapimodels.RoleView, error)
	Update(roleID string, upd pipelineapimodels.RoleUpdate) error
	Delete(roleID string) error

	ParseAndSaveJD(roleID, text string) (*pipelineapimodels.JDView, error)
	GetParsedJD(roleID string) (*pipelineapimodels.JDView, error)
	UpdateParsedJD(roleID string, upd pipelineapimodels.JDUpdate) error

	SaveEvaluationChat(roleID string, messages []pipelineapimodels.ChatMessage) error
	GetEvaluationChat(roleID string) ([]pipelineapimodels.ChatMessage, error)

	ExportCandidates(roleID string) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

func (i impl) Create(data pipelineapimodels.RoleData) (string, error) {
	id, err := storage.Instance.CreateRole(data)
	if err != nil {
		log.WithError(err).Error("ошибка создания вакансии")
		return "", err
	}
	log.WithField("role_id", id).Info("вакансия создана")
	return id, nil
}

func (i impl) List() ([]pipelineapimodels.RoleListItem, error) {
	return storage.Instance.GetAllRoles()
}

func (i impl) Get(roleID string) (*pipelineapimodels.RoleView, error) {
	return storage.Instance.GetRole(roleID)
}

func (i impl) Update(roleID string, upd pipelineapimodels.RoleUpdate) error {
	return storage.Instance.UpdateRole(roleID, upd)
}

func (i impl) Delete(roleID string) error {
	err := storage.Instance.DeleteRole(roleID)
	if err != nil {
		return err
	}
	log.WithField("role_id", roleID).Info("вакансия удалена вместе с кандидатами")
	return nil
}

// ParseAndSaveJD разбирает текст описания через внешний генератор
// и сохраняет структуру, не более одного описания на вакансию
func (i impl) ParseAndSaveJD(roleID, text string) (*pipelineapimodels.JDView, error) {
	logger := log.WithField("role_id", roleID)
	jd, err := aihandler.Instance.ParseJD(text)
	if err != nil {
		logger.WithError(err).Error("ошибка разбора описания вакансии")
		return nil, err
	}
	if err := storage.Instance.SaveParsedJD(roleID, jd); err != nil {
		logger.WithError(err).Error("ошибка сохранения описания вакансии")
		return nil, err
	}
	return &jd, nil
}

func (i impl) GetParsedJD(roleID string) (*pipelineapimodels.JDView, error) {
	return storage.Instance.GetParsedJD(roleID)
}

func (i impl) UpdateParsedJD(roleID string, upd pipelineapimodels.JDUpdate) error {
	return storage.Instance.UpdateParsedJD(roleID, upd)
}

func (i impl) SaveEvaluationChat(roleID string, messages []pipelineapimodels.ChatMessage) error {
	return storage.Instance.SaveEvaluationChat(roleID, messages)
}

func (i impl) GetEvaluationChat(roleID string) ([]pipelineapimodels.ChatMessage, error) {
	return storage.Instance.GetEvaluationChat(roleID)
}

func (i impl) ExportCandidates(roleID string) (*bytes.Buffer, error) {
	logger := log.WithField("role_id", roleID)
	roleTitle := ""
	role, err := storage.Instance.GetRole(roleID)
	if err != nil {
		return nil, err
	}
	if role != nil {
		roleTitle = role.Title
	}
	list, err := storage.Instance.GetCandidates(roleID)
	if err != nil {
		logger.WithError(err).Error("ошибка чтения кандидатов для выгрузки")
		return nil, err
	}
	return xlsexport.Instance.ExportCandidateList(roleTitle, list)
}
