package consenttemplatehandler

import (
	"hr-pipeline-backend/lib/storage"
	pipelineapimodels "hr-pipeline-backend/models/api/pipeline"
)

// Provider - операции над шаблонами согласий
type Provider interface {
	Save(data pipelineapimodels.ConsentTemplateData) (id string, err error)
	GetAll() ([]pipelineapimodels.ConsentTemplateView, error)
	Get(templateID string) (*pipelineapimodels.ConsentTemplateView, error)
	Delete(templateID string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

func (i impl) Save(data pipelineapimodels.ConsentTemplateData) (string, error) {
	return storage.Instance.SaveConsentTemplate(data)
}

func (i impl) GetAll() ([]pipelineapimodels.ConsentTemplateView, error) {
	return storage.Instance.GetAllConsentTemplates()
}

func (i impl) Get(templateID string) (*pipelineapimodels.ConsentTemplateView, error) {
	return storage.Instance.GetConsentTemplate(templateID)
}

func (i impl) Delete(templateID string) error {
	return storage.Instance.DeleteConsentTemplate(templateID)
}
