package briefinghandler

import (
	"context"

	log "github.com/sirupsen/logrus"

	filestorage "hr-pipeline-backend/lib/file-storage"
	"hr-pipeline-backend/lib/storage"
	pipelineapimodels "hr-pipeline-backend/models/api/pipeline"
)

// Provider - операции над HR-брифингами
type Provider interface {
	Create(ctx context.Context, data pipelineapimodels.BriefingData, roleIDs []string, audio []byte, audioName string) (id string, err error)
	GetAll() ([]pipelineapimodels.BriefingView, error)
	GetForRole(roleID string) (*pipelineapimodels.BriefingView, error)
	UpdateRoles(briefingID string, roleIDs []string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

func (i impl) Create(ctx context.Context, data pipelineapimodels.BriefingData, roleIDs []string, audio []byte, audioName string) (string, error) {
	if len(audio) != 0 {
		objectPath, err := filestorage.Instance.UploadBriefingAudio(ctx, audio, audioName)
		if err != nil {
			log.WithError(err).Error("ошибка загрузки аудио брифинга")
			return "", err
		}
		data.AudioFilePath = &objectPath
	}
	id, err := storage.Instance.CreateHRBriefing(data, roleIDs)
	if err != nil {
		log.WithError(err).Error("ошибка создания брифинга")
		return "", err
	}
	return id, nil
}

func (i impl) GetAll() ([]pipelineapimodels.BriefingView, error) {
	return storage.Instance.GetAllHRBriefings()
}

func (i impl) GetForRole(roleID string) (*pipelineapimodels.BriefingView, error) {
	return storage.Instance.GetRoleHRBriefing(roleID)
}

func (i impl) UpdateRoles(briefingID string, roleIDs []string) error {
	return storage.Instance.UpdateHRBriefingRoles(briefingID, roleIDs)
}
