package candidatehandler

import (
	"context"

	log "github.com/sirupsen/logrus"

	aihandler "hr-pipeline-backend/lib/ai"
	pdfexport "hr-pipeline-backend/lib/export/pdf"
	filestorage "hr-pipeline-backend/lib/file-storage"
	"hr-pipeline-backend/lib/pipeline"
	"hr-pipeline-backend/lib/smtp"
	"hr-pipeline-backend/lib/storage"
	pipelineapimodels "hr-pipeline-backend/models/api/pipeline"
)

// Provider - операции над кандидатами: карточка, переписка,
// согласия, интервью и регламентная отметка not_pushing_forward
type Provider interface {
	Create(roleID string, data pipelineapimodels.CandidateData) (id string, err error)
	CreateFromResume(ctx context.Context, roleID, resumeText string, file []byte, fileName string) (id string, err error)
	List(roleID string) ([]pipelineapimodels.CandidateView, error)
	Get(roleID, candidateID string) (*pipelineapimodels.CandidateView, error)
	Delete(roleID, candidateID string) error
	UpdateStatus(roleID, candidateID string, upd pipelineapimodels.StatusUpdate) error

	DraftOutreach(roleID, candidateID string) (message string, err error)
	SendOutreach(roleID, candidateID, message string) error
	RecordReply(roleID, candidateID, replyText string) (*pipelineapimodels.CandidateView, error)
	SendConsentEmail(roleID, candidateID string, data pipelineapimodels.ConsentEmailData) error
	RecordConsentReply(roleID, candidateID string, reply pipelineapimodels.ConsentReplyData) error

	SaveInterview(roleID, candidateID string, data pipelineapimodels.InterviewData) error
	ExtractAndSaveInterview(ctx context.Context, roleID, candidateID, transcription string, audio []byte, audioName string) error
	GetInterview(roleID, candidateID string) (*pipelineapimodels.InterviewView, error)
	ExportInterviewReport(roleID, candidateID string) ([]byte, error)

	MarkNegativeCandidates() (marked int, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

func (i impl) Create(roleID string, data pipelineapimodels.CandidateData) (string, error) {
	id, err := storage.Instance.CreateCandidate(roleID, data)
	if err != nil {
		log.WithField("role_id", roleID).WithError(err).Error("ошибка создания кандидата")
		return "", err
	}
	return id, nil
}

// CreateFromResume разбирает текст резюме через внешний генератор,
// кладёт файл резюме в S3 и создаёт карточку с путём к объекту
func (i impl) CreateFromResume(ctx context.Context, roleID, resumeText string, file []byte, fileName string) (string, error) {
	logger := log.WithField("role_id", roleID)
	data, err := aihandler.Instance.ParseResume(resumeText)
	if err != nil {
		logger.WithError(err).Error("ошибка разбора резюме")
		return "", err
	}
	if len(file) != 0 {
		objectPath, err := filestorage.Instance.UploadResume(ctx, roleID, file, fileName)
		if err != nil {
			logger.WithError(err).Error("ошибка загрузки резюме")
			return "", err
		}
		data.ResumeFilePath = &objectPath
	}
	return i.Create(roleID, data)
}

func (i impl) List(roleID string) ([]pipelineapimodels.CandidateView, error) {
	return storage.Instance.GetCandidates(roleID)
}

func (i impl) Get(roleID, candidateID string) (*pipelineapimodels.CandidateView, error) {
	return storage.Instance.GetCandidate(roleID, candidateID)
}

func (i impl) Delete(roleID, candidateID string) error {
	return storage.Instance.DeleteCandidate(roleID, candidateID)
}

func (i impl) UpdateStatus(roleID, candidateID string, upd pipelineapimodels.StatusUpdate) error {
	return storage.Instance.UpdateCandidateStatus(roleID, candidateID, upd)
}

// DraftOutreach генерирует черновик первичного письма и сохраняет его
// без отметки об отправке
func (i impl) DraftOutreach(roleID, candidateID string) (string, error) {
	logger := log.WithField("role_id", roleID).WithField("candidate_id", candidateID)
	candidate, err := storage.Instance.GetCandidate(roleID, candidateID)
	if err != nil {
		return "", err
	}
	if candidate == nil {
		return "", storage.ErrNotFound
	}
	roleTitle := ""
	if role, err := storage.Instance.GetRole(roleID); err != nil {
		return "", err
	} else if role != nil {
		roleTitle = role.Title
	}
	message, err := aihandler.Instance.DraftOutreach(roleTitle, candidate.Name, candidate.Skills)
	if err != nil {
		logger.WithError(err).Error("ошибка генерации первичного письма")
		return "", err
	}
	if err := storage.Instance.UpdateOutreachMessage(roleID, candidateID, message); err != nil {
		return "", err
	}
	return message, nil
}

func (i impl) SendOutreach(roleID, candidateID, message string) error {
	return storage.Instance.SaveOutreachMessage(roleID, candidateID, message)
}

// RecordReply анализирует текст ответа кандидата и сохраняет результат,
// положительный ответ переводит кандидата в follow-up
func (i impl) RecordReply(roleID, candidateID, replyText string) (*pipelineapimodels.CandidateView, error) {
	logger := log.WithField("role_id", roleID).WithField("candidate_id", candidateID)
	analysis, err := aihandler.Instance.AnalyzeReply(replyText)
	if err != nil {
		logger.WithError(err).Error("ошибка анализа ответа кандидата")
		return nil, err
	}
	reply := pipelineapimodels.OutreachReplyData{
		Content:   replyText,
		Sentiment: analysis.Sentiment,
		Intent:    analysis.Intent,
		Analysis: map[string]interface{}{
			"key_points": analysis.KeyPoints,
		},
	}
	return storage.Instance.RecordOutreachReply(roleID, candidateID, reply)
}

// SendConsentEmail фиксирует запрос согласия в хранилище и затем
// пытается отправить письмо, неудача отправки не откатывает запись
func (i impl) SendConsentEmail(roleID, candidateID string, data pipelineapimodels.ConsentEmailData) error {
	logger := log.WithField("role_id", roleID).WithField("candidate_id", candidateID)
	if err := storage.Instance.SendConsentEmail(roleID, candidateID, data); err != nil {
		return err
	}
	candidate, err := storage.Instance.GetCandidate(roleID, candidateID)
	if err != nil || candidate == nil || candidate.ConsentEmail == nil {
		return err
	}
	rec := candidate.ConsentEmail
	if smtp.Instance == nil {
		logger.Warn("запрос согласия зафиксирован, smtp клиент не настроен")
		return nil
	}
	if err := smtp.Instance.SendEMail("recruitment", rec.To, rec.Content, rec.Subject); err != nil {
		logger.WithError(err).Warn("запрос согласия зафиксирован, письмо не отправлено")
	}
	return nil
}

func (i impl) RecordConsentReply(roleID, candidateID string, reply pipelineapimodels.ConsentReplyData) error {
	return storage.Instance.RecordConsentReply(roleID, candidateID, reply)
}

func (i impl) SaveInterview(roleID, candidateID string, data pipelineapimodels.InterviewData) error {
	return storage.Instance.SaveInterviewData(roleID, candidateID, data)
}

// ExtractAndSaveInterview разбирает транскрипцию интервью,
// кладёт аудио в S3 и сохраняет данные интервью
func (i impl) ExtractAndSaveInterview(ctx context.Context, roleID, candidateID, transcription string, audio []byte, audioName string) error {
	logger := log.WithField("role_id", roleID).WithField("candidate_id", candidateID)
	data, err := aihandler.Instance.ExtractInterview(transcription)
	if err != nil {
		logger.WithError(err).Error("ошибка разбора интервью")
		return err
	}
	data.Transcription = &transcription
	if len(audio) != 0 {
		objectPath, err := filestorage.Instance.UploadInterviewAudio(ctx, roleID, candidateID, audio, audioName)
		if err != nil {
			logger.WithError(err).Error("ошибка загрузки аудио интервью")
			return err
		}
		data.AudioFilePath = &objectPath
	}
	return storage.Instance.SaveInterviewData(roleID, candidateID, data)
}

func (i impl) GetInterview(roleID, candidateID string) (*pipelineapimodels.InterviewView, error) {
	return storage.Instance.GetInterviewData(roleID, candidateID)
}

func (i impl) ExportInterviewReport(roleID, candidateID string) ([]byte, error) {
	rec, err := storage.Instance.GetInterviewData(roleID, candidateID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, storage.ErrNotFound
	}
	roleTitle := ""
	if role, err := storage.Instance.GetRole(roleID); err != nil {
		return nil, err
	} else if role != nil {
		roleTitle = role.Title
	}
	candidateName := ""
	if candidate, err := storage.Instance.GetCandidate(roleID, candidateID); err != nil {
		return nil, err
	} else if candidate != nil {
		candidateName = candidate.Name
	}
	return pdfexport.GenerateInterviewReport(roleTitle, candidateName, *rec)
}

// MarkNegativeCandidates - регламентная отметка кандидатов,
// чей сохранённый ответ не положителен. Правило отбора - в lib/pipeline.
func (i impl) MarkNegativeCandidates() (int, error) {
	roles, err := storage.Instance.GetAllRoles()
	if err != nil {
		return 0, err
	}
	marked := 0
	value := true
	for _, role := range roles {
		candidates, err := storage.Instance.GetCandidates(role.ID)
		if err != nil {
			return marked, err
		}
		for _, candidate := range candidates {
			if candidate.NotPushingForward || !pipeline.ShouldMarkNotPushingForward(candidate) {
				continue
			}
			upd := pipelineapimodels.StatusUpdate{NotPushingForward: &value}
			if err := storage.Instance.UpdateCandidateStatus(role.ID, candidate.ID, upd); err != nil {
				return marked, err
			}
			log.
				WithField("role_id", role.ID).
				WithField("candidate_id", candidate.ID).
				Info("кандидат отмечен как не продвигающийся")
			marked++
		}
	}
	return marked, nil
}
