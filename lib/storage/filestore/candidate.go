package filestore

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"hr-pipeline-backend/lib/pipeline"
	"hr-pipeline-backend/lib/storage"
	"hr-pipeline-backend/models"
	pipelineapimodels "hr-pipeline-backend/models/api/pipeline"
)

func (i impl) candidatePath(roleID, candidateID string) string {
	return filepath.Join(i.candidateDir(roleID, candidateID), candidateFile)
}

func (i impl) CreateCandidate(roleID string, data pipelineapimodels.CandidateData) (string, error) {
	candidateID := uuid.NewString()
	now := i.now()
	skills := data.Skills
	if skills == nil {
		skills = []string{}
	}
	insights := data.ParsedInsights
	if insights == nil {
		insights = map[string]interface{}{}
	}
	rec := pipelineapimodels.CandidateView{
		ID:             candidateID,
		Name:           data.Name,
		Summary:        data.Summary,
		Skills:         skills,
		Experience:     data.Experience,
		ParsedInsights: insights,
		Column:         models.ColumnOutreach,
		Color:          models.DefaultCandidateColor,
		CreatedAt:      now,
		UpdatedAt:      now,
		ResumeFilePath: data.ResumeFilePath,
	}
	if err := writeDoc(i.candidatePath(roleID, candidateID), rec); err != nil {
		return "", err
	}
	return candidateID, nil
}

// normalizeCandidate дополняет документы старых версий значениями по умолчанию
func normalizeCandidate(rec *pipelineapimodels.CandidateView) {
	if rec.Column == "" {
		rec.Column = models.ColumnOutreach
	}
	if rec.Color == "" {
		rec.Color = models.DefaultCandidateColor
	}
	if rec.Skills == nil {
		rec.Skills = []string{}
	}
	if rec.ParsedInsights == nil {
		rec.ParsedInsights = map[string]interface{}{}
	}
}

func (i impl) GetCandidate(roleID, candidateID string) (*pipelineapimodels.CandidateView, error) {
	rec := pipelineapimodels.CandidateView{}
	found, err := readDoc(i.candidatePath(roleID, candidateID), &rec)
	if err != nil || !found {
		return nil, err
	}
	normalizeCandidate(&rec)
	return &rec, nil
}

func (i impl) GetCandidates(roleID string) ([]pipelineapimodels.CandidateView, error) {
	candidateIDs, err := listSubdirs(i.candidatesDir(roleID))
	if err != nil {
		return nil, err
	}
	list := make([]pipelineapimodels.CandidateView, 0, len(candidateIDs))
	for _, candidateID := range candidateIDs {
		rec, err := i.GetCandidate(roleID, candidateID)
		if err != nil {
			return nil, err
		}
		if rec != nil {
			list = append(list, *rec)
		}
	}
	return list, nil
}

func (i impl) DeleteCandidate(roleID, candidateID string) error {
	candidateDir := i.candidateDir(roleID, candidateID)
	info, err := os.Stat(candidateDir)
	if err != nil {
		if os.IsNotExist(err) {
			return storage.ErrNotFound
		}
		return errors.Wrap(err, "ошибка проверки каталога кандидата")
	}
	if !info.IsDir() {
		return storage.ErrNotFound
	}
	if err := os.RemoveAll(candidateDir); err != nil {
		return errors.Wrap(err, "ошибка удаления каталога кандидата")
	}
	return nil
}

// saveCandidate - общий путь всех мутаций карточки
func (i impl) saveCandidate(roleID string, rec *pipelineapimodels.CandidateView) error {
	rec.UpdatedAt = i.now()
	return writeDoc(i.candidatePath(roleID, rec.ID), rec)
}

func (i impl) UpdateCandidateStatus(roleID, candidateID string, upd pipelineapimodels.StatusUpdate) error {
	rec, err := i.GetCandidate(roleID, candidateID)
	if err != nil {
		return err
	}
	if rec == nil {
		return storage.ErrNotFound
	}
	pipeline.ApplyStatusUpdate(rec, upd)
	return i.saveCandidate(roleID, rec)
}

func (i impl) SaveOutreachMessage(roleID, candidateID, message string) error {
	rec, err := i.GetCandidate(roleID, candidateID)
	if err != nil {
		return err
	}
	if rec == nil {
		return storage.ErrNotFound
	}
	rec.OutreachMessage = &message
	rec.OutreachSent = true
	return i.saveCandidate(roleID, rec)
}

// UpdateOutreachMessage - правка текста рекрутером без отметки об отправке
func (i impl) UpdateOutreachMessage(roleID, candidateID, message string) error {
	rec, err := i.GetCandidate(roleID, candidateID)
	if err != nil {
		return err
	}
	if rec == nil {
		return storage.ErrNotFound
	}
	rec.OutreachMessage = &message
	return i.saveCandidate(roleID, rec)
}

func (i impl) RecordOutreachReply(roleID, candidateID string, reply pipelineapimodels.OutreachReplyData) (*pipelineapimodels.CandidateView, error) {
	rec, err := i.GetCandidate(roleID, candidateID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, storage.ErrNotFound
	}
	pipeline.ApplyOutreachReply(rec, pipeline.ComposeOutreachReply(reply, i.now()))
	if err := i.saveCandidate(roleID, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (i impl) SendConsentEmail(roleID, candidateID string, data pipelineapimodels.ConsentEmailData) error {
	rec, err := i.GetCandidate(roleID, candidateID)
	if err != nil {
		return err
	}
	if rec == nil {
		return storage.ErrNotFound
	}
	roleTitle := ""
	if role, err := i.GetRole(roleID); err != nil {
		return err
	} else if role != nil {
		roleTitle = role.Title
	}
	pipeline.ApplyConsentEmail(rec, pipeline.ComposeConsentEmail(*rec, roleTitle, data, i.now()))
	return i.saveCandidate(roleID, rec)
}

func (i impl) RecordConsentReply(roleID, candidateID string, reply pipelineapimodels.ConsentReplyData) error {
	rec, err := i.GetCandidate(roleID, candidateID)
	if err != nil {
		return err
	}
	if rec == nil {
		return storage.ErrNotFound
	}
	sim, consentReply := pipeline.ComposeConsentReply(*rec, reply, i.now())
	pipeline.ApplyConsentReply(rec, sim, consentReply)
	return i.saveCandidate(roleID, rec)
}

func (i impl) SaveInterviewData(roleID, candidateID string, data pipelineapimodels.InterviewData) error {
	candidate, err := i.GetCandidate(roleID, candidateID)
	if err != nil {
		return err
	}
	if candidate == nil {
		return storage.ErrNotFound
	}
	existing, err := i.GetInterviewData(roleID, candidateID)
	if err != nil {
		return err
	}
	rec := pipeline.NewInterview()
	if existing != nil {
		rec = *existing
	}
	rec = pipeline.MergeInterview(rec, data)
	if err := writeDoc(filepath.Join(i.candidateDir(roleID, candidateID), interviewFile), rec); err != nil {
		return err
	}
	pipeline.ApplyInterviewSaved(candidate, rec.InterviewCompleted)
	return i.saveCandidate(roleID, candidate)
}

func (i impl) GetInterviewData(roleID, candidateID string) (*pipelineapimodels.InterviewView, error) {
	rec := pipeline.NewInterview()
	found, err := readDoc(filepath.Join(i.candidateDir(roleID, candidateID), interviewFile), &rec)
	if err != nil || !found {
		return nil, err
	}
	rec.Recommendation = models.ParseRecommendation(string(rec.Recommendation))
	if rec.KeyPoints == nil {
		rec.KeyPoints = []string{}
	}
	if rec.Strengths == nil {
		rec.Strengths = []string{}
	}
	if rec.Concerns == nil {
		rec.Concerns = []string{}
	}
	if rec.CandidateResponses == nil {
		rec.CandidateResponses = map[string]interface{}{}
	}
	return &rec, nil
}
