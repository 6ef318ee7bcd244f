package dbstore

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"hr-pipeline-backend/lib/pipeline"
	"hr-pipeline-backend/lib/storage"
	"hr-pipeline-backend/models"
	pipelineapimodels "hr-pipeline-backend/models/api/pipeline"
	dbmodels "hr-pipeline-backend/models/db"
)

func (i impl) findCandidate(roleID, candidateID string) (*dbmodels.Candidate, error) {
	rec := dbmodels.Candidate{}
	err := i.db.Where("id = ? AND role_id = ?", candidateID, roleID).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "ошибка чтения кандидата")
	}
	return &rec, nil
}

func (i impl) CreateCandidate(roleID string, data pipelineapimodels.CandidateData) (string, error) {
	now := i.now()
	skills := data.Skills
	if skills == nil {
		skills = []string{}
	}
	insights := data.ParsedInsights
	if insights == nil {
		insights = map[string]interface{}{}
	}
	rec := dbmodels.Candidate{
		BaseModel: dbmodels.BaseModel{
			ID:        uuid.NewString(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		RoleID:         roleID,
		Name:           data.Name,
		Summary:        data.Summary,
		Skills:         dbmodels.StringList(skills),
		Experience:     data.Experience,
		ParsedInsights: dbmodels.JSONMap(insights),
		Column:         models.ColumnOutreach,
		Color:          models.DefaultCandidateColor,
		ResumeFilePath: data.ResumeFilePath,
	}
	if err := i.db.Create(&rec).Error; err != nil {
		return "", errors.Wrap(err, "ошибка создания кандидата")
	}
	return rec.ID, nil
}

func (i impl) GetCandidate(roleID, candidateID string) (*pipelineapimodels.CandidateView, error) {
	rec, err := i.findCandidate(roleID, candidateID)
	if err != nil || rec == nil {
		return nil, err
	}
	view := rec.ToModel()
	return &view, nil
}

func (i impl) GetCandidates(roleID string) ([]pipelineapimodels.CandidateView, error) {
	rows := []dbmodels.Candidate{}
	err := i.db.Where("role_id = ?", roleID).Order("id").Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "ошибка чтения кандидатов")
	}
	list := make([]pipelineapimodels.CandidateView, 0, len(rows))
	for _, rec := range rows {
		list = append(list, rec.ToModel())
	}
	return list, nil
}

func (i impl) DeleteCandidate(roleID, candidateID string) error {
	res := i.db.Where("id = ? AND role_id = ?", candidateID, roleID).Delete(&dbmodels.Candidate{})
	if res.Error != nil {
		return errors.Wrap(res.Error, "ошибка удаления кандидата")
	}
	if res.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// saveCandidate - общий путь всех мутаций карточки:
// строка читается, правила применяются к представлению, строка пишется назад
func (i impl) saveCandidate(rec *dbmodels.Candidate, view pipelineapimodels.CandidateView) error {
	view.UpdatedAt = i.now()
	rec.ApplyView(view)
	if err := i.db.Save(rec).Error; err != nil {
		return errors.Wrap(err, "ошибка сохранения кандидата")
	}
	return nil
}

func (i impl) UpdateCandidateStatus(roleID, candidateID string, upd pipelineapimodels.StatusUpdate) error {
	rec, err := i.findCandidate(roleID, candidateID)
	if err != nil {
		return err
	}
	if rec == nil {
		return storage.ErrNotFound
	}
	view := rec.ToModel()
	pipeline.ApplyStatusUpdate(&view, upd)
	return i.saveCandidate(rec, view)
}

func (i impl) SaveOutreachMessage(roleID, candidateID, message string) error {
	rec, err := i.findCandidate(roleID, candidateID)
	if err != nil {
		return err
	}
	if rec == nil {
		return storage.ErrNotFound
	}
	view := rec.ToModel()
	view.OutreachMessage = &message
	view.OutreachSent = true
	return i.saveCandidate(rec, view)
}

// UpdateOutreachMessage - правка текста рекрутером без отметки об отправке
func (i impl) UpdateOutreachMessage(roleID, candidateID, message string) error {
	rec, err := i.findCandidate(roleID, candidateID)
	if err != nil {
		return err
	}
	if rec == nil {
		return storage.ErrNotFound
	}
	view := rec.ToModel()
	view.OutreachMessage = &message
	return i.saveCandidate(rec, view)
}

func (i impl) RecordOutreachReply(roleID, candidateID string, reply pipelineapimodels.OutreachReplyData) (*pipelineapimodels.CandidateView, error) {
	rec, err := i.findCandidate(roleID, candidateID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, storage.ErrNotFound
	}
	view := rec.ToModel()
	pipeline.ApplyOutreachReply(&view, pipeline.ComposeOutreachReply(reply, i.now()))
	if err := i.saveCandidate(rec, view); err != nil {
		return nil, err
	}
	updated := rec.ToModel()
	return &updated, nil
}

func (i impl) SendConsentEmail(roleID, candidateID string, data pipelineapimodels.ConsentEmailData) error {
	rec, err := i.findCandidate(roleID, candidateID)
	if err != nil {
		return err
	}
	if rec == nil {
		return storage.ErrNotFound
	}
	roleTitle := ""
	if role, err := i.findRole(roleID); err != nil {
		return err
	} else if role != nil {
		roleTitle = role.Title
	}
	view := rec.ToModel()
	pipeline.ApplyConsentEmail(&view, pipeline.ComposeConsentEmail(view, roleTitle, data, i.now()))
	return i.saveCandidate(rec, view)
}

func (i impl) RecordConsentReply(roleID, candidateID string, reply pipelineapimodels.ConsentReplyData) error {
	rec, err := i.findCandidate(roleID, candidateID)
	if err != nil {
		return err
	}
	if rec == nil {
		return storage.ErrNotFound
	}
	view := rec.ToModel()
	sim, consentReply := pipeline.ComposeConsentReply(view, reply, i.now())
	pipeline.ApplyConsentReply(&view, sim, consentReply)
	return i.saveCandidate(rec, view)
}

func (i impl) findInterview(roleID, candidateID string) (*dbmodels.Interview, error) {
	rec := dbmodels.Interview{}
	err := i.db.Where("role_id = ? AND candidate_id = ?", roleID, candidateID).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "ошибка чтения интервью")
	}
	return &rec, nil
}

func (i impl) SaveInterviewData(roleID, candidateID string, data pipelineapimodels.InterviewData) error {
	candidate, err := i.findCandidate(roleID, candidateID)
	if err != nil {
		return err
	}
	if candidate == nil {
		return storage.ErrNotFound
	}
	row, err := i.findInterview(roleID, candidateID)
	if err != nil {
		return err
	}
	now := i.now()
	rec := pipeline.NewInterview()
	if row == nil {
		row = &dbmodels.Interview{
			RoleID:      roleID,
			CandidateID: candidateID,
			CreatedAt:   now,
		}
	} else {
		rec = row.ToModel()
	}
	rec = pipeline.MergeInterview(rec, data)
	row.ApplyView(rec)
	row.UpdatedAt = now
	if err := i.db.Save(row).Error; err != nil {
		return errors.Wrap(err, "ошибка сохранения интервью")
	}
	view := candidate.ToModel()
	pipeline.ApplyInterviewSaved(&view, rec.InterviewCompleted)
	return i.saveCandidate(candidate, view)
}

func (i impl) GetInterviewData(roleID, candidateID string) (*pipelineapimodels.InterviewView, error) {
	row, err := i.findInterview(roleID, candidateID)
	if err != nil || row == nil {
		return nil, err
	}
	view := row.ToModel()
	return &view, nil
}
