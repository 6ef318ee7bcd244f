// Пакет dbstore - реляционная реализация хранилища на gorm.
// Каскадное удаление обеспечивают внешние ключи ON DELETE CASCADE,
// агрегаты вакансий пересчитываются на каждом чтении списка.
package dbstore

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"hr-pipeline-backend/lib/pipeline"
	"hr-pipeline-backend/lib/storage"
	"hr-pipeline-backend/models"
	pipelineapimodels "hr-pipeline-backend/models/api/pipeline"
	dbmodels "hr-pipeline-backend/models/db"
)

func NewInstance(db *gorm.DB) storage.Provider {
	return &impl{
		db:  db,
		now: func() string { return time.Now().Format(time.RFC3339) },
	}
}

type impl struct {
	db  *gorm.DB
	now func() string
}

func (i impl) findRole(roleID string) (*dbmodels.Role, error) {
	rec := dbmodels.Role{}
	err := i.db.Where("id = ?", roleID).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "ошибка чтения вакансии")
	}
	return &rec, nil
}

func (i impl) CreateRole(data pipelineapimodels.RoleData) (string, error) {
	now := i.now()
	status := data.Status
	if status == "" {
		status = models.RoleStatusNew
	}
	requirementFields := data.RequirementFields
	if len(requirementFields) == 0 {
		requirementFields = models.DefaultRequirementFields()
	}
	evaluationCriteria := data.EvaluationCriteria
	if len(evaluationCriteria) == 0 {
		evaluationCriteria = models.DefaultEvaluationCriteria()
	}
	rec := dbmodels.Role{
		BaseModel: dbmodels.BaseModel{
			ID:        uuid.NewString(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:              data.Title,
		Status:             status,
		HiringBudget:       data.HiringBudget,
		Vacancies:          data.Vacancies,
		Urgency:            data.Urgency,
		Timeline:           data.Timeline,
		RequirementFields:  dbmodels.StringList(requirementFields),
		EvaluationCriteria: dbmodels.StringList(evaluationCriteria),
		CreatedByUserID:    data.CreatedByUserID,
	}
	if err := i.db.Create(&rec).Error; err != nil {
		return "", errors.Wrap(err, "ошибка создания вакансии")
	}
	return rec.ID, nil
}

func (i impl) GetRole(roleID string) (*pipelineapimodels.RoleView, error) {
	rec, err := i.findRole(roleID)
	if err != nil || rec == nil {
		return nil, err
	}
	view := rec.ToModel()
	return &view, nil
}

func (i impl) GetAllRoles() ([]pipelineapimodels.RoleListItem, error) {
	roles := []dbmodels.Role{}
	if err := i.db.Order("id").Find(&roles).Error; err != nil {
		return nil, errors.Wrap(err, "ошибка чтения вакансий")
	}
	list := make([]pipelineapimodels.RoleListItem, 0, len(roles))
	for _, role := range roles {
		candidates, err := i.GetCandidates(role.ID)
		if err != nil {
			return nil, err
		}
		item := pipelineapimodels.RoleListItem{RoleView: role.ToModel()}
		pipeline.FillRoleAggregates(&item, candidates)
		var jdCount int64
		err = i.db.Model(&dbmodels.JobDescription{}).
			Where("role_id = ?", role.ID).
			Count(&jdCount).Error
		if err != nil {
			return nil, errors.Wrap(err, "ошибка чтения описания вакансии")
		}
		item.HasJD = jdCount > 0
		briefing, err := i.GetRoleHRBriefing(role.ID)
		if err != nil {
			return nil, err
		}
		item.HasHRBriefing = briefing != nil
		list = append(list, item)
	}
	return list, nil
}

func (i impl) UpdateRole(roleID string, upd pipelineapimodels.RoleUpdate) error {
	rec, err := i.findRole(roleID)
	if err != nil {
		return err
	}
	if rec == nil {
		return storage.ErrNotFound
	}
	if upd.Title != nil {
		rec.Title = *upd.Title
	}
	if upd.Status != nil {
		rec.Status = *upd.Status
	}
	if upd.CreatedByUserID != nil {
		rec.CreatedByUserID = upd.CreatedByUserID
	}
	if upd.HiringBudget != nil {
		rec.HiringBudget = upd.HiringBudget
	}
	if upd.Vacancies != nil {
		rec.Vacancies = upd.Vacancies
	}
	if upd.Urgency != nil {
		rec.Urgency = upd.Urgency
	}
	if upd.Timeline != nil {
		rec.Timeline = upd.Timeline
	}
	if upd.RequirementFields != nil {
		rec.RequirementFields = dbmodels.StringList(*upd.RequirementFields)
	}
	if upd.EvaluationCriteria != nil {
		rec.EvaluationCriteria = dbmodels.StringList(*upd.EvaluationCriteria)
	}
	rec.UpdatedAt = i.now()
	if err := i.db.Save(rec).Error; err != nil {
		return errors.Wrap(err, "ошибка обновления вакансии")
	}
	return nil
}

func (i impl) DeleteRole(roleID string) error {
	res := i.db.Where("id = ?", roleID).Delete(&dbmodels.Role{})
	if res.Error != nil {
		return errors.Wrap(res.Error, "ошибка удаления вакансии")
	}
	if res.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (i impl) findJD(roleID string) (*dbmodels.JobDescription, error) {
	rec := dbmodels.JobDescription{}
	err := i.db.Where("role_id = ?", roleID).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "ошибка чтения описания вакансии")
	}
	return &rec, nil
}

func (i impl) SaveParsedJD(roleID string, jd pipelineapimodels.JDView) error {
	rec, err := i.findJD(roleID)
	if err != nil {
		return err
	}
	if rec == nil {
		rec = &dbmodels.JobDescription{RoleID: roleID}
	}
	rec.JobTitle = jd.JobTitle
	rec.JobSummary = jd.JobSummary
	rec.Responsibilities = dbmodels.StringList(jd.Responsibilities)
	rec.Requirements = dbmodels.StringList(jd.Requirements)
	rec.Skills = dbmodels.StringList(jd.Skills)
	rec.JDFilePath = jd.JDFilePath
	if err := i.db.Save(rec).Error; err != nil {
		return errors.Wrap(err, "ошибка сохранения описания вакансии")
	}
	return nil
}

func (i impl) GetParsedJD(roleID string) (*pipelineapimodels.JDView, error) {
	rec, err := i.findJD(roleID)
	if err != nil || rec == nil {
		return nil, err
	}
	view := rec.ToModel()
	return &view, nil
}

func (i impl) UpdateParsedJD(roleID string, upd pipelineapimodels.JDUpdate) error {
	rec, err := i.GetParsedJD(roleID)
	if err != nil {
		return err
	}
	if rec == nil {
		rec = &pipelineapimodels.JDView{
			Responsibilities: []string{},
			Requirements:     []string{},
			Skills:           []string{},
		}
	}
	if upd.JobTitle != nil {
		rec.JobTitle = *upd.JobTitle
	}
	if upd.JobSummary != nil {
		rec.JobSummary = *upd.JobSummary
	}
	if upd.Responsibilities != nil {
		rec.Responsibilities = *upd.Responsibilities
	}
	if upd.Requirements != nil {
		rec.Requirements = *upd.Requirements
	}
	if upd.Skills != nil {
		rec.Skills = *upd.Skills
	}
	if upd.JDFilePath != nil {
		rec.JDFilePath = upd.JDFilePath
	}
	return i.SaveParsedJD(roleID, *rec)
}

func (i impl) SaveEvaluationChat(roleID string, messages []pipelineapimodels.ChatMessage) error {
	if messages == nil {
		messages = []pipelineapimodels.ChatMessage{}
	}
	rec := dbmodels.EvaluationChat{}
	err := i.db.Where("role_id = ?", roleID).First(&rec).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.Wrap(err, "ошибка чтения чата оценки")
	}
	rec.RoleID = roleID
	rec.Messages = dbmodels.ChatMessages(messages)
	rec.UpdatedAt = i.now()
	if err := i.db.Save(&rec).Error; err != nil {
		return errors.Wrap(err, "ошибка сохранения чата оценки")
	}
	return nil
}

func (i impl) GetEvaluationChat(roleID string) ([]pipelineapimodels.ChatMessage, error) {
	rec := dbmodels.EvaluationChat{}
	err := i.db.Where("role_id = ?", roleID).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []pipelineapimodels.ChatMessage{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "ошибка чтения чата оценки")
	}
	return rec.ToModel(), nil
}
