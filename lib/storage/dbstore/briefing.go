package dbstore

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"hr-pipeline-backend/lib/pipeline"
	"hr-pipeline-backend/lib/storage"
	pipelineapimodels "hr-pipeline-backend/models/api/pipeline"
	dbmodels "hr-pipeline-backend/models/db"
)

func (i impl) CreateHRBriefing(data pipelineapimodels.BriefingData, roleIDs []string) (string, error) {
	now := i.now()
	rec := dbmodels.HRBriefing{
		BaseModel: dbmodels.BaseModel{
			ID:        uuid.NewString(),
			CreatedAt: now,
		},
		Summary:         data.Summary,
		ExtractedFields: dbmodels.JSONMap(data.ExtractedFields),
		Transcription:   data.Transcription,
		AudioFilePath:   data.AudioFilePath,
	}
	err := i.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&rec).Error; err != nil {
			return errors.Wrap(err, "ошибка создания брифинга")
		}
		return createBriefingLinks(tx, rec.ID, roleIDs)
	})
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func createBriefingLinks(tx *gorm.DB, briefingID string, roleIDs []string) error {
	for _, roleID := range roleIDs {
		link := dbmodels.RoleHRBriefing{RoleID: roleID, BriefingID: briefingID}
		if err := tx.Create(&link).Error; err != nil {
			return errors.Wrap(err, "ошибка привязки брифинга к вакансии")
		}
	}
	return nil
}

func (i impl) briefingRoleIDs(briefingID string) ([]string, error) {
	links := []dbmodels.RoleHRBriefing{}
	err := i.db.Where("briefing_id = ?", briefingID).Order("role_id").Find(&links).Error
	if err != nil {
		return nil, errors.Wrap(err, "ошибка чтения привязок брифинга")
	}
	roleIDs := make([]string, 0, len(links))
	for _, link := range links {
		roleIDs = append(roleIDs, link.RoleID)
	}
	return roleIDs, nil
}

func (i impl) GetAllHRBriefings() ([]pipelineapimodels.BriefingView, error) {
	rows := []dbmodels.HRBriefing{}
	if err := i.db.Order("id").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "ошибка чтения брифингов")
	}
	list := make([]pipelineapimodels.BriefingView, 0, len(rows))
	for _, rec := range rows {
		roleIDs, err := i.briefingRoleIDs(rec.ID)
		if err != nil {
			return nil, err
		}
		view := rec.ToModel(roleIDs)
		view.AssignedRoles, err = i.resolveAssignedRoles(roleIDs)
		if err != nil {
			return nil, err
		}
		list = append(list, view)
	}
	return list, nil
}

// resolveAssignedRoles подставляет названия вакансий, в том числе удалённых
func (i impl) resolveAssignedRoles(roleIDs []string) ([]pipelineapimodels.AssignedRole, error) {
	assigned := make([]pipelineapimodels.AssignedRole, 0, len(roleIDs))
	for _, roleID := range roleIDs {
		role, err := i.findRole(roleID)
		if err != nil {
			return nil, err
		}
		title := pipeline.UnknownRoleTitle(roleID)
		if role != nil {
			title = role.Title
		}
		assigned = append(assigned, pipelineapimodels.AssignedRole{ID: roleID, Title: title})
	}
	return assigned, nil
}

func (i impl) GetRoleHRBriefing(roleID string) (*pipelineapimodels.BriefingView, error) {
	link := dbmodels.RoleHRBriefing{}
	err := i.db.Where("role_id = ?", roleID).Order("briefing_id").First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "ошибка чтения привязок брифинга")
	}
	rec := dbmodels.HRBriefing{}
	if err := i.db.Where("id = ?", link.BriefingID).First(&rec).Error; err != nil {
		return nil, errors.Wrap(err, "ошибка чтения брифинга")
	}
	roleIDs, err := i.briefingRoleIDs(rec.ID)
	if err != nil {
		return nil, err
	}
	view := rec.ToModel(roleIDs)
	return &view, nil
}

// UpdateHRBriefingRoles заменяет список привязанных вакансий целиком
func (i impl) UpdateHRBriefingRoles(briefingID string, roleIDs []string) error {
	rec := dbmodels.HRBriefing{}
	err := i.db.Where("id = ?", briefingID).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return storage.ErrNotFound
	}
	if err != nil {
		return errors.Wrap(err, "ошибка чтения брифинга")
	}
	return i.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("briefing_id = ?", briefingID).Delete(&dbmodels.RoleHRBriefing{}).Error
		if err != nil {
			return errors.Wrap(err, "ошибка очистки привязок брифинга")
		}
		if err := createBriefingLinks(tx, briefingID, roleIDs); err != nil {
			return err
		}
		rec.UpdatedAt = i.now()
		if err := tx.Save(&rec).Error; err != nil {
			return errors.Wrap(err, "ошибка обновления брифинга")
		}
		return nil
	})
}

func (i impl) SaveConsentTemplate(data pipelineapimodels.ConsentTemplateData) (string, error) {
	now := i.now()
	rec := dbmodels.ConsentTemplate{}
	if data.ID == "" {
		rec.ID = uuid.NewString()
		rec.CreatedAt = now
	} else {
		err := i.db.Where("id = ?", data.ID).First(&rec).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			rec.ID = data.ID
			rec.CreatedAt = now
		} else if err != nil {
			return "", errors.Wrap(err, "ошибка чтения шаблона")
		}
	}
	rec.Name = data.Name
	rec.Content = data.Content
	rec.UpdatedAt = now
	if err := i.db.Save(&rec).Error; err != nil {
		return "", errors.Wrap(err, "ошибка сохранения шаблона")
	}
	return rec.ID, nil
}

func (i impl) GetAllConsentTemplates() ([]pipelineapimodels.ConsentTemplateView, error) {
	rows := []dbmodels.ConsentTemplate{}
	if err := i.db.Order("id").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "ошибка чтения шаблонов")
	}
	list := make([]pipelineapimodels.ConsentTemplateView, 0, len(rows))
	for _, rec := range rows {
		list = append(list, rec.ToModel())
	}
	return list, nil
}

func (i impl) GetConsentTemplate(templateID string) (*pipelineapimodels.ConsentTemplateView, error) {
	rec := dbmodels.ConsentTemplate{}
	err := i.db.Where("id = ?", templateID).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "ошибка чтения шаблона")
	}
	view := rec.ToModel()
	return &view, nil
}

func (i impl) DeleteConsentTemplate(templateID string) error {
	res := i.db.Where("id = ?", templateID).Delete(&dbmodels.ConsentTemplate{})
	if res.Error != nil {
		return errors.Wrap(res.Error, "ошибка удаления шаблона")
	}
	if res.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}
