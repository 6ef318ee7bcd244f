package filestore

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"hr-pipeline-backend/lib/pipeline"
	"hr-pipeline-backend/lib/storage"
	pipelineapimodels "hr-pipeline-backend/models/api/pipeline"
)

type briefingDoc struct {
	ID              string                 `json:"id"`
	Summary         string                 `json:"summary"`
	ExtractedFields map[string]interface{} `json:"extracted_fields"`
	Transcription   string                 `json:"transcription"`
	RoleIDs         []string               `json:"role_ids"`
	AudioFilePath   *string                `json:"audio_file_path,omitempty"`
	CreatedAt       string                 `json:"created_at"`
	UpdatedAt       string                 `json:"updated_at,omitempty"`
}

func (i impl) briefingPath(briefingID string) string {
	return filepath.Join(i.briefingsDir(), briefingID, briefingFileName)
}

func (i impl) CreateHRBriefing(data pipelineapimodels.BriefingData, roleIDs []string) (string, error) {
	briefingID := uuid.NewString()
	fields := data.ExtractedFields
	if fields == nil {
		fields = map[string]interface{}{}
	}
	if roleIDs == nil {
		roleIDs = []string{}
	}
	doc := briefingDoc{
		ID:              briefingID,
		Summary:         data.Summary,
		ExtractedFields: fields,
		Transcription:   data.Transcription,
		RoleIDs:         roleIDs,
		AudioFilePath:   data.AudioFilePath,
		CreatedAt:       i.now(),
	}
	if err := writeDoc(i.briefingPath(briefingID), doc); err != nil {
		return "", err
	}
	return briefingID, nil
}

func (doc briefingDoc) toView() pipelineapimodels.BriefingView {
	fields := doc.ExtractedFields
	if fields == nil {
		fields = map[string]interface{}{}
	}
	roleIDs := doc.RoleIDs
	if roleIDs == nil {
		roleIDs = []string{}
	}
	return pipelineapimodels.BriefingView{
		ID:              doc.ID,
		Summary:         doc.Summary,
		ExtractedFields: fields,
		Transcription:   doc.Transcription,
		RoleIDs:         roleIDs,
		AudioFilePath:   doc.AudioFilePath,
		CreatedAt:       doc.CreatedAt,
		UpdatedAt:       doc.UpdatedAt,
	}
}

func (i impl) GetAllHRBriefings() ([]pipelineapimodels.BriefingView, error) {
	briefingIDs, err := listSubdirs(i.briefingsDir())
	if err != nil {
		return nil, err
	}
	list := make([]pipelineapimodels.BriefingView, 0, len(briefingIDs))
	for _, briefingID := range briefingIDs {
		doc := briefingDoc{}
		found, err := readDoc(i.briefingPath(briefingID), &doc)
		if err != nil {
			return nil, err
		}
		if !found {
			continue
		}
		view := doc.toView()
		view.AssignedRoles, err = i.resolveAssignedRoles(view.RoleIDs)
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
		role, err := i.GetRole(roleID)
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
	briefingIDs, err := listSubdirs(i.briefingsDir())
	if err != nil {
		return nil, err
	}
	for _, briefingID := range briefingIDs {
		doc := briefingDoc{}
		found, err := readDoc(i.briefingPath(briefingID), &doc)
		if err != nil {
			return nil, err
		}
		if !found {
			continue
		}
		for _, id := range doc.RoleIDs {
			if id == roleID {
				view := doc.toView()
				return &view, nil
			}
		}
	}
	return nil, nil
}

// UpdateHRBriefingRoles заменяет список привязанных вакансий целиком
func (i impl) UpdateHRBriefingRoles(briefingID string, roleIDs []string) error {
	doc := briefingDoc{}
	found, err := readDoc(i.briefingPath(briefingID), &doc)
	if err != nil {
		return err
	}
	if !found {
		return storage.ErrNotFound
	}
	if roleIDs == nil {
		roleIDs = []string{}
	}
	doc.RoleIDs = roleIDs
	doc.UpdatedAt = i.now()
	return writeDoc(i.briefingPath(briefingID), doc)
}

func (i impl) templatePath(templateID string) string {
	return filepath.Join(i.templatesDir(), templateID, templateFileName)
}

func (i impl) SaveConsentTemplate(data pipelineapimodels.ConsentTemplateData) (string, error) {
	templateID := data.ID
	now := i.now()
	rec := pipelineapimodels.ConsentTemplateView{}
	if templateID == "" {
		templateID = uuid.NewString()
		rec.CreatedAt = now
	} else {
		found, err := readDoc(i.templatePath(templateID), &rec)
		if err != nil {
			return "", err
		}
		if !found {
			rec.CreatedAt = now
		}
	}
	rec.ID = templateID
	rec.Name = data.Name
	rec.Content = data.Content
	rec.UpdatedAt = now
	if err := writeDoc(i.templatePath(templateID), rec); err != nil {
		return "", err
	}
	return templateID, nil
}

func (i impl) GetAllConsentTemplates() ([]pipelineapimodels.ConsentTemplateView, error) {
	templateIDs, err := listSubdirs(i.templatesDir())
	if err != nil {
		return nil, err
	}
	list := make([]pipelineapimodels.ConsentTemplateView, 0, len(templateIDs))
	for _, templateID := range templateIDs {
		rec := pipelineapimodels.ConsentTemplateView{}
		found, err := readDoc(i.templatePath(templateID), &rec)
		if err != nil {
			return nil, err
		}
		if found {
			list = append(list, rec)
		}
	}
	return list, nil
}

func (i impl) GetConsentTemplate(templateID string) (*pipelineapimodels.ConsentTemplateView, error) {
	rec := pipelineapimodels.ConsentTemplateView{}
	found, err := readDoc(i.templatePath(templateID), &rec)
	if err != nil || !found {
		return nil, err
	}
	return &rec, nil
}

func (i impl) DeleteConsentTemplate(templateID string) error {
	templateDir := filepath.Join(i.templatesDir(), templateID)
	if _, err := os.Stat(templateDir); err != nil {
		if os.IsNotExist(err) {
			return storage.ErrNotFound
		}
		return errors.Wrap(err, "ошибка проверки каталога шаблона")
	}
	if err := os.RemoveAll(templateDir); err != nil {
		return errors.Wrap(err, "ошибка удаления шаблона")
	}
	return nil
}
