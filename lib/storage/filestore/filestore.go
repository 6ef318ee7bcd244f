// Пакет filestore - файловая реализация хранилища:
// документ JSON на сущность, путь детерминированно выводится из id.
// Каталоги создаются лениво при первой записи, каскадное удаление -
// удаление поддерева родителя.
package filestore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"hr-pipeline-backend/lib/pipeline"
	"hr-pipeline-backend/lib/storage"
	"hr-pipeline-backend/models"
	pipelineapimodels "hr-pipeline-backend/models/api/pipeline"
)

const (
	roleFileName     = "role.json"
	jdFileName       = "jd_parsed.json"
	chatFileName     = "evaluation_chat.json"
	candidateFile    = "candidate.json"
	interviewFile    = "interview.json"
	briefingFileName = "briefing.json"
	templateFileName = "content.json"
)

func NewInstance(baseDir string) storage.Provider {
	return &impl{
		baseDir: baseDir,
		now:     func() string { return time.Now().Format(time.RFC3339) },
	}
}

type impl struct {
	baseDir string
	now     func() string
}

func (i impl) rolesDir() string {
	return filepath.Join(i.baseDir, "roles")
}

func (i impl) roleDir(roleID string) string {
	return filepath.Join(i.rolesDir(), roleID)
}

func (i impl) candidatesDir(roleID string) string {
	return filepath.Join(i.roleDir(roleID), "candidates")
}

func (i impl) candidateDir(roleID, candidateID string) string {
	return filepath.Join(i.candidatesDir(roleID), candidateID)
}

func (i impl) briefingsDir() string {
	return filepath.Join(i.baseDir, "hr_briefings")
}

func (i impl) templatesDir() string {
	return filepath.Join(i.baseDir, "consent_templates")
}

// writeDoc пишет документ атомарно: во временный файл с переименованием,
// читатель никогда не видит недописанный документ
func writeDoc(path string, doc interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "ошибка создания каталога")
	}
	body, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(err, "ошибка сериализации документа")
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return errors.Wrap(err, "ошибка создания временного файла")
	}
	tmpName := tmp.Name()
	if _, err = tmp.Write(body); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrap(err, "ошибка записи документа")
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(err, "ошибка записи документа")
	}
	if err = os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(err, "ошибка сохранения документа")
	}
	return nil
}

// readDoc читает документ, отсутствие файла не ошибка
func readDoc(path string, doc interface{}) (found bool, err error) {
	body, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.Wrap(err, "ошибка чтения документа")
	}
	if err = json.Unmarshal(body, doc); err != nil {
		return false, errors.Wrap(err, "ошибка разбора документа")
	}
	return true, nil
}

func listSubdirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "ошибка чтения каталога")
	}
	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			ids = append(ids, entry.Name())
		}
	}
	return ids, nil
}

func (i impl) CreateRole(data pipelineapimodels.RoleData) (string, error) {
	roleID := uuid.NewString()
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
	rec := pipelineapimodels.RoleView{
		ID:                 roleID,
		Title:              data.Title,
		Status:             status,
		CreatedAt:          now,
		UpdatedAt:          now,
		CreatedByUserID:    data.CreatedByUserID,
		HiringBudget:       data.HiringBudget,
		Vacancies:          data.Vacancies,
		Urgency:            data.Urgency,
		Timeline:           data.Timeline,
		RequirementFields:  requirementFields,
		EvaluationCriteria: evaluationCriteria,
	}
	if err := writeDoc(filepath.Join(i.roleDir(roleID), roleFileName), rec); err != nil {
		return "", err
	}
	return roleID, nil
}

// normalizeRole дополняет документы старых версий значениями по умолчанию
func normalizeRole(rec *pipelineapimodels.RoleView) {
	if rec.Status == "" {
		rec.Status = models.RoleStatusNew
	}
	if rec.RequirementFields == nil {
		rec.RequirementFields = []string{}
	}
	if rec.EvaluationCriteria == nil {
		rec.EvaluationCriteria = []string{}
	}
	// старые записи хранили только почту автора
	if rec.CreatedByUserID == nil && rec.CreatedByEmail != nil {
		if userID := strings.SplitN(*rec.CreatedByEmail, "@", 2)[0]; userID != "" {
			rec.CreatedByUserID = &userID
		}
	}
	rec.CreatedByEmail = nil
}

func (i impl) GetRole(roleID string) (*pipelineapimodels.RoleView, error) {
	rec := pipelineapimodels.RoleView{}
	found, err := readDoc(filepath.Join(i.roleDir(roleID), roleFileName), &rec)
	if err != nil || !found {
		return nil, err
	}
	normalizeRole(&rec)
	return &rec, nil
}

func (i impl) GetAllRoles() ([]pipelineapimodels.RoleListItem, error) {
	roleIDs, err := listSubdirs(i.rolesDir())
	if err != nil {
		return nil, err
	}
	list := make([]pipelineapimodels.RoleListItem, 0, len(roleIDs))
	for _, roleID := range roleIDs {
		rec, err := i.GetRole(roleID)
		if err != nil {
			return nil, err
		}
		if rec == nil {
			continue
		}
		candidates, err := i.GetCandidates(roleID)
		if err != nil {
			return nil, err
		}
		item := pipelineapimodels.RoleListItem{RoleView: *rec}
		pipeline.FillRoleAggregates(&item, candidates)
		jdFound := false
		if _, err := os.Stat(filepath.Join(i.roleDir(roleID), jdFileName)); err == nil {
			jdFound = true
		}
		item.HasJD = jdFound
		briefing, err := i.GetRoleHRBriefing(roleID)
		if err != nil {
			return nil, err
		}
		item.HasHRBriefing = briefing != nil
		list = append(list, item)
	}
	return list, nil
}

func (i impl) UpdateRole(roleID string, upd pipelineapimodels.RoleUpdate) error {
	rec, err := i.GetRole(roleID)
	if err != nil {
		return err
	}
	if rec == nil {
		return storage.ErrNotFound
	}
	applyRoleUpdate(rec, upd)
	rec.UpdatedAt = i.now()
	return writeDoc(filepath.Join(i.roleDir(roleID), roleFileName), rec)
}

func applyRoleUpdate(rec *pipelineapimodels.RoleView, upd pipelineapimodels.RoleUpdate) {
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
		rec.RequirementFields = *upd.RequirementFields
	}
	if upd.EvaluationCriteria != nil {
		rec.EvaluationCriteria = *upd.EvaluationCriteria
	}
}

// DeleteRole удаляет поддерево вакансии целиком:
// кандидаты, интервью, описание и чат оценки уходят вместе с ним
func (i impl) DeleteRole(roleID string) error {
	roleDir := i.roleDir(roleID)
	if _, err := os.Stat(roleDir); err != nil {
		if os.IsNotExist(err) {
			return storage.ErrNotFound
		}
		return errors.Wrap(err, "ошибка проверки каталога вакансии")
	}
	if err := os.RemoveAll(roleDir); err != nil {
		return errors.Wrap(err, "ошибка удаления каталога вакансии")
	}
	return nil
}

func (i impl) SaveParsedJD(roleID string, jd pipelineapimodels.JDView) error {
	if jd.Responsibilities == nil {
		jd.Responsibilities = []string{}
	}
	if jd.Requirements == nil {
		jd.Requirements = []string{}
	}
	if jd.Skills == nil {
		jd.Skills = []string{}
	}
	return writeDoc(filepath.Join(i.roleDir(roleID), jdFileName), jd)
}

func (i impl) GetParsedJD(roleID string) (*pipelineapimodels.JDView, error) {
	rec := pipelineapimodels.JDView{}
	found, err := readDoc(filepath.Join(i.roleDir(roleID), jdFileName), &rec)
	if err != nil || !found {
		return nil, err
	}
	if rec.Responsibilities == nil {
		rec.Responsibilities = []string{}
	}
	if rec.Requirements == nil {
		rec.Requirements = []string{}
	}
	if rec.Skills == nil {
		rec.Skills = []string{}
	}
	return &rec, nil
}

func (i impl) UpdateParsedJD(roleID string, upd pipelineapimodels.JDUpdate) error {
	rec, err := i.GetParsedJD(roleID)
	if err != nil {
		return err
	}
	if rec == nil {
		rec = &pipelineapimodels.JDView{}
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

type evaluationChatDoc struct {
	Messages  []pipelineapimodels.ChatMessage `json:"messages"`
	UpdatedAt string                          `json:"updated_at"`
}

func (i impl) SaveEvaluationChat(roleID string, messages []pipelineapimodels.ChatMessage) error {
	if messages == nil {
		messages = []pipelineapimodels.ChatMessage{}
	}
	doc := evaluationChatDoc{Messages: messages, UpdatedAt: i.now()}
	return writeDoc(filepath.Join(i.roleDir(roleID), chatFileName), doc)
}

func (i impl) GetEvaluationChat(roleID string) ([]pipelineapimodels.ChatMessage, error) {
	doc := evaluationChatDoc{}
	found, err := readDoc(filepath.Join(i.roleDir(roleID), chatFileName), &doc)
	if err != nil {
		return nil, err
	}
	if !found || doc.Messages == nil {
		return []pipelineapimodels.ChatMessage{}, nil
	}
	return doc.Messages, nil
}
