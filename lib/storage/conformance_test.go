package storage_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"hr-pipeline-backend/db"
	"hr-pipeline-backend/lib/storage"
	"hr-pipeline-backend/lib/storage/dbstore"
	"hr-pipeline-backend/lib/storage/filestore"
	"hr-pipeline-backend/models"
	pipelineapimodels "hr-pipeline-backend/models/api/pipeline"
)

// Оба бэкенда проверяются одним набором тестов:
// наблюдаемые результаты операций обязаны совпадать.
type backendFactory struct {
	name string
	make func(t *testing.T) storage.Provider
}

func backends() []backendFactory {
	return []backendFactory{
		{
			name: "file",
			make: func(t *testing.T) storage.Provider {
				return filestore.NewInstance(t.TempDir())
			},
		},
		{
			name: "db",
			make: func(t *testing.T) storage.Provider {
				gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "app.db")), &gorm.Config{
					Logger: gormlogger.Default.LogMode(gormlogger.Silent),
				})
				require.NoError(t, err)
				gdb.Exec("PRAGMA foreign_keys = ON;")
				require.NoError(t, db.AutoMigrateDB(gdb))
				return dbstore.NewInstance(gdb)
			},
		},
	}
}

func forEachBackend(t *testing.T, testFunc func(t *testing.T, store storage.Provider)) {
	for _, backend := range backends() {
		backend := backend
		t.Run(backend.name, func(t *testing.T) {
			testFunc(t, backend.make(t))
		})
	}
}

func strPtr(value string) *string { return &value }

func boolPtr(value bool) *bool { return &value }

func columnPtr(value models.PipelineColumn) *models.PipelineColumn { return &value }

func TestRoleDefaults(t *testing.T) {
	forEachBackend(t, func(t *testing.T, store storage.Provider) {
		roleID, err := store.CreateRole(pipelineapimodels.RoleData{Title: "Go Developer"})
		require.NoError(t, err)
		require.NotEmpty(t, roleID)

		rec, err := store.GetRole(roleID)
		require.NoError(t, err)
		require.NotNil(t, rec)
		require.Equal(t, "Go Developer", rec.Title)
		require.Equal(t, models.RoleStatusNew, rec.Status)
		require.Equal(t, models.DefaultRequirementFields(), rec.RequirementFields)
		require.Equal(t, models.DefaultEvaluationCriteria(), rec.EvaluationCriteria)
		require.NotEmpty(t, rec.CreatedAt)
		require.NotEmpty(t, rec.UpdatedAt)
	})
}

func TestRoleProvidedListsPreserved(t *testing.T) {
	forEachBackend(t, func(t *testing.T, store storage.Provider) {
		fields := []string{"visa_status"}
		criteria := []string{"Culture fit"}
		roleID, err := store.CreateRole(pipelineapimodels.RoleData{
			Title:              "QA",
			RequirementFields:  fields,
			EvaluationCriteria: criteria,
		})
		require.NoError(t, err)

		rec, err := store.GetRole(roleID)
		require.NoError(t, err)
		require.NotNil(t, rec)
		require.Equal(t, fields, rec.RequirementFields)
		require.Equal(t, criteria, rec.EvaluationCriteria)
	})
}

func TestRoleUpdatePartial(t *testing.T) {
	forEachBackend(t, func(t *testing.T, store storage.Provider) {
		roleID, err := store.CreateRole(pipelineapimodels.RoleData{Title: "Analyst"})
		require.NoError(t, err)

		err = store.UpdateRole(roleID, pipelineapimodels.RoleUpdate{Status: strPtr("Active")})
		require.NoError(t, err)

		rec, err := store.GetRole(roleID)
		require.NoError(t, err)
		require.Equal(t, "Analyst", rec.Title)
		require.Equal(t, "Active", rec.Status)

		err = store.UpdateRole("missing", pipelineapimodels.RoleUpdate{Status: strPtr("Active")})
		require.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestMissingReadsReturnNil(t *testing.T) {
	forEachBackend(t, func(t *testing.T, store storage.Provider) {
		role, err := store.GetRole("missing")
		require.NoError(t, err)
		require.Nil(t, role)

		jd, err := store.GetParsedJD("missing")
		require.NoError(t, err)
		require.Nil(t, jd)

		candidate, err := store.GetCandidate("missing", "missing")
		require.NoError(t, err)
		require.Nil(t, candidate)

		interview, err := store.GetInterviewData("missing", "missing")
		require.NoError(t, err)
		require.Nil(t, interview)

		template, err := store.GetConsentTemplate("missing")
		require.NoError(t, err)
		require.Nil(t, template)

		briefing, err := store.GetRoleHRBriefing("missing")
		require.NoError(t, err)
		require.Nil(t, briefing)

		chat, err := store.GetEvaluationChat("missing")
		require.NoError(t, err)
		require.Empty(t, chat)
	})
}

func TestDeleteRoleCascades(t *testing.T) {
	forEachBackend(t, func(t *testing.T, store storage.Provider) {
		roleID, err := store.CreateRole(pipelineapimodels.RoleData{Title: "Backend"})
		require.NoError(t, err)
		candidateID, err := store.CreateCandidate(roleID, pipelineapimodels.CandidateData{Name: "Ann"})
		require.NoError(t, err)
		require.NoError(t, store.SaveParsedJD(roleID, pipelineapimodels.JDView{JobTitle: "Backend"}))
		require.NoError(t, store.SaveEvaluationChat(roleID, []pipelineapimodels.ChatMessage{{Role: "user", Content: "hi"}}))

		completed := true
		require.NoError(t, store.SaveInterviewData(roleID, candidateID, pipelineapimodels.InterviewData{InterviewCompleted: &completed}))

		require.NoError(t, store.DeleteRole(roleID))

		candidates, err := store.GetCandidates(roleID)
		require.NoError(t, err)
		require.Empty(t, candidates)

		jd, err := store.GetParsedJD(roleID)
		require.NoError(t, err)
		require.Nil(t, jd)

		chat, err := store.GetEvaluationChat(roleID)
		require.NoError(t, err)
		require.Empty(t, chat)

		interview, err := store.GetInterviewData(roleID, candidateID)
		require.NoError(t, err)
		require.Nil(t, interview)

		require.ErrorIs(t, store.DeleteRole(roleID), storage.ErrNotFound)
	})
}

func TestCandidateDefaults(t *testing.T) {
	forEachBackend(t, func(t *testing.T, store storage.Provider) {
		roleID, err := store.CreateRole(pipelineapimodels.RoleData{Title: "Backend"})
		require.NoError(t, err)
		candidateID, err := store.CreateCandidate(roleID, pipelineapimodels.CandidateData{Name: "Ann"})
		require.NoError(t, err)

		rec, err := store.GetCandidate(roleID, candidateID)
		require.NoError(t, err)
		require.NotNil(t, rec)
		require.Equal(t, models.ColumnOutreach, rec.Column)
		require.Equal(t, models.DefaultCandidateColor, rec.Color)
		require.Nil(t, rec.Checklist)
		require.Empty(t, rec.Skills)
		require.NotNil(t, rec.ParsedInsights)
		require.False(t, rec.OutreachSent)
		require.False(t, rec.NotPushingForward)
	})
}

func TestStatusUpdateChecklistLifecycle(t *testing.T) {
	forEachBackend(t, func(t *testing.T, store storage.Provider) {
		roleID, err := store.CreateRole(pipelineapimodels.RoleData{Title: "Backend"})
		require.NoError(t, err)
		candidateID, err := store.CreateCandidate(roleID, pipelineapimodels.CandidateData{Name: "Ann"})
		require.NoError(t, err)

		// переход в follow-up инициализирует чеклист
		err = store.UpdateCandidateStatus(roleID, candidateID, pipelineapimodels.StatusUpdate{
			Column: columnPtr(models.ColumnFollowUp),
		})
		require.NoError(t, err)

		rec, err := store.GetCandidate(roleID, candidateID)
		require.NoError(t, err)
		require.Equal(t, models.ColumnFollowUp, rec.Column)
		require.Len(t, rec.Checklist, 5)
		for _, key := range models.ChecklistKeys() {
			require.False(t, rec.Checklist[key])
		}

		// поключевой мерж не сбрасывает остальные ключи
		err = store.UpdateCandidateStatus(roleID, candidateID, pipelineapimodels.StatusUpdate{
			Checklist: map[string]bool{models.ChecklistUpdatedCvReceived: true},
		})
		require.NoError(t, err)

		rec, err = store.GetCandidate(roleID, candidateID)
		require.NoError(t, err)
		require.True(t, rec.Checklist[models.ChecklistUpdatedCvReceived])
		require.Len(t, rec.Checklist, 5)
		require.Equal(t, models.ColumnFollowUp, rec.Column)

		// завершённое скрининг-интервью переводит в evaluation
		err = store.UpdateCandidateStatus(roleID, candidateID, pipelineapimodels.StatusUpdate{
			Checklist: map[string]bool{models.ChecklistScreeningInterviewCompleted: true},
		})
		require.NoError(t, err)

		rec, err = store.GetCandidate(roleID, candidateID)
		require.NoError(t, err)
		require.Equal(t, models.ColumnEvaluation, rec.Column)

		// побочные отметки не трогают колонку
		err = store.UpdateCandidateStatus(roleID, candidateID, pipelineapimodels.StatusUpdate{
			SentToClient: boolPtr(true),
			Color:        strPtr("green"),
		})
		require.NoError(t, err)

		rec, err = store.GetCandidate(roleID, candidateID)
		require.NoError(t, err)
		require.Equal(t, models.ColumnEvaluation, rec.Column)
		require.True(t, rec.SentToClient)
		require.Equal(t, "green", rec.Color)

		err = store.UpdateCandidateStatus(roleID, "missing", pipelineapimodels.StatusUpdate{Color: strPtr("red")})
		require.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestOutreachReplyTransitions(t *testing.T) {
	forEachBackend(t, func(t *testing.T, store storage.Provider) {
		roleID, err := store.CreateRole(pipelineapimodels.RoleData{Title: "Backend"})
		require.NoError(t, err)
		candidateID, err := store.CreateCandidate(roleID, pipelineapimodels.CandidateData{Name: "Ann"})
		require.NoError(t, err)

		// нейтральный ответ сохраняется, но не двигает колонку
		rec, err := store.RecordOutreachReply(roleID, candidateID, pipelineapimodels.OutreachReplyData{
			Content:   "Tell me more",
			Sentiment: models.SentimentNeutral,
		})
		require.NoError(t, err)
		require.Equal(t, models.ColumnOutreach, rec.Column)
		require.Nil(t, rec.Checklist)
		require.NotNil(t, rec.OutreachReply)
		require.Equal(t, "Tell me more", rec.OutreachReply.Content)

		// положительный ответ переводит в follow-up и заводит чеклист,
		// последний ответ затирает предыдущий
		rec, err = store.RecordOutreachReply(roleID, candidateID, pipelineapimodels.OutreachReplyData{
			Content:   "Sounds great",
			Sentiment: models.SentimentPositive,
			Intent:    "interested",
		})
		require.NoError(t, err)
		require.Equal(t, models.ColumnFollowUp, rec.Column)
		require.Len(t, rec.Checklist, 5)
		require.Equal(t, "Sounds great", rec.OutreachReply.Content)

		// повторное применение того же ответа ничего не ломает
		rec, err = store.RecordOutreachReply(roleID, candidateID, pipelineapimodels.OutreachReplyData{
			Content:   "Sounds great",
			Sentiment: models.SentimentPositive,
		})
		require.NoError(t, err)
		require.Equal(t, models.ColumnFollowUp, rec.Column)

		_, err = store.RecordOutreachReply(roleID, "missing", pipelineapimodels.OutreachReplyData{Content: "hi"})
		require.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestOutreachMessageOps(t *testing.T) {
	forEachBackend(t, func(t *testing.T, store storage.Provider) {
		roleID, err := store.CreateRole(pipelineapimodels.RoleData{Title: "Backend"})
		require.NoError(t, err)
		candidateID, err := store.CreateCandidate(roleID, pipelineapimodels.CandidateData{Name: "Ann"})
		require.NoError(t, err)

		// правка черновика не помечает письмо отправленным
		require.NoError(t, store.UpdateOutreachMessage(roleID, candidateID, "draft"))
		rec, err := store.GetCandidate(roleID, candidateID)
		require.NoError(t, err)
		require.Equal(t, "draft", *rec.OutreachMessage)
		require.False(t, rec.OutreachSent)

		require.NoError(t, store.SaveOutreachMessage(roleID, candidateID, "final"))
		rec, err = store.GetCandidate(roleID, candidateID)
		require.NoError(t, err)
		require.Equal(t, "final", *rec.OutreachMessage)
		require.True(t, rec.OutreachSent)
	})
}

func TestConsentWorkflow(t *testing.T) {
	forEachBackend(t, func(t *testing.T, store storage.Provider) {
		roleID, err := store.CreateRole(pipelineapimodels.RoleData{Title: "Backend"})
		require.NoError(t, err)
		candidateID, err := store.CreateCandidate(roleID, pipelineapimodels.CandidateData{Name: "Ann"})
		require.NoError(t, err)

		err = store.SendConsentEmail(roleID, candidateID, pipelineapimodels.ConsentEmailData{
			Email:          "ann@example.com",
			ConsentContent: "terms",
		})
		require.NoError(t, err)

		rec, err := store.GetCandidate(roleID, candidateID)
		require.NoError(t, err)
		require.True(t, rec.ConsentFormSent)
		require.Equal(t, models.EmailStatusConsentSent, *rec.EmailStatus)
		require.NotNil(t, rec.ConsentEmail)
		require.Equal(t, "ann@example.com", rec.ConsentEmail.To)
		require.Equal(t, "sent", rec.ConsentEmail.Status)
		require.Contains(t, rec.ConsentEmail.Content, "I CONSENT")
		require.Contains(t, rec.ConsentEmail.Content, "Backend")
		require.True(t, rec.Checklist[models.ChecklistConsentFormSent])
		// отправка согласия не инициализирует полный чеклист
		require.Len(t, rec.Checklist, 1)
		require.Equal(t, models.ColumnOutreach, rec.Column)

		// отказ
		err = store.RecordConsentReply(roleID, candidateID, pipelineapimodels.ConsentReplyData{
			ConsentStatus: models.ConsentStatusDeclined,
		})
		require.NoError(t, err)

		rec, err = store.GetCandidate(roleID, candidateID)
		require.NoError(t, err)
		require.False(t, rec.ConsentFormReceived)
		require.Equal(t, models.EmailStatusConsentDeclined, *rec.EmailStatus)
		require.NotNil(t, rec.ConsentReply)
		require.Equal(t, "I DO NOT CONSENT", rec.ConsentReply.Response)
		require.NotNil(t, rec.SimulatedEmail)
		require.Equal(t, "consent_reply", rec.SimulatedEmail.Type)
		require.Equal(t, "terms", rec.SimulatedEmail.ConsentContent)
		require.Equal(t, models.ColumnOutreach, rec.Column)
		require.False(t, rec.Checklist[models.ChecklistConsentFormReceived])

		// согласие поверх отказа
		err = store.RecordConsentReply(roleID, candidateID, pipelineapimodels.ConsentReplyData{
			ConsentStatus: models.ConsentStatusConsented,
		})
		require.NoError(t, err)

		rec, err = store.GetCandidate(roleID, candidateID)
		require.NoError(t, err)
		require.True(t, rec.ConsentFormReceived)
		require.Equal(t, models.EmailStatusConsentReceived, *rec.EmailStatus)
		require.Equal(t, "I CONSENT", rec.ConsentReply.Response)
		require.True(t, rec.Checklist[models.ChecklistConsentFormReceived])
		// ответ на запрос согласия никогда не двигает колонку
		require.Equal(t, models.ColumnOutreach, rec.Column)
	})
}

func TestInterviewMergeAndTransition(t *testing.T) {
	forEachBackend(t, func(t *testing.T, store storage.Provider) {
		roleID, err := store.CreateRole(pipelineapimodels.RoleData{Title: "Backend"})
		require.NoError(t, err)
		candidateID, err := store.CreateCandidate(roleID, pipelineapimodels.CandidateData{Name: "Ann"})
		require.NoError(t, err)

		score := 80
		err = store.SaveInterviewData(roleID, candidateID, pipelineapimodels.InterviewData{
			Summary:  strPtr("good talk"),
			FitScore: &score,
		})
		require.NoError(t, err)

		rec, err := store.GetInterviewData(roleID, candidateID)
		require.NoError(t, err)
		require.NotNil(t, rec)
		require.Equal(t, "good talk", rec.Summary)
		require.Equal(t, 80, *rec.FitScore)
		require.Equal(t, models.RecommendationMaybe, rec.Recommendation)
		require.True(t, rec.InterviewCompleted)
		require.Empty(t, rec.KeyPoints)

		// сохранение завершённого интервью переводит кандидата в evaluation
		candidate, err := store.GetCandidate(roleID, candidateID)
		require.NoError(t, err)
		require.Equal(t, models.ColumnEvaluation, candidate.Column)

		// частичное обновление не затирает прежние поля
		err = store.SaveInterviewData(roleID, candidateID, pipelineapimodels.InterviewData{
			Recommendation: strPtr("YES"),
			KeyPoints:      &[]string{"go", "sql"},
		})
		require.NoError(t, err)

		rec, err = store.GetInterviewData(roleID, candidateID)
		require.NoError(t, err)
		require.Equal(t, "good talk", rec.Summary)
		require.Equal(t, 80, *rec.FitScore)
		require.Equal(t, models.RecommendationYes, rec.Recommendation)
		require.Equal(t, []string{"go", "sql"}, rec.KeyPoints)

		err = store.SaveInterviewData(roleID, "missing", pipelineapimodels.InterviewData{})
		require.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestRoleAggregates(t *testing.T) {
	forEachBackend(t, func(t *testing.T, store storage.Provider) {
		roleID, err := store.CreateRole(pipelineapimodels.RoleData{Title: "Backend"})
		require.NoError(t, err)

		first, err := store.CreateCandidate(roleID, pipelineapimodels.CandidateData{Name: "Ann"})
		require.NoError(t, err)
		second, err := store.CreateCandidate(roleID, pipelineapimodels.CandidateData{Name: "Bob"})
		require.NoError(t, err)
		_, err = store.CreateCandidate(roleID, pipelineapimodels.CandidateData{Name: "Kim"})
		require.NoError(t, err)

		err = store.UpdateCandidateStatus(roleID, first, pipelineapimodels.StatusUpdate{
			Column:       columnPtr(models.ColumnFollowUp),
			SentToClient: boolPtr(true),
		})
		require.NoError(t, err)
		err = store.UpdateCandidateStatus(roleID, second, pipelineapimodels.StatusUpdate{
			Column:            columnPtr(models.ColumnEvaluation),
			NotPushingForward: boolPtr(true),
		})
		require.NoError(t, err)

		list, err := store.GetAllRoles()
		require.NoError(t, err)
		require.Len(t, list, 1)
		item := list[0]
		require.Equal(t, 3, item.CandidatesCount)
		require.Equal(t, 1, item.OutreachCount)
		require.Equal(t, 1, item.FollowUpCount)
		require.Equal(t, 1, item.EvaluationCount)
		require.Equal(t, 1, item.SentToClientCount)
		require.Equal(t, 1, item.SuccessfulCandidatesCount)
		require.Equal(t, 1, item.NotPushingForwardCount)
		require.False(t, item.HasJD)
		require.False(t, item.HasHRBriefing)

		require.NoError(t, store.SaveParsedJD(roleID, pipelineapimodels.JDView{JobTitle: "Backend"}))
		_, err = store.CreateHRBriefing(pipelineapimodels.BriefingData{Summary: "notes"}, []string{roleID})
		require.NoError(t, err)

		list, err = store.GetAllRoles()
		require.NoError(t, err)
		require.True(t, list[0].HasJD)
		require.True(t, list[0].HasHRBriefing)
	})
}

func TestParsedJDUpdate(t *testing.T) {
	forEachBackend(t, func(t *testing.T, store storage.Provider) {
		roleID, err := store.CreateRole(pipelineapimodels.RoleData{Title: "Backend"})
		require.NoError(t, err)

		require.NoError(t, store.SaveParsedJD(roleID, pipelineapimodels.JDView{
			JobTitle: "Backend",
			Skills:   []string{"go"},
		}))

		err = store.UpdateParsedJD(roleID, pipelineapimodels.JDUpdate{
			JobSummary: strPtr("builds services"),
		})
		require.NoError(t, err)

		rec, err := store.GetParsedJD(roleID)
		require.NoError(t, err)
		require.Equal(t, "Backend", rec.JobTitle)
		require.Equal(t, "builds services", rec.JobSummary)
		require.Equal(t, []string{"go"}, rec.Skills)
		require.Empty(t, rec.Responsibilities)
	})
}

func TestEvaluationChatRoundTrip(t *testing.T) {
	forEachBackend(t, func(t *testing.T, store storage.Provider) {
		roleID, err := store.CreateRole(pipelineapimodels.RoleData{Title: "Backend"})
		require.NoError(t, err)

		messages := []pipelineapimodels.ChatMessage{
			{Role: "user", Content: "compare candidates"},
			{Role: "assistant", Content: "Ann is stronger"},
		}
		require.NoError(t, store.SaveEvaluationChat(roleID, messages))

		got, err := store.GetEvaluationChat(roleID)
		require.NoError(t, err)
		require.Equal(t, messages, got)

		// чат перезаписывается целиком
		require.NoError(t, store.SaveEvaluationChat(roleID, messages[:1]))
		got, err = store.GetEvaluationChat(roleID)
		require.NoError(t, err)
		require.Equal(t, messages[:1], got)
	})
}

func TestBriefings(t *testing.T) {
	forEachBackend(t, func(t *testing.T, store storage.Provider) {
		roleID, err := store.CreateRole(pipelineapimodels.RoleData{Title: "Backend"})
		require.NoError(t, err)

		briefingID, err := store.CreateHRBriefing(pipelineapimodels.BriefingData{
			Summary:       "call notes",
			Transcription: "text",
		}, []string{roleID})
		require.NoError(t, err)
		require.NotEmpty(t, briefingID)

		rec, err := store.GetRoleHRBriefing(roleID)
		require.NoError(t, err)
		require.NotNil(t, rec)
		require.Equal(t, briefingID, rec.ID)
		require.Equal(t, []string{roleID}, rec.RoleIDs)

		list, err := store.GetAllHRBriefings()
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Len(t, list[0].AssignedRoles, 1)
		require.Equal(t, "Backend", list[0].AssignedRoles[0].Title)

		// название удалённой вакансии заменяется заглушкой,
		// привязка при этом сохраняется
		require.NoError(t, store.DeleteRole(roleID))
		list, err = store.GetAllHRBriefings()
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Len(t, list[0].AssignedRoles, 1)
		require.Contains(t, list[0].AssignedRoles[0].Title, "Unknown role (")

		otherRoleID, err := store.CreateRole(pipelineapimodels.RoleData{Title: "Frontend"})
		require.NoError(t, err)
		require.NoError(t, store.UpdateHRBriefingRoles(briefingID, []string{otherRoleID}))

		rec, err = store.GetRoleHRBriefing(otherRoleID)
		require.NoError(t, err)
		require.NotNil(t, rec)
		require.Equal(t, []string{otherRoleID}, rec.RoleIDs)

		require.ErrorIs(t, store.UpdateHRBriefingRoles("missing", nil), storage.ErrNotFound)
	})
}

func TestConsentTemplates(t *testing.T) {
	forEachBackend(t, func(t *testing.T, store storage.Provider) {
		templateID, err := store.SaveConsentTemplate(pipelineapimodels.ConsentTemplateData{
			Name:    "GDPR",
			Content: "terms",
		})
		require.NoError(t, err)
		require.NotEmpty(t, templateID)

		rec, err := store.GetConsentTemplate(templateID)
		require.NoError(t, err)
		require.NotNil(t, rec)
		require.Equal(t, "GDPR", rec.Name)
		createdAt := rec.CreatedAt

		// сохранение с тем же ID перезаписывает содержимое
		sameID, err := store.SaveConsentTemplate(pipelineapimodels.ConsentTemplateData{
			ID:      templateID,
			Name:    "GDPR v2",
			Content: "new terms",
		})
		require.NoError(t, err)
		require.Equal(t, templateID, sameID)

		rec, err = store.GetConsentTemplate(templateID)
		require.NoError(t, err)
		require.Equal(t, "GDPR v2", rec.Name)
		require.Equal(t, "new terms", rec.Content)
		require.Equal(t, createdAt, rec.CreatedAt)

		list, err := store.GetAllConsentTemplates()
		require.NoError(t, err)
		require.Len(t, list, 1)

		require.NoError(t, store.DeleteConsentTemplate(templateID))
		require.ErrorIs(t, store.DeleteConsentTemplate(templateID), storage.ErrNotFound)

		rec, err = store.GetConsentTemplate(templateID)
		require.NoError(t, err)
		require.Nil(t, rec)
	})
}

func TestDeleteCandidate(t *testing.T) {
	forEachBackend(t, func(t *testing.T, store storage.Provider) {
		roleID, err := store.CreateRole(pipelineapimodels.RoleData{Title: "Backend"})
		require.NoError(t, err)
		candidateID, err := store.CreateCandidate(roleID, pipelineapimodels.CandidateData{Name: "Ann"})
		require.NoError(t, err)

		require.NoError(t, store.DeleteCandidate(roleID, candidateID))
		require.ErrorIs(t, store.DeleteCandidate(roleID, candidateID), storage.ErrNotFound)

		rec, err := store.GetCandidate(roleID, candidateID)
		require.NoError(t, err)
		require.Nil(t, rec)
	})
}
