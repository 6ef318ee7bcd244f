package pipeline

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hr-pipeline-backend/models"
	pipelineapimodels "hr-pipeline-backend/models/api/pipeline"
)

func columnPtr(value models.PipelineColumn) *models.PipelineColumn { return &value }

func strPtr(value string) *string { return &value }

func boolPtr(value bool) *bool { return &value }

func TestNewChecklist(t *testing.T) {
	checklist := NewChecklist()
	require.Len(t, checklist, 5)
	for _, key := range models.ChecklistKeys() {
		value, ok := checklist[key]
		require.True(t, ok)
		require.False(t, value)
	}
}

func TestApplyStatusUpdate(t *testing.T) {
	t.Run("переход в follow-up инициализирует чеклист", func(t *testing.T) {
		c := pipelineapimodels.CandidateView{Column: models.ColumnOutreach}
		ApplyStatusUpdate(&c, pipelineapimodels.StatusUpdate{Column: columnPtr(models.ColumnFollowUp)})
		require.Equal(t, models.ColumnFollowUp, c.Column)
		require.Len(t, c.Checklist, 5)
	})

	t.Run("повторный переход не сбрасывает прогресс чеклиста", func(t *testing.T) {
		c := pipelineapimodels.CandidateView{Column: models.ColumnFollowUp}
		ApplyStatusUpdate(&c, pipelineapimodels.StatusUpdate{
			Checklist: map[string]bool{models.ChecklistUpdatedCvReceived: true},
		})
		ApplyStatusUpdate(&c, pipelineapimodels.StatusUpdate{Column: columnPtr(models.ColumnFollowUp)})
		require.True(t, c.Checklist[models.ChecklistUpdatedCvReceived])
	})

	t.Run("чеклист мержится поключево", func(t *testing.T) {
		c := pipelineapimodels.CandidateView{
			Column:    models.ColumnFollowUp,
			Checklist: NewChecklist(),
		}
		ApplyStatusUpdate(&c, pipelineapimodels.StatusUpdate{
			Checklist: map[string]bool{models.ChecklistConsentFormSent: true},
		})
		ApplyStatusUpdate(&c, pipelineapimodels.StatusUpdate{
			Checklist: map[string]bool{models.ChecklistUpdatedCvReceived: true},
		})
		require.True(t, c.Checklist[models.ChecklistConsentFormSent])
		require.True(t, c.Checklist[models.ChecklistUpdatedCvReceived])
		require.Len(t, c.Checklist, 5)
	})

	t.Run("завершённый скрининг переводит в evaluation", func(t *testing.T) {
		c := pipelineapimodels.CandidateView{
			Column:    models.ColumnFollowUp,
			Checklist: NewChecklist(),
		}
		ApplyStatusUpdate(&c, pipelineapimodels.StatusUpdate{
			Checklist: map[string]bool{models.ChecklistScreeningInterviewCompleted: true},
		})
		require.Equal(t, models.ColumnEvaluation, c.Column)

		// повторное применение ничего не меняет
		ApplyStatusUpdate(&c, pipelineapimodels.StatusUpdate{
			Checklist: map[string]bool{models.ChecklistScreeningInterviewCompleted: true},
		})
		require.Equal(t, models.ColumnEvaluation, c.Column)
	})

	t.Run("побочные поля не двигают колонку", func(t *testing.T) {
		c := pipelineapimodels.CandidateView{Column: models.ColumnOutreach}
		ApplyStatusUpdate(&c, pipelineapimodels.StatusUpdate{
			Color:        strPtr("green"),
			SentToClient: boolPtr(true),
		})
		require.Equal(t, models.ColumnOutreach, c.Column)
		require.Equal(t, "green", c.Color)
		require.True(t, c.SentToClient)
		require.Nil(t, c.Checklist)
	})
}

func TestApplyOutreachReply(t *testing.T) {
	t.Run("положительный ответ переводит в follow-up", func(t *testing.T) {
		c := pipelineapimodels.CandidateView{Column: models.ColumnOutreach}
		ApplyOutreachReply(&c, pipelineapimodels.OutreachReplyRecord{
			Content:   "yes",
			Sentiment: models.SentimentPositive,
		})
		require.Equal(t, models.ColumnFollowUp, c.Column)
		require.Len(t, c.Checklist, 5)
		require.Equal(t, "yes", c.OutreachReply.Content)
	})

	t.Run("нейтральный и отрицательный ответы колонку не меняют", func(t *testing.T) {
		for _, sentiment := range []models.ReplySentiment{models.SentimentNeutral, models.SentimentNegative} {
			c := pipelineapimodels.CandidateView{Column: models.ColumnOutreach}
			ApplyOutreachReply(&c, pipelineapimodels.OutreachReplyRecord{Sentiment: sentiment})
			require.Equal(t, models.ColumnOutreach, c.Column)
			require.Nil(t, c.Checklist)
			require.NotNil(t, c.OutreachReply)
		}
	})

	t.Run("последний ответ затирает предыдущий", func(t *testing.T) {
		c := pipelineapimodels.CandidateView{Column: models.ColumnOutreach}
		ApplyOutreachReply(&c, pipelineapimodels.OutreachReplyRecord{Content: "first"})
		ApplyOutreachReply(&c, pipelineapimodels.OutreachReplyRecord{Content: "second"})
		require.Equal(t, "second", c.OutreachReply.Content)
	})
}

func TestConsentDoesNotMoveColumn(t *testing.T) {
	c := pipelineapimodels.CandidateView{Name: "Ann", Column: models.ColumnOutreach}

	email := ComposeConsentEmail(c, "Backend", pipelineapimodels.ConsentEmailData{
		Email:          "ann@example.com",
		ConsentContent: "terms",
	}, "2026-01-01T00:00:00Z")
	ApplyConsentEmail(&c, email)

	require.Equal(t, models.ColumnOutreach, c.Column)
	require.True(t, c.ConsentFormSent)
	require.Equal(t, models.EmailStatusConsentSent, *c.EmailStatus)
	require.True(t, c.Checklist[models.ChecklistConsentFormSent])
	// отправка согласия не заводит полный чеклист
	require.Len(t, c.Checklist, 1)
	require.Contains(t, c.ConsentEmail.Content, "Backend")
	require.Contains(t, c.ConsentEmail.Content, "terms")

	sim, reply := ComposeConsentReply(c, pipelineapimodels.ConsentReplyData{
		ConsentStatus: models.ConsentStatusConsented,
	}, "2026-01-02T00:00:00Z")
	ApplyConsentReply(&c, sim, reply)

	require.Equal(t, models.ColumnOutreach, c.Column)
	require.True(t, c.ConsentFormReceived)
	require.Equal(t, models.EmailStatusConsentReceived, *c.EmailStatus)
	require.True(t, c.Checklist[models.ChecklistConsentFormReceived])
	require.Equal(t, "consent_reply", c.SimulatedEmail.Type)
	require.Equal(t, "terms", c.SimulatedEmail.ConsentContent)
	require.Equal(t, "I CONSENT", c.ConsentReply.Response)

	sim, reply = ComposeConsentReply(c, pipelineapimodels.ConsentReplyData{
		ConsentStatus: models.ConsentStatusDeclined,
	}, "2026-01-03T00:00:00Z")
	ApplyConsentReply(&c, sim, reply)

	require.Equal(t, models.ColumnOutreach, c.Column)
	require.False(t, c.ConsentFormReceived)
	require.Equal(t, models.EmailStatusConsentDeclined, *c.EmailStatus)
	require.False(t, c.Checklist[models.ChecklistConsentFormReceived])
	require.Equal(t, "I DO NOT CONSENT", c.ConsentReply.Response)
}

func TestComposeOutreachReplyDefaults(t *testing.T) {
	rec := ComposeOutreachReply(pipelineapimodels.OutreachReplyData{Body: "text"}, "2026-01-01T00:00:00Z")
	require.Equal(t, "text", rec.Content)
	require.Equal(t, models.SentimentNeutral, rec.Sentiment)
	require.Equal(t, "needs_info", rec.Intent)
	require.NotNil(t, rec.Analysis)
	require.Equal(t, "2026-01-01T00:00:00Z", rec.ReceivedAt)
}

func TestApplyInterviewSaved(t *testing.T) {
	c := pipelineapimodels.CandidateView{Column: models.ColumnOutreach}

	ApplyInterviewSaved(&c, false)
	require.Equal(t, models.ColumnOutreach, c.Column)

	ApplyInterviewSaved(&c, true)
	require.Equal(t, models.ColumnEvaluation, c.Column)

	// повторное сохранение - no-op
	ApplyInterviewSaved(&c, true)
	require.Equal(t, models.ColumnEvaluation, c.Column)
}

func TestMergeInterview(t *testing.T) {
	rec := NewInterview()
	require.Equal(t, models.RecommendationMaybe, rec.Recommendation)
	require.True(t, rec.InterviewCompleted)

	score := 70
	rec = MergeInterview(rec, pipelineapimodels.InterviewData{
		Summary:  strPtr("solid"),
		FitScore: &score,
	})
	rec = MergeInterview(rec, pipelineapimodels.InterviewData{
		Recommendation: strPtr(" YES "),
	})

	require.Equal(t, "solid", rec.Summary)
	require.Equal(t, 70, *rec.FitScore)
	require.Equal(t, models.RecommendationYes, rec.Recommendation)
	require.Empty(t, rec.KeyPoints)
}

func TestParseRecommendationCoercion(t *testing.T) {
	cases := map[string]models.Recommendation{
		"yes":     models.RecommendationYes,
		" Yes ":   models.RecommendationYes,
		"NO":      models.RecommendationNo,
		"maybe":   models.RecommendationMaybe,
		"":        models.RecommendationMaybe,
		"strong":  models.RecommendationMaybe,
		"unknown": models.RecommendationMaybe,
	}
	for value, want := range cases {
		require.Equal(t, want, models.ParseRecommendation(value), "value %q", value)
	}
}

func TestShouldMarkNotPushingForward(t *testing.T) {
	t.Run("без ответов кандидат не помечается", func(t *testing.T) {
		require.False(t, ShouldMarkNotPushingForward(pipelineapimodels.CandidateView{}))
	})

	t.Run("неположительный ответ на первичное письмо", func(t *testing.T) {
		for _, sentiment := range []models.ReplySentiment{models.SentimentNeutral, models.SentimentNegative} {
			c := pipelineapimodels.CandidateView{
				OutreachReply: &pipelineapimodels.OutreachReplyRecord{Sentiment: sentiment},
			}
			require.True(t, ShouldMarkNotPushingForward(c))
		}
	})

	t.Run("положительный ответ не помечает", func(t *testing.T) {
		c := pipelineapimodels.CandidateView{
			OutreachReply: &pipelineapimodels.OutreachReplyRecord{Sentiment: models.SentimentPositive},
		}
		require.False(t, ShouldMarkNotPushingForward(c))
	})

	t.Run("ответ на запрос согласия не учитывается", func(t *testing.T) {
		c := pipelineapimodels.CandidateView{
			SimulatedEmail: &pipelineapimodels.SimulatedEmailRecord{
				Type:          "consent_reply",
				Sentiment:     models.SentimentNegative,
				ConsentStatus: models.ConsentStatusDeclined,
			},
		}
		require.False(t, ShouldMarkNotPushingForward(c))
	})

	t.Run("отказное письмо в simulated_email", func(t *testing.T) {
		c := pipelineapimodels.CandidateView{
			SimulatedEmail: &pipelineapimodels.SimulatedEmailRecord{
				Type:   "outreach_reply",
				Intent: "not_interested",
			},
		}
		require.True(t, ShouldMarkNotPushingForward(c))
	})
}
