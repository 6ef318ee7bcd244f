package ingest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hr-pipeline-backend/models"
)

func TestDecodeReplyAnalysis(t *testing.T) {
	t.Run("корректный словарь", func(t *testing.T) {
		rec := DecodeReplyAnalysis(map[string]interface{}{
			"sentiment":  "positive",
			"intent":     "interested",
			"key_points": []interface{}{"go", "sql"},
		})
		require.Equal(t, models.SentimentPositive, rec.Sentiment)
		require.Equal(t, "interested", rec.Intent)
		require.Equal(t, []string{"go", "sql"}, rec.KeyPoints)
		require.NotNil(t, rec.Analysis)
	})

	t.Run("мусор в полях заменяется значениями по умолчанию", func(t *testing.T) {
		rec := DecodeReplyAnalysis(map[string]interface{}{
			"sentiment":  "enthusiastic",
			"key_points": "not a list",
			"unexpected": map[string]interface{}{"x": 1},
		})
		require.Equal(t, models.SentimentNeutral, rec.Sentiment)
		require.Equal(t, "needs_info", rec.Intent)
		require.NotNil(t, rec.KeyPoints)
		require.NotNil(t, rec.Analysis)
	})

	t.Run("пустой словарь", func(t *testing.T) {
		rec := DecodeReplyAnalysis(map[string]interface{}{})
		require.Equal(t, models.SentimentNeutral, rec.Sentiment)
		require.Equal(t, "needs_info", rec.Intent)
		require.Empty(t, rec.KeyPoints)
	})
}

func TestDecodeParsedJD(t *testing.T) {
	jd := DecodeParsedJD(map[string]interface{}{
		"job_title": "Backend Engineer",
		"skills":    []interface{}{"go"},
	})
	require.Equal(t, "Backend Engineer", jd.JobTitle)
	require.Equal(t, []string{"go"}, jd.Skills)
	require.Empty(t, jd.Responsibilities)
	require.Empty(t, jd.Requirements)
}

func TestDecodeParsedCandidate(t *testing.T) {
	t.Run("имя по умолчанию", func(t *testing.T) {
		data := DecodeParsedCandidate(map[string]interface{}{})
		require.Equal(t, "Unknown Candidate", data.Name)
		require.Empty(t, data.Skills)
		require.NotNil(t, data.ParsedInsights)
	})

	t.Run("слабая типизация числовых значений", func(t *testing.T) {
		data := DecodeParsedCandidate(map[string]interface{}{
			"name":       "Ann",
			"experience": 5,
		})
		require.Equal(t, "Ann", data.Name)
		require.Equal(t, "5", data.Experience)
	})
}

func TestDecodeInterviewExtraction(t *testing.T) {
	t.Run("отсутствующие поля остаются nil", func(t *testing.T) {
		data := DecodeInterviewExtraction(map[string]interface{}{
			"summary": "good talk",
		})
		require.Equal(t, "good talk", *data.Summary)
		require.Nil(t, data.FitScore)
		require.Nil(t, data.Recommendation)
		require.Nil(t, data.KeyPoints)
	})

	t.Run("fit_score из строки", func(t *testing.T) {
		data := DecodeInterviewExtraction(map[string]interface{}{
			"fit_score": "85",
		})
		require.NotNil(t, data.FitScore)
		require.Equal(t, 85, *data.FitScore)
	})
}
