// Пакет ingest - граница доверия к данным внешних генераторов.
// Ответы приходят произвольными словарями, каждое поле приводится
// к схеме сущности и дополняется значением по умолчанию,
// некорректная форма никогда не приводит к падению.
package ingest

import (
	"github.com/mitchellh/mapstructure"
	log "github.com/sirupsen/logrus"

	"hr-pipeline-backend/models"
	aimodels "hr-pipeline-backend/models/api/ai"
	pipelineapimodels "hr-pipeline-backend/models/api/pipeline"
)

func decode(raw map[string]interface{}, out interface{}) {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		log.WithError(err).Error("ошибка создания декодера данных генератора")
		return
	}
	if err := decoder.Decode(raw); err != nil {
		log.WithError(err).Warn("данные генератора не соответствуют схеме, применены значения по умолчанию")
	}
}

func DecodeReplyAnalysis(raw map[string]interface{}) aimodels.ReplyAnalysis {
	rec := aimodels.ReplyAnalysis{}
	decode(raw, &rec)
	switch rec.Sentiment {
	case models.SentimentPositive, models.SentimentNegative, models.SentimentNeutral:
	default:
		rec.Sentiment = models.SentimentNeutral
	}
	if rec.Intent == "" {
		rec.Intent = "needs_info"
	}
	if rec.KeyPoints == nil {
		rec.KeyPoints = []string{}
	}
	if rec.Analysis == nil {
		rec.Analysis = map[string]interface{}{}
	}
	return rec
}

func DecodeParsedJD(raw map[string]interface{}) pipelineapimodels.JDView {
	rec := struct {
		JobTitle         string   `mapstructure:"job_title"`
		JobSummary       string   `mapstructure:"job_summary"`
		Responsibilities []string `mapstructure:"responsibilities"`
		Requirements     []string `mapstructure:"requirements"`
		Skills           []string `mapstructure:"skills"`
	}{}
	decode(raw, &rec)
	jd := pipelineapimodels.JDView{
		JobTitle:         rec.JobTitle,
		JobSummary:       rec.JobSummary,
		Responsibilities: rec.Responsibilities,
		Requirements:     rec.Requirements,
		Skills:           rec.Skills,
	}
	if jd.Responsibilities == nil {
		jd.Responsibilities = []string{}
	}
	if jd.Requirements == nil {
		jd.Requirements = []string{}
	}
	if jd.Skills == nil {
		jd.Skills = []string{}
	}
	return jd
}

func DecodeParsedCandidate(raw map[string]interface{}) pipelineapimodels.CandidateData {
	rec := struct {
		Name           string                 `mapstructure:"name"`
		Summary        string                 `mapstructure:"summary"`
		Skills         []string               `mapstructure:"skills"`
		Experience     string                 `mapstructure:"experience"`
		ParsedInsights map[string]interface{} `mapstructure:"parsed_insights"`
	}{}
	decode(raw, &rec)
	data := pipelineapimodels.CandidateData{
		Name:           rec.Name,
		Summary:        rec.Summary,
		Skills:         rec.Skills,
		Experience:     rec.Experience,
		ParsedInsights: rec.ParsedInsights,
	}
	if data.Name == "" {
		data.Name = "Unknown Candidate"
	}
	if data.Skills == nil {
		data.Skills = []string{}
	}
	if data.ParsedInsights == nil {
		data.ParsedInsights = map[string]interface{}{}
	}
	return data
}

// DecodeInterviewExtraction приводит результат разбора интервью
// к частичной форме - незаполненные поля не затирают сохранённые
func DecodeInterviewExtraction(raw map[string]interface{}) pipelineapimodels.InterviewData {
	rec := struct {
		Summary            *string                `mapstructure:"summary"`
		Transcription      *string                `mapstructure:"transcription"`
		FitScore           *int                   `mapstructure:"fit_score"`
		KeyPoints          *[]string              `mapstructure:"key_points"`
		Strengths          *[]string              `mapstructure:"strengths"`
		Concerns           *[]string              `mapstructure:"concerns"`
		Recommendation     *string                `mapstructure:"recommendation"`
		CandidateResponses map[string]interface{} `mapstructure:"candidate_responses"`
	}{}
	decode(raw, &rec)
	return pipelineapimodels.InterviewData{
		Summary:            rec.Summary,
		Transcription:      rec.Transcription,
		FitScore:           rec.FitScore,
		KeyPoints:          rec.KeyPoints,
		Strengths:          rec.Strengths,
		Concerns:           rec.Concerns,
		Recommendation:     rec.Recommendation,
		CandidateResponses: rec.CandidateResponses,
	}
}
