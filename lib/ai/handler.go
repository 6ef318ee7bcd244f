package aihandler

import (
	"encoding/json"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"hr-pipeline-backend/config"
	"hr-pipeline-backend/lib/ai/ingest"
	yagptclient "hr-pipeline-backend/lib/ai/yagpt-client"
	aimodels "hr-pipeline-backend/models/api/ai"
	pipelineapimodels "hr-pipeline-backend/models/api/pipeline"
)

// Provider - контракты внешних генераторов. Ядро хранилища видит
// только уже приведённые к схеме структуры.
type Provider interface {
	AnalyzeReply(text string) (aimodels.ReplyAnalysis, error)
	ParseJD(text string) (pipelineapimodels.JDView, error)
	ParseResume(text string) (pipelineapimodels.CandidateData, error)
	DraftOutreach(roleTitle, candidateName string, skills []string) (message string, err error)
	ExtractInterview(transcription string) (pipelineapimodels.InterviewData, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		client: yagptclient.NewClient(config.Conf.YandexGPT.IAMToken, config.Conf.YandexGPT.CatalogID),
	}
}

type impl struct {
	client yagptclient.Provider
}

const (
	analyzeReplyPromt = `You are a recruiting assistant. Analyze the candidate's reply to an outreach email. Respond with a single JSON object: {"sentiment": "positive"|"neutral"|"negative", "intent": "interested"|"needs_info"|"not_interested", "key_points": [..]}. No other text.`
	parseJDPromt      = `You are a recruiting assistant. Extract structure from the job description text. Respond with a single JSON object: {"job_title": "", "job_summary": "", "responsibilities": [..], "requirements": [..], "skills": [..]}. No other text.`
	parseResumePromt  = `You are a recruiting assistant. Extract structure from the resume text. Respond with a single JSON object: {"name": "", "summary": "", "skills": [..], "experience": "", "parsed_insights": {}}. No other text.`
	draftPromt        = `You are a recruiter writing a short, friendly first outreach email to a candidate. Respond with the email text only.`
	interviewPromt    = `You are a recruiting assistant. Extract structure from the screening interview transcription. Respond with a single JSON object: {"summary": "", "key_points": [..], "strengths": [..], "concerns": [..], "fit_score": 0-100, "recommendation": "yes"|"no"|"maybe", "candidate_responses": {}}. No other text.`
)

func (i impl) AnalyzeReply(text string) (aimodels.ReplyAnalysis, error) {
	raw, err := i.generateDoc(analyzeReplyPromt, text)
	if err != nil {
		log.WithError(err).Error("ошибка анализа ответа кандидата")
		return aimodels.ReplyAnalysis{}, err
	}
	return ingest.DecodeReplyAnalysis(raw), nil
}

func (i impl) ParseJD(text string) (pipelineapimodels.JDView, error) {
	raw, err := i.generateDoc(parseJDPromt, text)
	if err != nil {
		log.WithError(err).Error("ошибка разбора описания вакансии")
		return pipelineapimodels.JDView{}, err
	}
	return ingest.DecodeParsedJD(raw), nil
}

func (i impl) ParseResume(text string) (pipelineapimodels.CandidateData, error) {
	raw, err := i.generateDoc(parseResumePromt, text)
	if err != nil {
		log.WithError(err).Error("ошибка разбора резюме")
		return pipelineapimodels.CandidateData{}, err
	}
	return ingest.DecodeParsedCandidate(raw), nil
}

func (i impl) DraftOutreach(roleTitle, candidateName string, skills []string) (string, error) {
	text := fmt.Sprintf("Role: %s. Candidate: %s. Skills: %s.",
		roleTitle, candidateName, strings.Join(skills, ", "))
	message, err := i.client.GenerateByPromtAndText(draftPromt, text)
	if err != nil {
		log.WithError(err).Error("ошибка генерации первичного письма")
		return "", err
	}
	return strings.TrimSpace(message), nil
}

func (i impl) ExtractInterview(transcription string) (pipelineapimodels.InterviewData, error) {
	raw, err := i.generateDoc(interviewPromt, transcription)
	if err != nil {
		log.WithError(err).Error("ошибка разбора интервью")
		return pipelineapimodels.InterviewData{}, err
	}
	return ingest.DecodeInterviewExtraction(raw), nil
}

// generateDoc запрашивает генерацию и разбирает ответ как JSON-словарь,
// модель может обернуть его в пояснительный текст
func (i impl) generateDoc(promt, text string) (map[string]interface{}, error) {
	generated, err := i.client.GenerateByPromtAndText(promt, text)
	if err != nil {
		return nil, err
	}
	raw := map[string]interface{}{}
	body := extractJSONObject(generated)
	if body == "" {
		return raw, nil
	}
	if err := json.Unmarshal([]byte(body), &raw); err != nil {
		// некорректная форма ответа не ошибка вызова,
		// поля добираются значениями по умолчанию на границе ingest
		log.WithError(err).Warn("ответ генератора не является JSON")
		return map[string]interface{}{}, nil
	}
	return raw, nil
}

func extractJSONObject(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return ""
	}
	return text[start : end+1]
}
