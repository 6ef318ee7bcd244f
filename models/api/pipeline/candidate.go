package pipelineapimodels

import (
	"hr-pipeline-backend/models"
)

type CandidateView struct {
	ID              string                 `json:"id"`
	Name            string                 `json:"name"`
	Summary         string                 `json:"summary"`
	Skills          []string               `json:"skills"`
	Experience      string                 `json:"experience"`
	ParsedInsights  map[string]interface{} `json:"parsed_insights"`
	Column          models.PipelineColumn  `json:"column"`
	Color           string                 `json:"color"`
	CreatedAt       string                 `json:"created_at"`
	UpdatedAt       string                 `json:"updated_at"`
	OutreachSent    bool                   `json:"outreach_sent"`
	OutreachMessage *string                `json:"outreach_message"`
	// Checklist отсутствует до первого перехода в follow-up
	Checklist           map[string]bool       `json:"checklist,omitempty"`
	ConsentFormSent     bool                  `json:"consent_form_sent"`
	ConsentFormReceived bool                  `json:"consent_form_received"`
	EmailStatus         *string               `json:"email_status"`
	NotPushingForward   bool                  `json:"not_pushing_forward"`
	SentToClient        bool                  `json:"sent_to_client"`
	ConsentEmail        *ConsentEmailRecord   `json:"consent_email"`
	ConsentReply        *ConsentReplyRecord   `json:"consent_reply"`
	SimulatedEmail      *SimulatedEmailRecord `json:"simulated_email"`
	OutreachReply       *OutreachReplyRecord  `json:"outreach_reply"`
	ResumeFilePath      *string               `json:"resume_file_path,omitempty"`
}

type CandidateData struct {
	Name           string                 `json:"name"`
	Summary        string                 `json:"summary"`
	Skills         []string               `json:"skills"`
	Experience     string                 `json:"experience"`
	ParsedInsights map[string]interface{} `json:"parsed_insights"`
	ResumeFilePath *string                `json:"resume_file_path"`
}

// StatusUpdate - частичное обновление карточки кандидата,
// checklist мержится поключево, остальные поля применяются если заполнены
type StatusUpdate struct {
	Column              *models.PipelineColumn `json:"column"`
	Color               *string                `json:"color"`
	OutreachSent        *bool                  `json:"outreach_sent"`
	OutreachMessage     *string                `json:"outreach_message"`
	Checklist           map[string]bool        `json:"checklist"`
	ConsentFormSent     *bool                  `json:"consent_form_sent"`
	ConsentFormReceived *bool                  `json:"consent_form_received"`
	EmailStatus         *string                `json:"email_status"`
	NotPushingForward   *bool                  `json:"not_pushing_forward"`
	SentToClient        *bool                  `json:"sent_to_client"`
	ConsentEmail        *ConsentEmailRecord    `json:"consent_email"`
	ConsentReply        *ConsentReplyRecord    `json:"consent_reply"`
	SimulatedEmail      *SimulatedEmailRecord  `json:"simulated_email"`
	OutreachReply       *OutreachReplyRecord   `json:"outreach_reply"`
}

// OutreachReplyRecord - последний ответ кандидата на первичное письмо
type OutreachReplyRecord struct {
	Content    string                 `json:"content"`
	Subject    string                 `json:"subject"`
	Sentiment  models.ReplySentiment  `json:"sentiment"`
	Intent     string                 `json:"intent"`
	Analysis   map[string]interface{} `json:"analysis"`
	ReceivedAt string                 `json:"received_at"`
}

type ConsentEmailRecord struct {
	To               string `json:"to"`
	Subject          string `json:"subject"`
	Content          string `json:"content"`
	ConsentContent   string `json:"consent_content"`
	ConsentContentID string `json:"consent_content_id"`
	CandidateName    string `json:"candidate_name"`
	SentAt           string `json:"sent_at"`
	Status           string `json:"status"`
}

type ConsentReplyRecord struct {
	ReceivedAt  string               `json:"received_at"`
	Status      models.ConsentStatus `json:"status"`
	RespondedBy string               `json:"responded_by"`
	Response    string               `json:"response"`
}

type SimulatedEmailRecord struct {
	Content          string                 `json:"content"`
	Sentiment        models.ReplySentiment  `json:"sentiment"`
	Intent           string                 `json:"intent"`
	Analysis         map[string]interface{} `json:"analysis"`
	Timestamp        string                 `json:"timestamp"`
	Type             string                 `json:"type"`
	ConsentStatus    models.ConsentStatus   `json:"consent_status,omitempty"`
	ConsentContent   string                 `json:"consent_content,omitempty"`
	ConsentContentID string                 `json:"consent_content_id,omitempty"`
}

// OutreachReplyData - данные ответа кандидата от внешнего анализатора
type OutreachReplyData struct {
	Content   string                 `json:"content"`
	Body      string                 `json:"body"`
	Subject   string                 `json:"subject"`
	Sentiment models.ReplySentiment  `json:"sentiment"`
	Intent    string                 `json:"intent"`
	Analysis  map[string]interface{} `json:"analysis"`
}

type ConsentReplyData struct {
	Content       string                 `json:"content"`
	Sentiment     models.ReplySentiment  `json:"sentiment"`
	Intent        string                 `json:"intent"`
	Analysis      map[string]interface{} `json:"analysis"`
	ConsentStatus models.ConsentStatus   `json:"consent_status"`
	Response      string                 `json:"response"`
}

type ConsentEmailData struct {
	CandidateName    string `json:"candidate_name"`
	RoleTitle        string `json:"role_title"`
	Email            string `json:"email"`
	Subject          string `json:"subject"`
	ConsentContent   string `json:"consent_content"`
	ConsentContentID string `json:"consent_content_id"`
}
