package dbmodels

import (
	"hr-pipeline-backend/models"
	pipelineapimodels "hr-pipeline-backend/models/api/pipeline"
)

type Candidate struct {
	BaseModel
	RoleID              string                `gorm:"type:varchar(36);index"`
	Name                string                `gorm:"type:varchar(255)"`
	Summary             string                `gorm:"type:text"`
	Skills              StringList            `gorm:"type:text"`
	Experience          string                `gorm:"type:text"`
	ParsedInsights      JSONMap               `gorm:"type:text"`
	Column              models.PipelineColumn `gorm:"column:column;type:varchar(20)"`
	Color               string                `gorm:"type:varchar(50)"`
	OutreachSent        bool
	OutreachMessage     *string `gorm:"type:text"`
	Checklist           BoolMap `gorm:"type:text"`
	ConsentFormSent     bool
	ConsentFormReceived bool
	EmailStatus         *string `gorm:"type:varchar(50)"`
	NotPushingForward   bool
	SentToClient        bool
	ConsentEmail        *string `gorm:"type:text"`
	ConsentReply        *string `gorm:"type:text"`
	SimulatedEmail      *string `gorm:"type:text"`
	OutreachReply       *string `gorm:"type:text"`
	ResumeFilePath      *string `gorm:"type:varchar(1000)"`

	Interview *Interview `gorm:"foreignKey:CandidateID;constraint:OnDelete:CASCADE"`
}

func (c Candidate) ToModel() pipelineapimodels.CandidateView {
	skills := []string(c.Skills)
	if skills == nil {
		skills = []string{}
	}
	insights := map[string]interface{}(c.ParsedInsights)
	if insights == nil {
		insights = map[string]interface{}{}
	}
	column := c.Column
	if column == "" {
		column = models.ColumnOutreach
	}
	color := c.Color
	if color == "" {
		color = models.DefaultCandidateColor
	}
	view := pipelineapimodels.CandidateView{
		ID:                  c.ID,
		Name:                c.Name,
		Summary:             c.Summary,
		Skills:              skills,
		Experience:          c.Experience,
		ParsedInsights:      insights,
		Column:              column,
		Color:               color,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
		OutreachSent:        c.OutreachSent,
		OutreachMessage:     c.OutreachMessage,
		Checklist:           c.Checklist,
		ConsentFormSent:     c.ConsentFormSent,
		ConsentFormReceived: c.ConsentFormReceived,
		EmailStatus:         c.EmailStatus,
		NotPushingForward:   c.NotPushingForward,
		SentToClient:        c.SentToClient,
		ResumeFilePath:      c.ResumeFilePath,
	}
	consentEmail := pipelineapimodels.ConsentEmailRecord{}
	if parseDoc(c.ConsentEmail, &consentEmail) {
		view.ConsentEmail = &consentEmail
	}
	consentReply := pipelineapimodels.ConsentReplyRecord{}
	if parseDoc(c.ConsentReply, &consentReply) {
		view.ConsentReply = &consentReply
	}
	simulatedEmail := pipelineapimodels.SimulatedEmailRecord{}
	if parseDoc(c.SimulatedEmail, &simulatedEmail) {
		view.SimulatedEmail = &simulatedEmail
	}
	outreachReply := pipelineapimodels.OutreachReplyRecord{}
	if parseDoc(c.OutreachReply, &outreachReply) {
		view.OutreachReply = &outreachReply
	}
	return view
}

// ApplyView переносит представление обратно в строку таблицы,
// идентификаторы и created_at не трогаются
func (c *Candidate) ApplyView(view pipelineapimodels.CandidateView) {
	c.Name = view.Name
	c.Summary = view.Summary
	c.Skills = StringList(view.Skills)
	c.Experience = view.Experience
	c.ParsedInsights = JSONMap(view.ParsedInsights)
	c.Column = view.Column
	c.Color = view.Color
	c.UpdatedAt = view.UpdatedAt
	c.OutreachSent = view.OutreachSent
	c.OutreachMessage = view.OutreachMessage
	c.Checklist = BoolMap(view.Checklist)
	c.ConsentFormSent = view.ConsentFormSent
	c.ConsentFormReceived = view.ConsentFormReceived
	c.EmailStatus = view.EmailStatus
	c.NotPushingForward = view.NotPushingForward
	c.SentToClient = view.SentToClient
	c.ResumeFilePath = view.ResumeFilePath
	c.ConsentEmail = nil
	if view.ConsentEmail != nil {
		c.ConsentEmail = jsonDoc(view.ConsentEmail)
	}
	c.ConsentReply = nil
	if view.ConsentReply != nil {
		c.ConsentReply = jsonDoc(view.ConsentReply)
	}
	c.SimulatedEmail = nil
	if view.SimulatedEmail != nil {
		c.SimulatedEmail = jsonDoc(view.SimulatedEmail)
	}
	c.OutreachReply = nil
	if view.OutreachReply != nil {
		c.OutreachReply = jsonDoc(view.OutreachReply)
	}
}
