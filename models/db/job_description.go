package dbmodels

import (
	pipelineapimodels "hr-pipeline-backend/models/api/pipeline"
)

type JobDescription struct {
	RoleID           string     `gorm:"primaryKey;type:varchar(36)"`
	JobTitle         string     `gorm:"type:varchar(500)"`
	JobSummary       string     `gorm:"type:text"`
	Responsibilities StringList `gorm:"type:text"`
	Requirements     StringList `gorm:"type:text"`
	Skills           StringList `gorm:"type:text"`
	JDFilePath       *string    `gorm:"column:jd_file_path;type:varchar(1000)"`
}

func (jd JobDescription) ToModel() pipelineapimodels.JDView {
	responsibilities := []string(jd.Responsibilities)
	if responsibilities == nil {
		responsibilities = []string{}
	}
	requirements := []string(jd.Requirements)
	if requirements == nil {
		requirements = []string{}
	}
	skills := []string(jd.Skills)
	if skills == nil {
		skills = []string{}
	}
	return pipelineapimodels.JDView{
		JobTitle:         jd.JobTitle,
		JobSummary:       jd.JobSummary,
		Responsibilities: responsibilities,
		Requirements:     requirements,
		Skills:           skills,
		JDFilePath:       jd.JDFilePath,
	}
}
