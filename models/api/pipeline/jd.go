package pipelineapimodels

// JDView - распарсенное описание вакансии, не более одного на вакансию
type JDView struct {
	JobTitle         string   `json:"job_title"`
	JobSummary       string   `json:"job_summary"`
	Responsibilities []string `json:"responsibilities"`
	Requirements     []string `json:"requirements"`
	Skills           []string `json:"skills"`
	JDFilePath       *string  `json:"jd_file_path,omitempty"`
}

type JDUpdate struct {
	JobTitle         *string   `json:"job_title"`
	JobSummary       *string   `json:"job_summary"`
	Responsibilities *[]string `json:"responsibilities"`
	Requirements     *[]string `json:"requirements"`
	Skills           *[]string `json:"skills"`
	JDFilePath       *string   `json:"jd_file_path"`
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
