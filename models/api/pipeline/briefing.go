package pipelineapimodels

type AssignedRole struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type BriefingView struct {
	ID              string                 `json:"id"`
	Summary         string                 `json:"summary"`
	ExtractedFields map[string]interface{} `json:"extracted_fields"`
	Transcription   string                 `json:"transcription"`
	RoleIDs         []string               `json:"role_ids"`
	AssignedRoles   []AssignedRole         `json:"assigned_roles,omitempty"`
	AudioFilePath   *string                `json:"audio_file_path,omitempty"`
	CreatedAt       string                 `json:"created_at"`
	UpdatedAt       string                 `json:"updated_at,omitempty"`
}

type BriefingData struct {
	Summary         string                 `json:"summary"`
	ExtractedFields map[string]interface{} `json:"extracted_fields"`
	Transcription   string                 `json:"transcription"`
	AudioFilePath   *string                `json:"audio_file_path"`
}
