package pipelineapimodels

type ConsentTemplateView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ConsentTemplateData - создание или обновление шаблона,
// при заполненном ID существующий шаблон перезаписывается
type ConsentTemplateData struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Content string `json:"content"`
}
