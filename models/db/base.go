package dbmodels

// BaseModel - идентификатор и метки времени.
// Метки хранятся строками RFC3339 и проставляются кодом хранилища,
// чтобы оба бэкенда отдавали одинаковые представления.
type BaseModel struct {
	ID        string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CreatedAt string `gorm:"type:varchar(50)" json:"created_at"`
	UpdatedAt string `gorm:"type:varchar(50)" json:"updated_at"`
}
