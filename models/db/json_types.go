package dbmodels

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/pkg/errors"

	pipelineapimodels "hr-pipeline-backend/models/api/pipeline"
)

// Списки и словари хранятся сериализованным текстом:
// колоночного типа под них нет ни в sqlite, ни в постгресе без расширений.
// Scan терпим к NULL и битому значению - отдаёт значение по умолчанию.

type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	body, err := json.Marshal(l)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка сериализации списка")
	}
	return string(body), nil
}

func (l *StringList) Scan(value interface{}) error {
	*l = StringList{}
	body := rawBytes(value)
	if len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, l); err != nil {
		*l = StringList{}
	}
	return nil
}

func (StringList) GormDataType() string {
	return "text"
}

type JSONMap map[string]interface{}

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	body, err := json.Marshal(m)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка сериализации словаря")
	}
	return string(body), nil
}

func (m *JSONMap) Scan(value interface{}) error {
	*m = JSONMap{}
	body := rawBytes(value)
	if len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, m); err != nil {
		*m = JSONMap{}
	}
	return nil
}

func (JSONMap) GormDataType() string {
	return "text"
}

// BoolMap - чеклист кандидата. Отсутствие чеклиста значимо,
// поэтому nil отображается в NULL, а NULL - обратно в nil.
type BoolMap map[string]bool

func (m BoolMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	body, err := json.Marshal(m)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка сериализации чеклиста")
	}
	return string(body), nil
}

func (m *BoolMap) Scan(value interface{}) error {
	*m = nil
	body := rawBytes(value)
	if len(body) == 0 {
		return nil
	}
	parsed := map[string]bool{}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil
	}
	*m = parsed
	return nil
}

func (BoolMap) GormDataType() string {
	return "text"
}

type ChatMessages []pipelineapimodels.ChatMessage

func (l ChatMessages) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	body, err := json.Marshal(l)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка сериализации сообщений")
	}
	return string(body), nil
}

func (l *ChatMessages) Scan(value interface{}) error {
	*l = ChatMessages{}
	body := rawBytes(value)
	if len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, l); err != nil {
		*l = ChatMessages{}
	}
	return nil
}

func (ChatMessages) GormDataType() string {
	return "text"
}

func rawBytes(value interface{}) []byte {
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		return v
	case string:
		return []byte(v)
	default:
		return nil
	}
}

// jsonDoc / parseDoc - сериализация вложенных записей переписки,
// в колонке NULL когда записи нет
func jsonDoc(doc interface{}) *string {
	body, err := json.Marshal(doc)
	if err != nil {
		return nil
	}
	value := string(body)
	return &value
}

func parseDoc(column *string, doc interface{}) bool {
	if column == nil || *column == "" {
		return false
	}
	return json.Unmarshal([]byte(*column), doc) == nil
}
