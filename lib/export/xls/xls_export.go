package xlsexport

import (
	"bytes"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	pipelineapimodels "hr-pipeline-backend/models/api/pipeline"
)

type Provider interface {
	ExportCandidateList(roleTitle string, list []pipelineapimodels.CandidateView) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var candidateHeaders = []string{"Кандидат", "Колонка", "Навыки", "Ответ на письмо", "Согласие", "Передан заказчику", "Не продвигается", "Обновлён"}

func (i impl) ExportCandidateList(roleTitle string, list []pipelineapimodels.CandidateView) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, candidateHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		row, err = writeCandidateData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	sheetName := roleTitle
	if sheetName == "" {
		sheetName = "Кандидаты"
	}
	f.SetSheetName(sheet, sheetName)
	return f.WriteToBuffer()
}

func writeCandidateData(f *excelize.File, sheet string, list []pipelineapimodels.CandidateView, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(candidateHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "Кандидат"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.Name); err != nil {
			return row, err
		}

		// "Колонка"
		col++
		if err := writeColumn(f, sheet, col, row, string(item.Column)); err != nil {
			return row, err
		}

		// "Навыки"
		col++
		if err := writeColumn(f, sheet, col, row, strings.Join(item.Skills, ", ")); err != nil {
			return row, err
		}

		// "Ответ на письмо"
		col++
		if item.OutreachReply != nil {
			if err := writeColumn(f, sheet, col, row, string(item.OutreachReply.Sentiment)); err != nil {
				return row, err
			}
		}

		// "Согласие"
		col++
		if item.EmailStatus != nil {
			if err := writeColumn(f, sheet, col, row, *item.EmailStatus); err != nil {
				return row, err
			}
		}

		// "Передан заказчику"
		col++
		if err := writeColumn(f, sheet, col, row, boolMark(item.SentToClient)); err != nil {
			return row, err
		}

		// "Не продвигается"
		col++
		if err := writeColumn(f, sheet, col, row, boolMark(item.NotPushingForward)); err != nil {
			return row, err
		}

		// "Обновлён"
		col++
		if err := writeColumn(f, sheet, col, row, item.UpdatedAt); err != nil {
			return row, err
		}
	}
	return row, nil
}

func boolMark(value bool) string {
	if value {
		return "да"
	}
	return ""
}
