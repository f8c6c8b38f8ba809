package usecase

import (
	"bytes"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/yourusername/career-advisor/internal/domain/entity"
	"github.com/yourusername/career-advisor/internal/i18n"
)

func gradingExportHeaders(lang entity.Language) []string {
	return []string{
		i18n.Translate(lang, "select_country"),
		"Min",
		"Max",
		"Step",
		"Default",
		"Factor",
		"Label",
		"Subjects",
	}
}

// BuildGradingTableXLSX mamlakatlar jadvalini xlsx faylga yozadi
func BuildGradingTableXLSX(countries []entity.CountryProfile, lang entity.Language) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	for i, h := range gradingExportHeaders(lang) {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for i, c := range countries {
		subjects := make([]string, 0, len(c.Subjects))
		for _, s := range c.Subjects {
			subjects = append(subjects, i18n.Translate(lang, s))
		}
		values := []interface{}{
			i18n.Translate(lang, c.Name),
			c.Scale.Min,
			c.Scale.Max,
			c.Scale.Step,
			c.Scale.Default,
			c.Factor,
			c.MaxLabel,
			strings.Join(subjects, ", "),
		}
		rowIdx := i + 2
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
