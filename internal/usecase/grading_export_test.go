package usecase

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/yourusername/career-advisor/internal/domain/entity"
)

func TestBuildGradingTableXLSX(t *testing.T) {
	g := NewGradingUseCase()

	data, err := BuildGradingTableXLSX(g.Countries(), entity.LanguageEnglish)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 8)

	assert.Equal(t, "Select your country", rows[0][0])
	assert.Equal(t, "Mexico", rows[1][0])
	assert.Equal(t, "100", rows[1][2])
	assert.Equal(t, "/100", rows[1][6])
	assert.Equal(t, "Brazil", rows[6][0])
	assert.Equal(t, "2.5", rows[6][5])
	assert.Contains(t, rows[7][7], "History")
}
