package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPaginationDefaults(t *testing.T) {
	p := GetPagination(0, 0)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.PageSize)
	assert.Equal(t, 0, p.Offset())

	p = GetPagination(-1, -5)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.PageSize)

	p = GetPagination(3, 500)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 100, p.PageSize)
	assert.Equal(t, 200, p.Offset())
}

func TestNewListMeta(t *testing.T) {
	meta := NewListMeta(25, GetPagination(2, 10))
	assert.Equal(t, 25, meta.Total)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 3, meta.TotalPages)

	meta = NewListMeta(0, GetPagination(1, 10))
	assert.Equal(t, 1, meta.TotalPages)
}

func TestParseReportPeriod(t *testing.T) {
	from, to, err := ParseReportPeriod("2025-06-01", "2025-06-30")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), from)
	// O fim do intervalo cobre o dia inteiro
	assert.Equal(t, 30, to.Day())
	assert.Equal(t, 23, to.Hour())
}

func TestParseReportPeriodDefaultsToLast30Days(t *testing.T) {
	from, to, err := ParseReportPeriod("", "")
	require.NoError(t, err)

	assert.WithinDuration(t, time.Now(), to, time.Minute)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, -30), from, time.Minute)
}

func TestParseReportPeriodRejectsBadDates(t *testing.T) {
	_, _, err := ParseReportPeriod("junho", "")
	assert.Error(t, err)

	_, _, err = ParseReportPeriod("", "30/06/2025")
	assert.Error(t, err)
}
