package adapters

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock_insights/internal/feature/events/domain"
)

func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewsCSV_Records(t *testing.T) {
	path := writeCSV(t, "news.csv", "date,event_type\n2023-03-22,FOMC\n2022-06-15,CPI\n")
	d := NewNewsDataset(path)

	records, err := d.Records(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "2023-03-22", records[0].Date)
	assert.Equal(t, 2023, records[0].Year)
	assert.Equal(t, "FOMC", records[0].EventType)
	assert.Equal(t, 2022, records[1].Year)
}

func TestNewsCSV_MissingFile(t *testing.T) {
	d := NewNewsDataset(filepath.Join(t.TempDir(), "nope.csv"))
	_, err := d.Records(context.Background())
	assert.ErrorIs(t, err, domain.ErrDatasetUnavailable)
}

func TestNewsCSV_MissingColumn(t *testing.T) {
	d := NewNewsDataset(writeCSV(t, "news.csv", "date\n2023-03-22\n"))
	_, err := d.Records(context.Background())
	assert.ErrorIs(t, err, domain.ErrInvalidSchema)
}

func TestNewsCSV_BadDate(t *testing.T) {
	d := NewNewsDataset(writeCSV(t, "news.csv", "date,event_type\nnot-a-date,FOMC\n"))
	_, err := d.Records(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrDatasetUnavailable, "a corrupt file is a backend fault, not a missing dataset")
}

func TestEconomicCSV_Records(t *testing.T) {
	path := writeCSV(t, "econ.csv", "date,event_type,bin\n2023-01-12,CPI,Beat\n")
	d := NewEconomicDataset(path)

	records, err := d.Records(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2023-01-12", records[0].Date)
	assert.Equal(t, "CPI", records[0].EventType)
	assert.Equal(t, "Beat", records[0].Bin)
}

func TestEconomicCSV_MissingBinColumn(t *testing.T) {
	d := NewEconomicDataset(writeCSV(t, "econ.csv", "date,event_type\n2023-01-12,CPI\n"))
	_, err := d.Records(context.Background())
	assert.ErrorIs(t, err, domain.ErrInvalidSchema)
}
