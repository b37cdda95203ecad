package record

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prezlab/letter-generator/internal/schemas"
)

func writeRecordFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "record.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFile_DerivesMissingFields(t *testing.T) {
	path := writeRecordFile(t, `{
		"full_name": "Jane Doe",
		"job_title": "Engineer",
		"company": "Acme",
		"work_address": "12 Main St, Springfield, USA",
		"wage": 1500
	}`)

	rec, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane", rec.FirstName)
	assert.Equal(t, "Jane Doe", rec.ArabicName)
	assert.Equal(t, "Acme", rec.CompanyArabicName)
	assert.Equal(t, "USA", rec.CompanyCountry)
	assert.Equal(t, "12 Main St, Springfield, USA", rec.ArabicWorkAddress)
	assert.Equal(t, DefaultHeadOfPeopleCulture, rec.HeadOfPeopleCulture)
	assert.Equal(t, 1500.0, rec.Wage)
}

func TestLoadFile_SchemaRejectsUnknownField(t *testing.T) {
	path := writeRecordFile(t, `{"full_name": "Jane Doe", "salary_text": "lots"}`)

	_, err := LoadFile(path)
	require.Error(t, err)
	var validationErr *schemas.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestLoadFile_MissingName(t *testing.T) {
	path := writeRecordFile(t, `{"full_name": "   "}`)

	_, err := LoadFile(path)
	require.Error(t, err)
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read record file")
}
