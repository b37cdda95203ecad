package letters

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prezlab/letter-generator/internal/record"
)

func sampleRecord() *record.Canonical {
	return &record.Canonical{
		ID:                        "11",
		FullName:                  "Jane Doe",
		FirstName:                 "Jane",
		JobTitle:                  "Engineer",
		Identification:            "E-100",
		Wage:                      1500,
		JoiningDate:               "03/02/2021",
		ContractEndDate:           "31/12/2025",
		Department:                "Design",
		ArabicName:                "جين دو",
		Company:                   "Acme",
		CompanyRegistrar:          "CR-555",
		CompanyCountry:            "USA",
		CompanyArabicName:         "شركة أكمي",
		HeadOfPeopleCulture:       "Head Person",
		HeadOfPeopleCultureArabic: "رئيسة",
		WorkAddress:               "12 Main St, Springfield, USA",
		ArabicWorkAddress:         "شارع ١٢",
		Country:                   "France",
		StartDate:                 "01/03/2024",
		EndDate:                   "15/03/2024",
	}
}

func tokenValue(pairs []Pair, token string) (string, bool) {
	for _, p := range pairs {
		if p.Token == token {
			return p.Value, true
		}
	}
	return "", false
}

func TestBuildPlaceholders_Vocabulary(t *testing.T) {
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	pairs := BuildPlaceholders(sampleRecord(), Options{Now: now})

	expect := map[string]string{
		"(Current Date)":        "01/01/2024",
		"(First and Last Name)": "Jane Doe",
		"(First Name)":          "Jane",
		"(Position)":            "Engineer",
		"(Salary)":              "1500",
		"(DD/MM/YYYY)":          "03/02/2021",
		"(Country)":             "France",
		"(Start Date)":          "01/03/2024",
		"(End Date)":            "15/03/2024",
		"(Company)":             "Acme",
		"(Work address)":        "12 Main St, Springfield, USA",
		"(Work Address)":        "12 Main St, Springfield, USA",
		"(Arabic Work address)": "شارع ١٢",
		"(CR)":                  "CR-555",
		"(Company Country)":     "USA",
		"(CompanyA)":            "شركة أكمي",
		"(P&C)":                 "Head Person",
		"(AP&C)":                "رئيسة",
		"(Contract End Date)":   "31/12/2025",
		"(Department)":          "Design",
		"(بلد الوجهة)":          "France",
		"(تاريخ البداية)":       "01/03/2024",
		"(تاريخ النهاية)":       "15/03/2024",
	}
	for token, want := range expect {
		got, ok := tokenValue(pairs, token)
		require.True(t, ok, "missing token %s", token)
		assert.Equal(t, want, got, "token %s", token)
	}
}

func TestBuildPlaceholders_ArabicFullNameSelection(t *testing.T) {
	rec := sampleRecord()

	pairs := BuildPlaceholders(rec, Options{Now: time.Now()})
	got, ok := tokenValue(pairs, "(الاسم الكامل)")
	require.True(t, ok)
	assert.Equal(t, "Jane Doe", got, "Latin template resolves the Latin name")

	pairs = BuildPlaceholders(rec, Options{Now: time.Now(), Arabic: true})
	got, _ = tokenValue(pairs, "(الاسم الكامل)")
	assert.Equal(t, "جين دو", got)

	rec.ArabicName = ""
	pairs = BuildPlaceholders(rec, Options{Now: time.Now(), Arabic: true})
	got, _ = tokenValue(pairs, "(الاسم الكامل)")
	assert.Equal(t, "Jane Doe", got, "missing Arabic name falls back to the Latin name")
}

func TestBuildPlaceholders_LongestTokenFirst(t *testing.T) {
	pairs := BuildPlaceholders(sampleRecord(), Options{Now: time.Now()})
	for i := 1; i < len(pairs); i++ {
		assert.GreaterOrEqual(t, len(pairs[i-1].Token), len(pairs[i].Token))
	}
}

func TestBuildPlaceholders_NoTokenIsSubstringOfAnother(t *testing.T) {
	pairs := BuildPlaceholders(sampleRecord(), Options{Now: time.Now()})
	assert.Empty(t, OverlappingTokens(pairs))
}

func TestFormatWage(t *testing.T) {
	assert.Equal(t, "0", FormatWage(0))
	assert.Equal(t, "1500", FormatWage(1500))
	assert.Equal(t, "1250.5", FormatWage(1250.5))
}
