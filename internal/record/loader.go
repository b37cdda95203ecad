package record

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/prezlab/letter-generator/internal/schemas"
)

// CanonicalSchemaPath is the repo-relative location of the canonical record
// schema used to validate offline record files.
const CanonicalSchemaPath = "schemas/canonical_record.schema.json"

// LoadFile reads a canonical record from a JSON file, validating it against
// the canonical record schema first. Fields the file omits stay empty
// strings; derived fields (first name, company country, Arabic fallbacks)
// are recomputed so an offline record behaves like a fetched one.
func LoadFile(path string) (*Canonical, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read record file %s: %w", path, err)
	}

	schemaPath := schemas.ResolveSchemaPath(filepath.FromSlash(CanonicalSchemaPath))
	if schemaPath != "" {
		if err := schemas.ValidateBytes(schemaPath, data); err != nil {
			return nil, fmt.Errorf("record file %s: %w", path, err)
		}
	}

	var rec Canonical
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to parse record file %s: %w", path, err)
	}

	rec.FullName = strings.TrimSpace(rec.FullName)
	if rec.FullName == "" && rec.ID == "" {
		return nil, &IncompleteError{}
	}
	if rec.FirstName == "" {
		rec.FirstName = FirstName(rec.FullName)
	}
	if rec.ArabicName == "" {
		rec.ArabicName = rec.FullName
	}
	if rec.CompanyArabicName == "" {
		rec.CompanyArabicName = rec.Company
	}
	if rec.CompanyCountry == "" {
		rec.CompanyCountry = CountryFromAddress(rec.WorkAddress)
	}
	if rec.ArabicWorkAddress == "" {
		rec.ArabicWorkAddress = rec.WorkAddress
	}
	if rec.HeadOfPeopleCulture == "" {
		rec.HeadOfPeopleCulture = DefaultHeadOfPeopleCulture
	}
	if rec.HeadOfPeopleCultureArabic == "" {
		rec.HeadOfPeopleCultureArabic = DefaultHeadOfPeopleCultureArabic
	}
	return &rec, nil
}
