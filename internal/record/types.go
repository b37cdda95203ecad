// Package record fetches employee records from the HR store and normalizes
// them into the flat canonical form consumed by letter templating.
package record

import "strings"

// RawRecord is the unvalidated field map delivered by the HR store. Values
// may be strings, numbers, relation tuples, booleans (the store encodes an
// empty field as false) or missing entirely; nothing about its shape is
// guaranteed, so every access probes presence and type first.
type RawRecord map[string]interface{}

// String returns the trimmed string value of a field, or "" when the field
// is absent or not a string.
func (r RawRecord) String(key string) string {
	v, ok := r[key]
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// Canonical is the normalized flat record. Every field is always present;
// unavailable values are empty strings, never omitted, so the substitution
// engine can index any field without a presence check.
type Canonical struct {
	ID                        string  `json:"id"`
	FullName                  string  `json:"full_name"`
	FirstName                 string  `json:"first_name"`
	JobTitle                  string  `json:"job_title"`
	Identification            string  `json:"identification"`
	Wage                      float64 `json:"wage"`
	JoiningDate               string  `json:"joining_date"`
	ContractEndDate           string  `json:"contract_end_date"`
	Department                string  `json:"department"`
	ArabicName                string  `json:"arabic_name"`
	Company                   string  `json:"company"`
	CompanyRegistrar          string  `json:"company_registrar"`
	CompanyCountry            string  `json:"company_country"`
	CompanyArabicName         string  `json:"company_arabic_name"`
	HeadOfPeopleCulture       string  `json:"head_of_people_culture"`
	HeadOfPeopleCultureArabic string  `json:"head_of_people_culture_arabic"`
	WorkAddress               string  `json:"work_address"`
	ArabicWorkAddress         string  `json:"arabic_work_address"`

	// Travel fields supplied by the caller for embassy letters.
	Country   string `json:"country"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// Extras carries the caller-supplied travel fields merged into the
// canonical record during normalization.
type Extras struct {
	Country   string
	StartDate string
	EndDate   string
}
