package record

import (
	"strings"
	"time"
)

// ArabicNameAliases is the ordered fallback chain of fields that may hold
// an employee's Arabic name. The store's schema grew these over time, so the
// chain is data, not code: the first non-empty alias wins.
var ArabicNameAliases = []string{
	"x_studio_employee_arabic_name",
	"x_studio_arabic_name",
	"arabic_name",
}

// ArabicAddressAliases is the fallback chain for the Arabic form of a work
// address on the partner record.
var ArabicAddressAliases = []string{
	"x_studio_arabic_address",
	"arabic_street",
}

// Fallback values for the head of people & culture when no employee holds
// the role. A business default, not an error.
const (
	DefaultHeadOfPeopleCulture       = "People & Culture Department"
	DefaultHeadOfPeopleCultureArabic = "قسم الأفراد والثقافة"
)

// FirstName returns the first whitespace-delimited token of a full name,
// or "" for an empty name.
func FirstName(fullName string) string {
	fields := strings.Fields(fullName)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// FirstNonEmpty walks an alias chain over a raw record and returns the
// first non-empty trimmed value, or the fallback when every alias is empty.
func FirstNonEmpty(raw RawRecord, aliases []string, fallback string) string {
	for _, alias := range aliases {
		if v := strings.TrimSpace(raw.String(alias)); v != "" {
			return v
		}
	}
	return fallback
}

// NormalizeDate reformats a YYYY-MM-DD date (optionally followed by a
// time-of-day after a space) to DD/MM/YYYY. Unparseable input passes
// through unchanged; downstream consumers tolerate a raw date string.
func NormalizeDate(s string) string {
	if s == "" {
		return ""
	}
	datePart := s
	if i := strings.IndexByte(s, ' '); i >= 0 {
		datePart = s[:i]
	}
	t, err := time.Parse("2006-01-02", datePart)
	if err != nil {
		return s
	}
	return t.Format("02/01/2006")
}

// CountryFromAddress takes the last non-empty segment of a composed address
// as the country: lines when the address is multi-line, comma-separated
// parts otherwise. A heuristic, not a registry lookup.
func CountryFromAddress(address string) string {
	if address == "" {
		return ""
	}
	sep := ","
	if strings.Contains(address, "\n") {
		sep = "\n"
	}
	last := ""
	for _, part := range strings.Split(address, sep) {
		if p := strings.TrimSpace(part); p != "" {
			last = p
		}
	}
	return last
}

// Normalize derives the canonical record from a raw employee record plus
// caller-supplied travel extras. It never fails for missing optional fields;
// each degrades to its fallback. The only failure is a record with no
// identity at all.
//
// The raw record is expected to carry the store's employee fields plus the
// flat enrichment fields merged in by the fetcher (wage, contract end,
// company registrar and so on); joining date is the record creation date,
// the only hire-date signal the store's schema carries.
func Normalize(raw RawRecord, extras Extras) (*Canonical, error) {
	fullName := strings.TrimSpace(raw.String("name"))
	id := DecodeRelation(raw["id"]).Display()
	if fullName == "" && id == "" {
		return nil, &IncompleteError{}
	}

	workAddress := raw.String("work_address")
	company := DecodeRelation(raw["company_id"]).Display()

	companyArabic := strings.TrimSpace(raw.String("company_arabic_name"))
	if companyArabic == "" {
		companyArabic = company
	}

	headPC := strings.TrimSpace(raw.String("head_of_people_culture"))
	headPCArabic := strings.TrimSpace(raw.String("head_of_people_culture_arabic"))
	if headPC == "" {
		headPC = DefaultHeadOfPeopleCulture
	}
	if headPCArabic == "" {
		headPCArabic = DefaultHeadOfPeopleCultureArabic
	}

	arabicAddress := strings.TrimSpace(raw.String("arabic_work_address"))
	if arabicAddress == "" {
		arabicAddress = workAddress
	}

	wage := toFloat64(raw["wage"])

	return &Canonical{
		ID:                        id,
		FullName:                  fullName,
		FirstName:                 FirstName(fullName),
		JobTitle:                  strings.TrimSpace(raw.String("job_title")),
		Identification:            strings.TrimSpace(raw.String("identification_id")),
		Wage:                      wage,
		JoiningDate:               NormalizeDate(raw.String("create_date")),
		ContractEndDate:           NormalizeDate(raw.String("contract_end_date")),
		Department:                DecodeRelation(raw["department_id"]).Display(),
		ArabicName:                FirstNonEmpty(raw, ArabicNameAliases, fullName),
		Company:                   company,
		CompanyRegistrar:          raw.String("company_registrar"),
		CompanyCountry:            CountryFromAddress(workAddress),
		CompanyArabicName:         companyArabic,
		HeadOfPeopleCulture:       headPC,
		HeadOfPeopleCultureArabic: headPCArabic,
		WorkAddress:               workAddress,
		ArabicWorkAddress:         arabicAddress,
		Country:                   strings.TrimSpace(extras.Country),
		StartDate:                 NormalizeDate(extras.StartDate),
		EndDate:                   NormalizeDate(extras.EndDate),
	}, nil
}
