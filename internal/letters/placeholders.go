// Package letters builds placeholder tables from canonical records and
// fills letter templates with them.
package letters

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/prezlab/letter-generator/internal/record"
)

// Pair is one placeholder token and its resolved replacement value.
type Pair struct {
	Token string
	Value string
}

// Options controls placeholder resolution for one generation run.
type Options struct {
	// Now is the generation timestamp resolved into (Current Date).
	Now time.Time
	// Arabic selects the Arabic name for the Arabic full-name token;
	// otherwise the Latin name fills both scripts.
	Arabic bool
}

// BuildPlaceholders resolves the full bilingual vocabulary against a
// canonical record. The result is ordered longest-token-first so that no
// future token that contains another as a substring can be corrupted by a
// partial replacement.
func BuildPlaceholders(rec *record.Canonical, opts Options) []Pair {
	arabicFullName := rec.FullName
	if opts.Arabic && rec.ArabicName != "" {
		arabicFullName = rec.ArabicName
	}

	pairs := []Pair{
		{"(Current Date)", opts.Now.Format("02/01/2006")},
		{"(First and Last Name)", rec.FullName},
		{"(First Name)", rec.FirstName},
		{"(Position)", rec.JobTitle},
		{"(Salary)", FormatWage(rec.Wage)},
		{"(DD/MM/YYYY)", rec.JoiningDate},
		{"(Country)", rec.Country},
		{"(Start Date)", rec.StartDate},
		{"(End Date)", rec.EndDate},
		{"(Company)", rec.Company},
		{"(Work address)", rec.WorkAddress},
		{"(Work Address)", rec.WorkAddress},
		{"(Arabic Work address)", rec.ArabicWorkAddress},
		{"(CR)", rec.CompanyRegistrar},
		{"(Company Country)", rec.CompanyCountry},
		{"(CompanyA)", rec.CompanyArabicName},
		{"(P&C)", rec.HeadOfPeopleCulture},
		{"(AP&C)", rec.HeadOfPeopleCultureArabic},
		{"(Contract End Date)", rec.ContractEndDate},
		{"(Department)", rec.Department},
		{"(الاسم الكامل)", arabicFullName},
		{"(بلد الوجهة)", rec.Country},
		{"(تاريخ البداية)", rec.StartDate},
		{"(تاريخ النهاية)", rec.EndDate},
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		return len(pairs[i].Token) > len(pairs[j].Token)
	})
	return pairs
}

// FormatWage renders the numeric wage for substitution. Whole amounts drop
// the fractional part; fractional amounts keep their precision.
func FormatWage(wage float64) string {
	return strconv.FormatFloat(wage, 'f', -1, 64)
}

// OverlappingTokens reports every token that appears as a substring of
// another token in the table. The current vocabulary has none; the check
// guards vocabulary growth and backs the longest-first iteration order.
func OverlappingTokens(pairs []Pair) []string {
	var out []string
	for i, a := range pairs {
		for j, b := range pairs {
			if i != j && a.Token != b.Token && strings.Contains(b.Token, a.Token) {
				out = append(out, a.Token)
				break
			}
		}
	}
	return out
}
