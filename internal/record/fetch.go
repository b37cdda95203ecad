package record

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/prezlab/letter-generator/internal/odoo"
)

// Fetcher reads employee records and their enrichment fields from the
// record store. Primary lookups fail the request; secondary lookups degrade
// field by field.
type Fetcher struct {
	exec odoo.Executor
}

// NewFetcher wraps a store session (or a fake in tests).
func NewFetcher(exec odoo.Executor) *Fetcher {
	return &Fetcher{exec: exec}
}

// employeeFields are always read for the primary record; Arabic name
// aliases are appended when the schema carries them.
var employeeFields = []string{
	"id", "name", "job_title", "create_date",
	"identification_id", "company_id", "address_id", "department_id",
}

// ByIdentification resolves an employee by identification number and merges
// wage, contract end, company enrichment and work address into the returned
// raw record. A non-nil Notice reports an ambiguous match resolved by
// taking the first hit.
func (f *Fetcher) ByIdentification(ctx context.Context, identification string) (RawRecord, *Notice, error) {
	identification = strings.TrimSpace(identification)

	schema, err := f.employeeSchema(ctx)
	if err != nil {
		return nil, nil, err
	}
	if _, ok := schema["identification_id"]; !ok {
		return nil, nil, &SchemaError{Field: "identification_id"}
	}

	ids, err := f.searchEmployees(ctx, []interface{}{
		[]interface{}{"identification_id", "=", identification},
	})
	if err != nil {
		return nil, nil, err
	}
	if len(ids) == 0 {
		return nil, nil, &NotFoundError{Identification: identification}
	}

	fields := append([]string{}, employeeFields...)
	for _, alias := range ArabicNameAliases {
		if _, ok := schema[alias]; ok {
			fields = append(fields, alias)
		}
	}

	records, err := f.read(ctx, "hr.employee", ids, fields)
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, &NotFoundError{Identification: identification}
	}

	var notice *Notice
	if len(records) > 1 {
		names := make([]string, 0, len(records))
		for _, rec := range records {
			names = append(names, RawRecord(rec).String("name"))
		}
		notice = AmbiguousMatchNotice(names)
	}

	raw := RawRecord(records[0])
	f.mergeContract(ctx, raw)
	f.mergeCompanyEnrichment(ctx, raw)
	f.mergeWorkAddress(ctx, raw)
	return raw, notice, nil
}

func (f *Fetcher) employeeSchema(ctx context.Context) (map[string]interface{}, error) {
	reply, err := f.exec.ExecuteKw(ctx, "hr.employee", "fields_get", []interface{}{},
		map[string]interface{}{"attributes": []string{"type"}})
	if err != nil {
		return nil, err
	}
	schema, _ := reply.(map[string]interface{})
	return schema, nil
}

func (f *Fetcher) searchEmployees(ctx context.Context, domain []interface{}) ([]interface{}, error) {
	reply, err := f.exec.ExecuteKw(ctx, "hr.employee", "search", []interface{}{domain}, nil)
	if err != nil {
		return nil, err
	}
	ids, _ := reply.([]interface{})
	return ids, nil
}

func (f *Fetcher) read(ctx context.Context, model string, ids []interface{}, fields []string) ([]map[string]interface{}, error) {
	reply, err := f.exec.ExecuteKw(ctx, model, "read", []interface{}{ids},
		map[string]interface{}{"fields": fields})
	if err != nil {
		return nil, err
	}
	return asRecords(reply), nil
}

// mergeContract reads wage and contract end date. The operator's store user
// frequently lacks contract access; a fault degrades both values.
func (f *Fetcher) mergeContract(ctx context.Context, raw RawRecord) {
	employeeID := toInt64(raw["id"])
	reply, err := f.exec.ExecuteKw(ctx, "hr.contract", "search_read",
		[]interface{}{[]interface{}{[]interface{}{"employee_id", "=", employeeID}}},
		map[string]interface{}{"fields": []string{"wage", "date_end"}, "limit": 1})
	if err != nil {
		raw["wage"] = 0.0
		return
	}
	contracts := asRecords(reply)
	if len(contracts) == 0 {
		raw["wage"] = 0.0
		return
	}
	contract := RawRecord(contracts[0])
	raw["wage"] = toFloat64(contract["wage"])
	raw["contract_end_date"] = contract.String("date_end")
}

// mergeCompanyEnrichment resolves registrar, Arabic company name and the
// head of people & culture. The lookups are independent reads of one
// company, so they run concurrently; each failure degrades only its field.
func (f *Fetcher) mergeCompanyEnrichment(ctx context.Context, raw RawRecord) {
	company := DecodeRelation(raw["company_id"])
	if company.Kind != RelationRef || company.ID == 0 {
		return
	}

	var registrar, arabicName, head, headArabic string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		registrar = f.companyField(gctx, company.ID, "company_registry")
		return gctx.Err()
	})
	g.Go(func() error {
		arabicName = f.companyField(gctx, company.ID, "arabic_name")
		return gctx.Err()
	})
	g.Go(func() error {
		head, headArabic = f.headOfPeopleCulture(gctx, company.ID)
		return gctx.Err()
	})
	if err := g.Wait(); err != nil {
		return
	}

	raw["company_registrar"] = registrar
	raw["company_arabic_name"] = arabicName
	raw["head_of_people_culture"] = head
	raw["head_of_people_culture_arabic"] = headArabic
}

func (f *Fetcher) companyField(ctx context.Context, companyID int64, field string) string {
	records, err := f.read(ctx, "res.company", []interface{}{companyID}, []string{field})
	if err != nil || len(records) == 0 {
		return ""
	}
	return RawRecord(records[0]).String(field)
}

// headOfPeopleCulture finds the employee holding the role within the
// company by job-title search and returns both name forms.
func (f *Fetcher) headOfPeopleCulture(ctx context.Context, companyID int64) (name, arabicName string) {
	reply, err := f.exec.ExecuteKw(ctx, "hr.employee", "search", []interface{}{
		[]interface{}{
			[]interface{}{"company_id", "=", companyID},
			[]interface{}{"job_id.name", "ilike", "head of people and culture"},
		},
	}, nil)
	if err != nil {
		return "", ""
	}
	ids, _ := reply.([]interface{})
	if len(ids) == 0 {
		return "", ""
	}

	fields := append([]string{"name"}, ArabicNameAliases...)
	records, err := f.read(ctx, "hr.employee", ids[:1], fields)
	if err != nil || len(records) == 0 {
		// Retry with the bare name; the alias columns may not exist on
		// this store.
		records, err = f.read(ctx, "hr.employee", ids[:1], []string{"name"})
		if err != nil || len(records) == 0 {
			return "", ""
		}
	}
	rec := RawRecord(records[0])
	name = strings.TrimSpace(rec.String("name"))
	arabicName = FirstNonEmpty(rec, ArabicNameAliases, name)
	return name, arabicName
}

// mergeWorkAddress composes the work address from the employee's partner
// record and attempts its Arabic form as a separate degradable read.
func (f *Fetcher) mergeWorkAddress(ctx context.Context, raw RawRecord) {
	address := DecodeRelation(raw["address_id"])
	if address.Kind != RelationRef || address.ID == 0 {
		return
	}

	records, err := f.read(ctx, "res.partner", []interface{}{address.ID},
		[]string{"street", "street2", "city", "zip", "country_id"})
	if err != nil || len(records) == 0 {
		return
	}
	partner := RawRecord(records[0])

	parts := make([]string, 0, 5)
	for _, field := range []string{"street", "street2", "city", "zip"} {
		if v := partner.String(field); v != "" {
			parts = append(parts, v)
		}
	}
	if country := DecodeRelation(partner["country_id"]).Display(); country != "" {
		parts = append(parts, country)
	}
	raw["work_address"] = strings.Join(parts, ", ")

	if records, err := f.read(ctx, "res.partner", []interface{}{address.ID}, ArabicAddressAliases); err == nil && len(records) > 0 {
		raw["arabic_work_address"] = FirstNonEmpty(RawRecord(records[0]), ArabicAddressAliases, "")
	}
}

func asRecords(v interface{}) []map[string]interface{} {
	items, _ := v.([]interface{})
	out := make([]map[string]interface{}, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]interface{}); ok {
			out = append(out, m)
		}
	}
	return out
}
