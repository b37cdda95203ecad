package letters

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prezlab/letter-generator/internal/record"
)

// stubExecutor answers record-store calls for the service path tests.
type stubExecutor struct {
	handle func(model, method string, args []interface{}, kw map[string]interface{}) (interface{}, error)
}

func (s *stubExecutor) ExecuteKw(_ context.Context, model, method string, args []interface{}, kw map[string]interface{}) (interface{}, error) {
	return s.handle(model, method, args, kw)
}

func minimalStore() *stubExecutor {
	return &stubExecutor{handle: func(model, method string, args []interface{}, kw map[string]interface{}) (interface{}, error) {
		switch {
		case model == "hr.employee" && method == "fields_get":
			return map[string]interface{}{
				"identification_id": map[string]interface{}{"type": "char"},
			}, nil
		case model == "hr.employee" && method == "search":
			domain, _ := args[0].([]interface{})
			if len(domain) > 1 {
				return []interface{}{}, nil
			}
			return []interface{}{int64(11)}, nil
		case model == "hr.employee" && method == "read":
			return []interface{}{map[string]interface{}{
				"id":         int64(11),
				"name":       "Jane Doe",
				"job_title":  "Engineer",
				"company_id": []interface{}{int64(5), "Acme"},
			}}, nil
		case model == "hr.contract" && method == "search_read":
			return []interface{}{}, nil
		case model == "res.company" && method == "read":
			return []interface{}{map[string]interface{}{}}, nil
		}
		return nil, fmt.Errorf("unexpected call %s.%s", model, method)
	}}
}

func serviceFixture(t *testing.T, tplKey string, body string) *Service {
	t.Helper()
	dir := t.TempDir()
	tpl, err := LookupTemplate(tplKey)
	require.NoError(t, err)
	writeTemplate(t, dir, tpl.File, buildDocx(t, map[string]string{
		"word/document.xml": docXML(body),
	}))
	return NewService(record.NewFetcher(minimalStore()), NewGenerator(dir), nil)
}

func TestService_GenerateFromStore(t *testing.T) {
	svc := serviceFixture(t, "employment", para("(First and Last Name), (Position) at (Company)"))

	res, err := svc.Generate(context.Background(), Request{
		TemplateKey: "employment",
		EmployeeID:  "E-100",
	})
	require.NoError(t, err)
	assert.Nil(t, res.Notice)
	assert.Equal(t, "Employment_Letter_Jane_Doe.docx", res.Filename)
	assert.Equal(t, "Jane Doe", res.Record.FullName)
	assert.Equal(t, []string{"Jane Doe, Engineer at Acme"}, bodyTexts(t, res.Bytes))
}

func TestService_OfflineRecordSkipsStore(t *testing.T) {
	dir := t.TempDir()
	tpl, err := LookupTemplate("employment")
	require.NoError(t, err)
	writeTemplate(t, dir, tpl.File, buildDocx(t, map[string]string{
		"word/document.xml": docXML(para("(First and Last Name)")),
	}))
	svc := NewService(nil, NewGenerator(dir), nil)

	res, err := svc.Generate(context.Background(), Request{
		TemplateKey: "employment",
		Record:      &record.Canonical{FullName: "Jane Doe", Country: "France"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Jane Doe"}, bodyTexts(t, res.Bytes))
	// A non-travel template leaves the offline record's fields alone.
	assert.Equal(t, "France", res.Record.Country)
}

func TestService_TravelExtrasOnlyForTravelTemplates(t *testing.T) {
	dir := t.TempDir()
	for _, key := range []string{"embassy", "employment"} {
		tpl, err := LookupTemplate(key)
		require.NoError(t, err)
		writeTemplate(t, dir, tpl.File, buildDocx(t, map[string]string{
			"word/document.xml": docXML(para("To: (Country) from (Start Date)")),
		}))
	}
	svc := NewService(nil, NewGenerator(dir), nil)
	extras := record.Extras{Country: "France", StartDate: "2024-03-01", EndDate: "2024-03-15"}

	res, err := svc.Generate(context.Background(), Request{
		TemplateKey: "embassy",
		Record:      &record.Canonical{FullName: "Jane Doe"},
		Extras:      extras,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"To: France from 01/03/2024"}, bodyTexts(t, res.Bytes))
	assert.Equal(t, "15/03/2024", res.Record.EndDate)

	res, err = svc.Generate(context.Background(), Request{
		TemplateKey: "employment",
		Record:      &record.Canonical{FullName: "Jane Doe"},
		Extras:      extras,
	})
	require.NoError(t, err)
	assert.Equal(t, "", res.Record.Country, "non-travel templates ignore travel extras")
}

func TestService_UnknownTemplate(t *testing.T) {
	svc := NewService(nil, NewGenerator(t.TempDir()), nil)
	_, err := svc.Generate(context.Background(), Request{TemplateKey: "severance"})
	var unknown *UnknownTemplateError
	require.ErrorAs(t, err, &unknown)
}

func TestService_NoStoreAndNoRecord(t *testing.T) {
	svc := NewService(nil, NewGenerator(t.TempDir()), nil)
	_, err := svc.Generate(context.Background(), Request{TemplateKey: "employment", EmployeeID: "E-100"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no record store configured")
}

func TestService_Templates(t *testing.T) {
	svc := NewService(nil, NewGenerator(t.TempDir()), nil)
	assert.Len(t, svc.Templates(), 4)
}
