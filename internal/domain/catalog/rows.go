package catalog

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Row is one loosely-typed row from a spreadsheet import or the ERP feed.
// Column names vary between sources, so every field has a list of aliases.
type Row map[string]any

var (
	codeKeys             = []string{"cod_item", "COD_ITEM", "CODITEM", "COD ITEM", "COD. ITEM", "COD.ITEM", "COD", "codigo"}
	itemKeys             = []string{"item", "ITEM"}
	groupKeys            = []string{"grupo", "GRUPO"}
	brandKeys            = []string{"marca", "MARCA"}
	activeKeys           = []string{"principio_ativo", "PRINCIPIO_ATIVO", "PRINCIPIO ATIVO", "PRINCÍPIO ATIVO"}
	balanceKeys          = []string{"saldo", "SALDO"}
	applicationCodeKeys  = []string{"cod_aplic", "Cód. aplic.", "COD_APLIC"}
	applicationDescrKeys = []string{"descr_aplicacao", "Descr. aplicação", "DESCR_APLICACAO"}
	classCodeKeys        = []string{"cod_classe", "Cód. classe", "COD_CLASSE"}
	classDescrKeys       = []string{"descricao_classe", "Descrição classe", "DESCRICAO_CLASSE"}
)

// String returns the first non-empty alias as trimmed text.
func (r Row) String(keys ...string) string {
	for _, k := range keys {
		v, ok := r[k]
		if !ok || v == nil {
			continue
		}
		var s string
		switch val := v.(type) {
		case string:
			s = val
		case json.Number:
			s = val.String()
		case float64:
			s = strconv.FormatFloat(val, 'f', -1, 64)
		default:
			s = fmt.Sprint(val)
		}
		if s = strings.TrimSpace(s); s != "" {
			return s
		}
	}
	return ""
}

// Float parses the first non-empty alias. Decimal commas are accepted.
// Unparseable values read as 0.
func (r Row) Float(keys ...string) float64 {
	s := r.String(keys...)
	if s == "" {
		return 0
	}
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// PesticideFromRow maps an import row to a catalog entry. Rows without a
// code are skipped.
func PesticideFromRow(r Row) (*Pesticide, bool) {
	p := &Pesticide{
		Code:             r.String(codeKeys...),
		Item:             NormalizeProductName(r.String(itemKeys...)),
		Group:            strings.ToUpper(r.String(groupKeys...)),
		Brand:            strings.ToUpper(r.String(brandKeys...)),
		ActiveIngredient: strings.ToUpper(r.String(activeKeys...)),
		Balance:          r.Float(balanceKeys...),
	}
	if p.Code == "" {
		return nil, false
	}
	if p.Item == "" {
		p.Item = p.Code
	}
	return p, true
}

func FertilizerFromRow(r Row) (*Fertilizer, bool) {
	f := &Fertilizer{
		Code:             r.String(codeKeys...),
		Item:             NormalizeProductName(r.String(itemKeys...)),
		Brand:            strings.ToUpper(r.String(brandKeys...)),
		ActiveIngredient: strings.ToUpper(r.String(activeKeys...)),
		Balance:          r.Float(balanceKeys...),
	}
	if f.Code == "" {
		return nil, false
	}
	if f.Item == "" {
		f.Item = f.Code
	}
	return f, true
}

// CalendarFromRows maps calendar rows, skipping rows without an application
// code or description. A repeated application code keeps its last row.
func CalendarFromRows(rows []Row) ([]CalendarApplication, int) {
	byCode := make(map[string]int)
	var out []CalendarApplication
	skipped := 0

	for _, r := range rows {
		e := CalendarApplication{
			ApplicationCode:        r.String(applicationCodeKeys...),
			ApplicationDescription: r.String(applicationDescrKeys...),
			ClassCode:              r.String(classCodeKeys...),
			ClassDescription:       r.String(classDescrKeys...),
		}
		if e.ApplicationCode == "" || e.ApplicationDescription == "" {
			skipped++
			continue
		}
		if i, ok := byCode[e.ApplicationCode]; ok {
			out[i] = e
			skipped++
			continue
		}
		byCode[e.ApplicationCode] = len(out)
		out = append(out, e)
	}
	return out, skipped
}
