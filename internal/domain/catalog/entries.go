// Package catalog holds the imported reference catalogs (pesticides,
// fertilizers, cultivars, seed treatments, application calendar) and the
// name matching used to pick products from them.
package catalog

import (
	"sort"
	"strings"
	"time"
)

// Pesticide is one row of the ERP pesticide catalog.
type Pesticide struct {
	ID               uint
	Code             string
	Item             string
	Group            string
	Brand            string
	ActiveIngredient string
	Balance          float64
	UpdatedAt        time.Time
}

func (p *Pesticide) Validate() error {
	if strings.TrimSpace(p.Code) == "" {
		return ErrCodeRequired
	}
	if strings.TrimSpace(p.Item) == "" {
		return ErrItemRequired
	}
	return nil
}

type Fertilizer struct {
	ID               uint
	Code             string
	Item             string
	Brand            string
	ActiveIngredient string
	Balance          float64
	UpdatedAt        time.Time
}

func (f *Fertilizer) Validate() error {
	if strings.TrimSpace(f.Code) == "" {
		return ErrCodeRequired
	}
	if strings.TrimSpace(f.Item) == "" {
		return ErrItemRequired
	}
	return nil
}

type Cultivar struct {
	ID             uint
	Name           string
	Crop           string
	ScientificName string
}

// SeedTreatment is an industrial seed treatment offered for some cultivars.
type SeedTreatment struct {
	ID        uint
	Name      string
	Crop      string
	Active    bool
	Cultivars []string
}

// AppliesTo reports whether the treatment is offered for the cultivar.
// A treatment with no cultivar list applies to every cultivar of its crop.
func (t *SeedTreatment) AppliesTo(cultivar string) bool {
	if len(t.Cultivars) == 0 {
		return true
	}
	for _, c := range t.Cultivars {
		if SameProduct(c, cultivar) {
			return true
		}
	}
	return false
}

// CalendarApplication is one (class, application) pair of the spraying calendar.
type CalendarApplication struct {
	ID                     uint
	ApplicationCode        string
	ApplicationDescription string
	ClassCode              string
	ClassDescription       string
}

// Calendar groups calendar rows by class for the picklists.
type Calendar struct {
	Classes             []string            `json:"classes"`
	ApplicationsByClass map[string][]string `json:"aplicacoesPorClasse"`
}

// BuildCalendar groups entries by class description. Classes and
// applications are sorted; duplicates that differ only in accents or case
// are collapsed to their first spelling.
func BuildCalendar(entries []CalendarApplication) Calendar {
	cal := Calendar{ApplicationsByClass: make(map[string][]string)}
	classSeen := make(map[string]string)
	appSeen := make(map[string]map[string]bool)

	for _, e := range entries {
		cls := strings.TrimSpace(e.ClassDescription)
		app := strings.TrimSpace(e.ApplicationDescription)
		if cls == "" {
			continue
		}
		key := Normalize(cls)
		name, ok := classSeen[key]
		if !ok {
			name = cls
			classSeen[key] = cls
			cal.Classes = append(cal.Classes, cls)
			appSeen[key] = make(map[string]bool)
			cal.ApplicationsByClass[cls] = []string{}
		}
		if app != "" && !appSeen[key][Normalize(app)] {
			appSeen[key][Normalize(app)] = true
			cal.ApplicationsByClass[name] = append(cal.ApplicationsByClass[name], app)
		}
	}

	sort.Strings(cal.Classes)
	for _, apps := range cal.ApplicationsByClass {
		sort.Strings(apps)
	}
	return cal
}

type FertilizationJustification struct {
	ID          uint
	Description string
	Active      bool
}

// ImportKind names the catalog a bulk import wrote to.
type ImportKind string

const (
	ImportPesticides  ImportKind = "defensivos"
	ImportFertilizers ImportKind = "fertilizantes"
	ImportCalendar    ImportKind = "calendario"
)

// ImportRecord is the audit row written after every bulk import or sync.
type ImportRecord struct {
	ID         uint
	Kind       ImportKind
	Source     string
	Received   int
	Inserted   int
	Updated    int
	Skipped    int
	ImportedBy uint
	CreatedAt  time.Time
}

// UpsertResult counts the outcome of a bulk upsert.
type UpsertResult struct {
	Inserted int
	Updated  int
}
