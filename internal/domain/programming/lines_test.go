package programming

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pesticide(class, product string, dose, coverage float64) PesticideLine {
	return PesticideLine{
		Class:       class,
		Application: "1ª aplicação",
		Product:     product,
		Dose:        dose,
		Unit:        "L/ha",
		CoveragePct: coverage,
		Billable:    true,
	}
}

func TestPesticideLine_Total(t *testing.T) {
	l := pesticide("FUNGICIDA", "FOX XPRO", 0.5, 50)

	assert.InDelta(t, 25.0, l.Total(100), 1e-9)
	assert.Equal(t, 0.0, l.Total(math.NaN()))
}

func TestPesticideLine_Validate(t *testing.T) {
	tests := []struct {
		name    string
		line    PesticideLine
		wantErr error
	}{
		{"valid", pesticide("FUNGICIDA", "FOX XPRO", 0.5, 100), nil},
		{"no product", pesticide("FUNGICIDA", " ", 0.5, 100), ErrProductRequired},
		{"zero dose", pesticide("FUNGICIDA", "FOX XPRO", 0, 100), ErrInvalidDose},
		{"infinite dose", pesticide("FUNGICIDA", "FOX XPRO", math.Inf(1), 100), ErrInvalidDose},
		{"coverage above 100", pesticide("FUNGICIDA", "FOX XPRO", 1, 120), ErrLineCoverageOutOfRange},
		{"saved percent out of range", func() PesticideLine {
			l := pesticide("FUNGICIDA", "FOX XPRO", 1, 100)
			l.SavedPercent = 101
			return l
		}(), ErrInvalidSavedPercent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.line.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCultivarLine_Treatment(t *testing.T) {
	tests := []struct {
		name      string
		treatment Treatment
		wantErr   error
	}{
		{"none", NoTreatment{}, nil},
		{"on farm", OnFarmTreatment{Pesticides: []PesticideLine{pesticide("TS", "STANDAK TOP", 0.2, 100)}}, nil},
		{"on farm without products", OnFarmTreatment{}, ErrOnFarmWithoutPesticides},
		{"on farm with invalid product", OnFarmTreatment{Pesticides: []PesticideLine{pesticide("TS", "", 0.2, 100)}}, ErrProductRequired},
		{"industrial", IndustrialTreatment{TreatmentIDs: []uint{3}}, nil},
		{"industrial without ids", IndustrialTreatment{}, ErrIndustrialWithoutTreatments},
		{"missing", nil, ErrTreatmentRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := cultivar("BRS 1010", 100)
			l.Treatment = tt.treatment

			err := l.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCultivarLine_CoverageRange(t *testing.T) {
	tests := []struct {
		coverage float64
		wantErr  bool
	}{
		{0, true},
		{0.5, true},
		{1, false},
		{100, false},
		{100.5, true},
	}

	for _, tt := range tests {
		l := cultivar("BRS 1010", tt.coverage)
		err := l.Validate()
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrLineCoverageOutOfRange, "coverage %v", tt.coverage)
		} else {
			assert.NoError(t, err, "coverage %v", tt.coverage)
		}
	}
}

func TestCultivarLine_CloneTreatment(t *testing.T) {
	l := cultivar("BRS 1010", 100)
	l.Treatment = IndustrialTreatment{TreatmentIDs: []uint{1, 2}}

	c := l.clone()
	c.Treatment.(IndustrialTreatment).TreatmentIDs[0] = 99

	assert.Equal(t, uint(1), l.Treatment.(IndustrialTreatment).TreatmentIDs[0])
}

func TestCultivarLine_SeedBags(t *testing.T) {
	l := cultivar("BRS 1010", 50)

	// 300k seeds/ha over 50 ha = 15M seeds = 3 bags of 5M
	assert.InDelta(t, 3.0, l.SeedBags(100), 1e-9)
	assert.InDelta(t, 50.0, l.PlantedArea(100), 1e-9)

	l.SeedsPerBag = 0
	assert.Equal(t, 0.0, l.SeedBags(100))
}

func TestFertilizationLine_Validate(t *testing.T) {
	withFormulation := NewFertilizationOptOut(2)
	withFormulation.Formulation = "MAP"

	tests := []struct {
		name    string
		line    FertilizationLine
		wantErr error
	}{
		{"valid", fertilizer("MAP", 150, 100), nil},
		{"opt out", NewFertilizationOptOut(2), nil},
		{"opt out with formulation", withFormulation, ErrFormulationWithJustification},
		{"no formulation", fertilizer("", 150, 100), ErrFormulationRequired},
		{"zero dose", fertilizer("MAP", 0, 100), ErrInvalidDose},
		{"zero coverage", fertilizer("MAP", 150, 0), ErrLineCoverageOutOfRange},
		{"coverage below one percent", fertilizer("MAP", 150, 0.5), ErrLineCoverageOutOfRange},
		{"one percent coverage", fertilizer("MAP", 150, 1), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.line.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFertilizationLine_Total(t *testing.T) {
	assert.InDelta(t, 9000.0, fertilizer("MAP", 150, 60).Total(100), 1e-9)
}

func TestParseTreatmentKind(t *testing.T) {
	tests := []struct {
		in      string
		want    TreatmentKind
		wantErr bool
	}{
		{"NÃO", TreatmentNone, false},
		{"", TreatmentNone, false},
		{"na fazenda", TreatmentOnFarm, false},
		{"Industrial", TreatmentIndustrial, false},
		{"terceirizado", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTreatmentKind(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTreatmentKind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
