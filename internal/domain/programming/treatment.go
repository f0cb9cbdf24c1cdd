package programming

import (
	"fmt"
	"strings"

	"agroplan/internal/domain/catalog"
)

type TreatmentKind string

const (
	TreatmentNone       TreatmentKind = "NAO"
	TreatmentOnFarm     TreatmentKind = "NA FAZENDA"
	TreatmentIndustrial TreatmentKind = "INDUSTRIAL"
)

// ParseTreatmentKind accepts the form labels ("NÃO", "NA FAZENDA",
// "INDUSTRIAL") in any case or accentuation.
func ParseTreatmentKind(s string) (TreatmentKind, error) {
	switch catalog.Normalize(s) {
	case "NAO", "NONE", "":
		return TreatmentNone, nil
	case "NA FAZENDA", "ON_FARM", "ON FARM":
		return TreatmentOnFarm, nil
	case "INDUSTRIAL":
		return TreatmentIndustrial, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTreatmentKind, strings.TrimSpace(s))
}

// Treatment is the seed treatment of a cultivar line. Exactly one of
// NoTreatment, OnFarmTreatment or IndustrialTreatment.
type Treatment interface {
	Kind() TreatmentKind
	Validate() error
	clone() Treatment
}

type NoTreatment struct{}

func (NoTreatment) Kind() TreatmentKind { return TreatmentNone }
func (NoTreatment) Validate() error     { return nil }
func (t NoTreatment) clone() Treatment  { return t }

// OnFarmTreatment is applied on the farm with the listed pesticides.
type OnFarmTreatment struct {
	Pesticides []PesticideLine
}

func (OnFarmTreatment) Kind() TreatmentKind { return TreatmentOnFarm }

func (t OnFarmTreatment) Validate() error {
	if len(t.Pesticides) == 0 {
		return ErrOnFarmWithoutPesticides
	}
	for i, p := range t.Pesticides {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("treatment pesticide %d: %w", i+1, err)
		}
	}
	return nil
}

func (t OnFarmTreatment) clone() Treatment {
	return OnFarmTreatment{Pesticides: append([]PesticideLine(nil), t.Pesticides...)}
}

// IndustrialTreatment references catalog seed treatments applied before delivery.
type IndustrialTreatment struct {
	TreatmentIDs []uint
}

func (IndustrialTreatment) Kind() TreatmentKind { return TreatmentIndustrial }

func (t IndustrialTreatment) Validate() error {
	if len(t.TreatmentIDs) == 0 {
		return ErrIndustrialWithoutTreatments
	}
	return nil
}

func (t IndustrialTreatment) clone() Treatment {
	return IndustrialTreatment{TreatmentIDs: append([]uint(nil), t.TreatmentIDs...)}
}
