package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"herbicida", "HERBICIDA"},
		{"  Fungicida   Foliar ", "FUNGICIDA FOLIAR"},
		{"Adubação de Cobertura", "ADUBACAO DE COBERTURA"},
		{"Época\tÚnica", "EPOCA UNICA"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalizeWithoutPlural(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"HERBICIDAS", "HERBICIDA"},
		{"herbicida", "HERBICIDA"},
		{"Inseticidas ", "INSETICIDA"},
		// accent counts toward the length: known false positive
		{"GÁS", "GA"},
		{"GAS", "GAS"},
		{"TS", "TS"},
		{"ÓLEOS", "OLEO"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeWithoutPlural(tt.input))
		})
	}
}

func TestNormalizeProductName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"ROUNDUP ORIGINAL DI 20LT", "ROUNDUP ORIGINAL DI"},
		{"Roundup Original DI - 20 LT", "ROUNDUP ORIGINAL DI"},
		{"UREIA - BIG BAG", "UREIA"},
		{"KCL SACAS 50 KG", "KCL"},
		{"ELATUS 1 KILO", "ELATUS"},
		{"PRIORI XTRA 5 LITROS", "PRIORI XTRA"},
		{"MAP 11-52-00", "MAP 11-52-00"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeProductName(tt.input))
		})
	}
}

func TestSameProduct(t *testing.T) {
	assert.True(t, SameProduct("Roundup Original DI 20LT", "ROUNDUP ORIGINAL DI - 5 LT"))
	assert.True(t, SameProduct("Fungicidas", "fungicida"))
	assert.False(t, SameProduct("ELATUS", "PRIORI XTRA"))
	assert.False(t, SameProduct("", ""))
}
