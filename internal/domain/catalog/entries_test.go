package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildCalendar(t *testing.T) {
	cal := BuildCalendar([]CalendarApplication{
		{ApplicationDescription: "PÓS EMERGENTE", ClassDescription: "HERBICIDA"},
		{ApplicationDescription: "DESSECAÇÃO", ClassDescription: "HERBICIDA"},
		{ApplicationDescription: "Dessecacao", ClassDescription: "herbicida"},
		{ApplicationDescription: "FERRUGEM", ClassDescription: "FUNGICIDA"},
		{ApplicationDescription: "", ClassDescription: "OUTROS"},
		{ApplicationDescription: "ignored", ClassDescription: " "},
	})

	assert.Equal(t, []string{"FUNGICIDA", "HERBICIDA", "OUTROS"}, cal.Classes)
	assert.Equal(t, []string{"DESSECAÇÃO", "PÓS EMERGENTE"}, cal.ApplicationsByClass["HERBICIDA"])
	assert.Empty(t, cal.ApplicationsByClass["OUTROS"])
}

func TestSeedTreatment_AppliesTo(t *testing.T) {
	open := SeedTreatment{Name: "CRUISER", Crop: "SOJA"}
	assert.True(t, open.AppliesTo("BRASMAX OLIMPO"))

	restricted := SeedTreatment{Name: "STANDAK", Cultivars: []string{"BRASMAX OLIMPO", "NS 7709"}}
	assert.True(t, restricted.AppliesTo("brasmax olimpo"))
	assert.False(t, restricted.AppliesTo("M 8220"))
}

func TestPesticide_Validate(t *testing.T) {
	assert.ErrorIs(t, (&Pesticide{Item: "X"}).Validate(), ErrCodeRequired)
	assert.ErrorIs(t, (&Pesticide{Code: "1"}).Validate(), ErrItemRequired)
	assert.NoError(t, (&Pesticide{Code: "1", Item: "X"}).Validate())
}
