package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_CatalogShape(t *testing.T) {
	reg := Default()
	require.Equal(t, 6, reg.Len())

	names := make([]string, 0, reg.Len())
	for _, s := range reg.Schemas() {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{
		"Resort_Details", "Villas_Rooms", "Meal_Plans",
		"Transfers", "Packages", "Room_Rates",
	}, names)
}

func TestDefault_HeaderLines(t *testing.T) {
	reg := Default()
	mp, ok := reg.Lookup("Meal_Plans")
	require.True(t, ok)
	assert.Equal(t,
		"Resort Name,Meal Plan,Cost for Adult,Cost for Child,Meal Plan Inclusion Details,If Included in a Package",
		mp.HeaderLine())

	for _, s := range reg.Schemas() {
		assert.NotEmpty(t, s.Instructions, s.Name)
		assert.Equal(t, "Resort Name", s.Headers[0], s.Name)
		assert.False(t, strings.Contains(s.HeaderLine(), ",,"), s.Name)
	}
}

func TestLookup_UnknownName(t *testing.T) {
	_, ok := Default().Lookup("Nope")
	assert.False(t, ok)
}

func TestNewRegistry_Validation(t *testing.T) {
	tests := []struct {
		name    string
		schemas []ArtifactSchema
	}{
		{"empty catalog", nil},
		{"missing name", []ArtifactSchema{{Headers: []string{"A"}}}},
		{"missing headers", []ArtifactSchema{{Name: "X"}}},
		{"duplicate name", []ArtifactSchema{
			{Name: "X", Headers: []string{"A"}},
			{Name: "X", Headers: []string{"B"}},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegistry(tt.schemas)
			assert.Error(t, err)
		})
	}
}

func TestNewRegistry_PreservesOrder(t *testing.T) {
	reg, err := NewRegistry([]ArtifactSchema{
		{Name: "B", Headers: []string{"h"}},
		{Name: "A", Headers: []string{"h"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "B", reg.Schemas()[0].Name)
	assert.Equal(t, "A", reg.Schemas()[1].Name)
}
