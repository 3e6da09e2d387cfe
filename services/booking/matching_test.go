package booking

import (
	"testing"

	"glowbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterMatchesSpecialtySubstring(t *testing.T) {
	svc := models.Service{Name: "Balayage Completo", Category: "hair"}
	roster := []models.Professional{
		{ID: "p1", Name: "Ana", Specialties: []string{"Balayage"}},
		{ID: "p2", Name: "Rosa", Specialties: []string{"Pedicure Spa"}},
	}

	filtered := NewDefaultMatchingService().FilterProfessionals(roster, svc)

	require.Len(t, filtered, 1)
	assert.Equal(t, "p1", filtered[0].ID)
}

func TestFilterMatchesCategoryKeywords(t *testing.T) {
	// "Keratina" is not a substring of the service name but is a hair
	// category keyword.
	svc := models.Service{Name: "Alisado Dominicano", Category: "hair"}
	roster := []models.Professional{
		{ID: "p1", Specialties: []string{"Tratamiento de Keratina"}},
		{ID: "p2", Specialties: []string{"Manicure en Gel"}},
	}

	filtered := NewDefaultMatchingService().FilterProfessionals(roster, svc)

	require.Len(t, filtered, 1)
	assert.Equal(t, "p1", filtered[0].ID)
}

func TestFilterTreatsEmptySpecialtiesAsGeneralist(t *testing.T) {
	svc := models.Service{Name: "Maquillaje de Novia", Category: "makeup"}
	roster := []models.Professional{
		{ID: "p1", Specialties: []string{"Pedicure"}},
		{ID: "p2"}, // no specialties declared
	}

	filtered := NewDefaultMatchingService().FilterProfessionals(roster, svc)

	require.Len(t, filtered, 1)
	assert.Equal(t, "p2", filtered[0].ID)
}

func TestFilterFallsBackToFullRoster(t *testing.T) {
	svc := models.Service{Name: "Masaje Relajante", Category: "spa"}
	roster := []models.Professional{
		{ID: "p1", Specialties: []string{"Corte Caballero"}},
		{ID: "p2", Specialties: []string{"Uñas Acrilicas"}},
	}

	filtered := NewDefaultMatchingService().FilterProfessionals(roster, svc)

	// Nothing matched, so the unfiltered roster comes back rather than an
	// empty list.
	require.Len(t, filtered, 2)
	assert.Equal(t, "p1", filtered[0].ID)
	assert.Equal(t, "p2", filtered[1].ID)
}

func TestFilterPreservesRosterOrder(t *testing.T) {
	svc := models.Service{Name: "Corte y Peinado", Category: "hair"}
	roster := []models.Professional{
		{ID: "p1", Specialties: []string{"Peinado"}},
		{ID: "p2", Specialties: []string{"Manicure"}},
		{ID: "p3"},
		{ID: "p4", Specialties: []string{"Corte"}},
	}

	filtered := NewDefaultMatchingService().FilterProfessionals(roster, svc)

	require.Len(t, filtered, 3)
	assert.Equal(t, []string{"p1", "p3", "p4"}, []string{filtered[0].ID, filtered[1].ID, filtered[2].ID})
}
