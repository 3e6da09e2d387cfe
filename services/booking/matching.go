package booking

import (
	"strings"

	"glowbook/models"
)

// MatchingService narrows a vendor's roster to professionals relevant to a
// service.
type MatchingService interface {
	FilterProfessionals(roster []models.Professional, svc models.Service) []models.Professional
}

// DefaultMatchingService implements MatchingService.
type DefaultMatchingService struct {
	// Keywords maps a service category to terms a specialty may carry to be
	// considered related. Overridable so the list stays configuration data
	// rather than buried logic.
	Keywords map[string][]string
}

// defaultSpecialtyKeywords covers the categories of the launch catalog.
var defaultSpecialtyKeywords = map[string][]string{
	"hair":   {"corte", "color", "balayage", "peinado", "keratina", "blower"},
	"nails":  {"manicure", "pedicure", "gel", "acrilico", "uñas"},
	"makeup": {"maquillaje", "novia", "social", "pestañas"},
	"spa":    {"facial", "masaje", "limpieza", "depilacion"},
	"barber": {"barba", "afeitado", "corte"},
}

func NewDefaultMatchingService() *DefaultMatchingService {
	return &DefaultMatchingService{Keywords: defaultSpecialtyKeywords}
}

// FilterProfessionals returns the subset of the roster relevant to the
// service, preserving input order. A professional with no declared
// specialties counts as a generalist and always passes. If nothing matches,
// the full roster is returned instead: as long as the vendor has at least one
// professional, an empty list is never a valid output.
func (s *DefaultMatchingService) FilterProfessionals(roster []models.Professional, svc models.Service) []models.Professional {
	keywords := s.Keywords[strings.ToLower(svc.Category)]
	serviceName := strings.ToLower(svc.Name)

	var filtered []models.Professional
	for _, p := range roster {
		if s.isRelevant(p, serviceName, keywords) {
			filtered = append(filtered, p)
		}
	}
	if len(filtered) == 0 {
		return roster
	}
	return filtered
}

func (s *DefaultMatchingService) isRelevant(p models.Professional, serviceName string, keywords []string) bool {
	if len(p.Specialties) == 0 {
		return true // generalist
	}
	for _, spec := range p.Specialties {
		lowered := strings.ToLower(spec)
		if strings.Contains(serviceName, lowered) {
			return true
		}
		for _, kw := range keywords {
			if strings.Contains(lowered, kw) {
				return true
			}
		}
	}
	return false
}
