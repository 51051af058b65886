package validation

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// ServiceTypeValidator matches requested services against the clinic's
// catalog, falling back to free-text service descriptions.
type ServiceTypeValidator struct {
	catalog []string
}

func NewServiceTypeValidator(catalog []string) *ServiceTypeValidator {
	return &ServiceTypeValidator{catalog: catalog}
}

// Validate normalizes the requested service. A fuzzy substring match in
// either direction against a catalog entry returns the canonical entry;
// otherwise free text of 3-100 characters is accepted title-cased.
func (v *ServiceTypeValidator) Validate(service string) Result {
	if strings.TrimSpace(service) == "" {
		return invalid("Service type is required")
	}

	service = strings.ToLower(strings.TrimSpace(service))

	for _, entry := range v.catalog {
		canonical := strings.ToLower(entry)
		if strings.Contains(canonical, service) || strings.Contains(service, canonical) {
			return valid(canonical)
		}
	}

	if len(service) < 3 || len(service) > 100 {
		return invalid("Service description must be 3-100 characters")
	}
	return valid(titleCaser.String(service))
}
