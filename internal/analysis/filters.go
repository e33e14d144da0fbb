package analysis

import "github.com/shenikar/safetravel/internal/models"

// FilterByCategories оставляет инциденты выбранных категорий.
// Пустой набор категорий фильтр не применяет.
func FilterByCategories(incidents []models.Incident, categories []string) []models.Incident {
	if len(categories) == 0 {
		return append(make([]models.Incident, 0, len(incidents)), incidents...)
	}
	allowed := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		allowed[c] = struct{}{}
	}
	return filter(incidents, func(inc models.Incident) bool {
		_, ok := allowed[inc.Category]
		return ok
	})
}

// FilterBySeverity оставляет инциденты заданного уровня; SeverityNone фильтр не применяет
func FilterBySeverity(incidents []models.Incident, severity models.Severity) []models.Incident {
	if severity == models.SeverityNone {
		return append(make([]models.Incident, 0, len(incidents)), incidents...)
	}
	return filter(incidents, func(inc models.Incident) bool { return inc.Severity == severity })
}

// FilterBySource оставляет инциденты из заданного источника; пустой источник фильтр не применяет
func FilterBySource(incidents []models.Incident, source models.Source) []models.Incident {
	if source == "" {
		return append(make([]models.Incident, 0, len(incidents)), incidents...)
	}
	return filter(incidents, func(inc models.Incident) bool { return inc.Source == source })
}

func filter(incidents []models.Incident, keep func(models.Incident) bool) []models.Incident {
	out := make([]models.Incident, 0, len(incidents))
	for _, inc := range incidents {
		if keep(inc) {
			out = append(out, inc)
		}
	}
	return out
}
