// Package analysis содержит чистые функции выборки и агрегации инцидентов:
// фильтры по времени, категориям и радиусу, подсчет горячих точек и индекс безопасности.
package analysis

import (
	"fmt"
	"strings"
	"time"

	"github.com/shenikar/safetravel/internal/models"
)

// Window - именованное временное окно
type Window string

const (
	WindowDay   Window = "day"
	WindowWeek  Window = "week"
	WindowMonth Window = "month"
	WindowAll   Window = "all"
)

// ParseWindow разбирает название окна. Пустая строка означает WindowAll.
func ParseWindow(s string) (Window, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return WindowAll, nil
	case "day", "24h":
		return WindowDay, nil
	case "week", "7d":
		return WindowWeek, nil
	case "month", "30d":
		return WindowMonth, nil
	}
	return "", fmt.Errorf("%w: %q", models.ErrInvalidWindow, s)
}

// Duration возвращает длительность окна; для WindowAll ok == false
func (w Window) Duration() (d time.Duration, ok bool, err error) {
	switch w {
	case WindowDay:
		return 24 * time.Hour, true, nil
	case WindowWeek:
		return 7 * 24 * time.Hour, true, nil
	case WindowMonth:
		return 30 * 24 * time.Hour, true, nil
	case WindowAll:
		return 0, false, nil
	}
	return 0, false, fmt.Errorf("%w: %q", models.ErrInvalidWindow, string(w))
}

// FilterByWindow оставляет инциденты с CreatedAt >= now - длительность окна.
// Граница включительная, порядок входа сохраняется. WindowAll возвращает все записи.
func FilterByWindow(incidents []models.Incident, w Window, now time.Time) ([]models.Incident, error) {
	d, bounded, err := w.Duration()
	if err != nil {
		return nil, err
	}
	out := make([]models.Incident, 0, len(incidents))
	if !bounded {
		return append(out, incidents...), nil
	}
	since := now.Add(-d)
	for _, inc := range incidents {
		if !inc.CreatedAt.Before(since) {
			out = append(out, inc)
		}
	}
	return out, nil
}
