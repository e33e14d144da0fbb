// Package geo считает расстояния между точками на поверхности Земли.
//
// Используется сферическая модель (формула гаверсинусов) со средним радиусом Земли.
// Для городских радиусов в сотни метров погрешность относительно эллипсоида
// не превышает долей процента.
package geo

import (
	"math"

	"github.com/shenikar/safetravel/internal/models"
)

// EarthRadiusMeters - средний радиус Земли (IUGG)
const EarthRadiusMeters = 6371008.8

// DistanceMeters возвращает расстояние по большому кругу между точками a и b в метрах
func DistanceMeters(a, b models.Point) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dLat := toRadians(b.Lat - a.Lat)
	dLon := toRadians(b.Lon - a.Lon)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon

	// Для антиподов ошибка округления может вывести h за [0, 1]
	h = math.Min(1, math.Max(0, h))

	return 2 * EarthRadiusMeters * math.Asin(math.Sqrt(h))
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
