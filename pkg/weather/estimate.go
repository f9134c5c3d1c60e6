package weather

import "math"

type Source string

const (
	SourceOpenMeteo Source = "open-meteo"
	SourceLatitude  Source = "latitude-estimate"
	SourceDefault   Source = "default"
)

// Reading is what the advisory forms need: air temperature (°C), relative
// humidity (%) and an estimated soil moisture (%).
type Reading struct {
	Temperature int     `json:"temperature"`
	Humidity    int     `json:"humidity"`
	Moisture    int     `json:"moisture"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Source      Source  `json:"source"`
}

func round(v float64) int { return int(math.RoundToEven(v)) }

// MoistureFromHumidity approximates topsoil moisture from relative humidity,
// kept within [20,80].
func MoistureFromHumidity(humidity int) int {
	h := float64(humidity)
	var m int
	switch {
	case humidity > 70:
		m = round(h*0.85 + 10)
	case humidity > 50:
		m = round(h * 0.9)
	default:
		m = round(h*0.95 - 5)
	}
	return max(20, min(80, m))
}

// EstimateFromLatitude is used when no live observation is available.
func EstimateFromLatitude(lat, lon float64) Reading {
	d := math.Abs(lat) - 20
	temp := math.Max(15, math.Min(40, 30-d*0.5))
	humidity := 60 + d*1.5
	return Reading{
		Temperature: round(temp),
		Humidity:    round(humidity),
		Moisture:    round(humidity * 0.85),
		Latitude:    lat,
		Longitude:   lon,
		Source:      SourceLatitude,
	}
}

// DefaultReading is the last resort when even the coordinates are unusable.
func DefaultReading() Reading {
	return Reading{Temperature: 25, Humidity: 60, Moisture: 50, Source: SourceDefault}
}
