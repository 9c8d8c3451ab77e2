package domain

import "time"

// SensorReading is one environmental sample taken at a kiosk.
// AirQuality is the UK Daily Air Quality Index.
type SensorReading struct {
	Kiosk       int       `json:"kiosk"`
	Time        time.Time `json:"time"`
	Temperature float64   `json:"temperature"`
	Humidity    float64   `json:"humidity"`
	Pressure    float64   `json:"pressure"`
	AirQuality  float64   `json:"air_quality"`
	Current     float64   `json:"current"`
	Voltage     float64   `json:"voltage"`
}

type AirQualityBand string

const (
	BandLow      AirQualityBand = "Low"
	BandModerate AirQualityBand = "Moderate"
	BandHigh     AirQualityBand = "High"
	BandVeryHigh AirQualityBand = "Very High"
)

// Band follows the DAQI banding: 1-3 Low, 4-6 Moderate, 7-9 High, 10 Very High.
// Anything below 4, zero included, is Low.
func (r SensorReading) Band() AirQualityBand {
	return AirQualityBandOf(r.AirQuality)
}

func AirQualityBandOf(index float64) AirQualityBand {
	switch {
	case index >= 10:
		return BandVeryHigh
	case index >= 7:
		return BandHigh
	case index >= 4:
		return BandModerate
	default:
		return BandLow
	}
}
