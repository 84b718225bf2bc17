package convert

const metersPerKilometer = 1000.0

// ToKilometers returns the given distance in meters as kilometers.
func ToKilometers(meters float64) float64 {
	return meters / metersPerKilometer
}
