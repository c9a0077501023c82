package utils

// ValidateCoordinates checks if latitude and longitude are valid
// Latitude must be between -90 and 90
// Longitude must be between -180 and 180
func ValidateCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// HasValidCoordinates checks if an object with lat/lng fields has valid coordinates
func HasValidCoordinates(lat, lng float64) bool {
	// Check for zero values (often indicates missing data)
	if lat == 0 && lng == 0 {
		return false
	}

	return ValidateCoordinates(lat, lng)
}
