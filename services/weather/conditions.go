package weather

// condition maps a WMO weather code to a display condition.
type condition struct {
	Condition   string
	Description string
	Icon        string
}

// conditionForCode translates Open-Meteo WMO weather codes into the
// condition buckets the site displays.
func conditionForCode(code int) condition {
	switch {
	case code == 0:
		return condition{"Clear", "clear sky", "01d"}
	case code <= 3:
		return condition{"Clouds", "partly cloudy", "02d"}
	case code <= 48:
		return condition{"Fog", "foggy", "50d"}
	case code <= 67:
		return condition{"Rain", "rainy", "10d"}
	case code <= 77:
		return condition{"Snow", "snowy", "13d"}
	case code <= 82:
		return condition{"Rain", "showers", "09d"}
	case code <= 99:
		return condition{"Thunderstorm", "thunderstorm", "11d"}
	}
	return condition{"Clear", "clear sky", "01d"}
}
