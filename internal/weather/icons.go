package weather

// iconByCondition maps the provider's sky-condition codes onto the shared
// icon vocabulary.
var iconByCondition = map[string]Icon{
	"clear-day":           IconClearDay,
	"clear-night":         IconClearNight,
	"partly-cloudy-day":   IconPartlyCloudyDay,
	"partly-cloudy-night": IconPartlyCloudyNight,
	"cloudy":              IconCloudy,
	"fog":                 IconFog,
	"wind":                IconWind,
	"hail":                IconHail,
	"sleet":               IconSleet,
	"snow":                IconSnow,
	"rain":                IconRain,
	"thunderstorm":        IconThunderstorm,
}

func mapIcon(code string) Icon {
	if icon, ok := iconByCondition[code]; ok {
		return icon
	}
	return IconClearDay
}
