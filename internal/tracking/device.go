package tracking

import "strings"

// Categorias de dispositivo reconhecidas pelo classificador.
const (
	DeviceMobile  = "Mobile"
	DeviceTablet  = "Tablet"
	DeviceDesktop = "Desktop"
)

// ClassifyDevice mapeia um user-agent para uma categoria grossa de
// dispositivo. O token "mobile" tem precedência sobre "tablet"; qualquer
// outra string (inclusive vazia) classifica como Desktop.
func ClassifyDevice(userAgent string) string {
	ua := strings.ToLower(userAgent)
	if strings.Contains(ua, "mobile") {
		return DeviceMobile
	}
	if strings.Contains(ua, "tablet") {
		return DeviceTablet
	}
	return DeviceDesktop
}
