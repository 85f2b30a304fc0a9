package payload

import "fmt"

type WiFi struct {
	SSID     string
	Security string
	Password string
}

func (WiFi) Mode() Mode { return ModeWiFi }

func (p WiFi) Format() (string, error) {
	return fmt.Sprintf("WIFI:T:%s;S:%s;P:%s;;", p.Security, p.SSID, p.Password), nil
}
