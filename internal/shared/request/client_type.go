package request

import "strings"

const (
	ClientTypeWeb    = "web"
	ClientTypeMobile = "mobile"
	ClientTypeOther  = "other"
)

// ResolveClientType ưu tiên header X-Client-Type, fallback đoán theo User-Agent.
// Client web nhận token qua cookie HttpOnly, client khác tự giữ token.
func ResolveClientType(clientHeader, userAgent string) string {
	switch strings.ToLower(strings.TrimSpace(clientHeader)) {
	case ClientTypeWeb:
		return ClientTypeWeb
	case ClientTypeMobile:
		return ClientTypeMobile
	}

	ua := strings.ToLower(userAgent)
	if strings.Contains(ua, "mozilla") || strings.Contains(ua, "chrome") || strings.Contains(ua, "safari") {
		return ClientTypeWeb
	}
	return ClientTypeOther
}

func IsWebClient(clientType string) bool {
	return clientType == ClientTypeWeb
}
