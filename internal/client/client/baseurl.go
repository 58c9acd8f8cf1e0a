package client

import "strings"

const (
	LocalBaseURL      = "http://localhost:8000"
	ProductionBaseURL = "https://boot-lang-gscvbveeg3dvgefh.eastus2-01.azurewebsites.net"
)

// ResolveBaseURL picks the backend address. An explicit override wins;
// otherwise local hostnames map to the local backend and anything else to
// production.
func ResolveBaseURL(override, hostname string) string {
	if o := strings.TrimSpace(override); o != "" {
		return strings.TrimRight(o, "/")
	}
	switch strings.ToLower(strings.TrimSpace(hostname)) {
	case "localhost", "127.0.0.1":
		return LocalBaseURL
	default:
		return ProductionBaseURL
	}
}
