package config

// ListenAddr returns the address the HTTP server binds to.
func ListenAddr() string {
	return getEnv("LISTEN_ADDR", "0.0.0.0:8080")
}

// APIBaseURL returns the base URL the page layer uses to reach the REST API.
// Defaults to the local server itself, matching the single-process deployment.
func APIBaseURL() string {
	return getEnv("API_BASE_URL", "http://127.0.0.1:8080")
}
