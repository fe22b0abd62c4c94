package configs

// HTTP configures the API server. FrontendURL is the dashboard origin
// allowed by CORS.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8000.
	Port uint16 `env:"PORT" envDefault:"8000"`
	// FrontendURL is the allowed CORS origin for the dashboard.
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:5173"`
}
