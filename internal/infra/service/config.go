package service

// Config defines application settings.
type Config struct {
	HTTPPort int `envconfig:"HTTP_PORT" default:"8011"`

	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`

	// BCryptCost overrides the password hashing cost, 0 keeps the library default.
	BCryptCost int `envconfig:"BCRYPT_COST"`
}
