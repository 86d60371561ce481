package config

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	BaseURL     string `env:"BASE_URL" envDefault:"http://localhost:8080"`
	DatabaseURL string `env:"DATABASE_URL" envDefault:"agrifarma.db"`

	JWT     JWT     `envPrefix:"JWT_"`
	Payment Payment `envPrefix:"PAYMENT_"`
	SMTP    SMTP    `envPrefix:"SMTP_"`
	Uploads Uploads `envPrefix:"UPLOAD_"`
	Report  Report  `envPrefix:"REPORT_"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}

type JWT struct {
	Secret   string `env:"SECRET" envDefault:"dev-secret-change-me"`
	TTLHours int    `env:"TTL_HOURS" envDefault:"24"`
}

type Payment struct {
	Gateway  string `env:"GATEWAY" envDefault:"mock"` // mock, stripe, jazzcash
	Currency string `env:"CURRENCY" envDefault:"PKR"`
}

type SMTP struct {
	Host     string `env:"HOST"`
	Port     string `env:"PORT" envDefault:"587"`
	Username string `env:"USER"`
	Password string `env:"PASS"`
	Sender   string `env:"SENDER" envDefault:"noreply@agrifarma.local"`
	// when true, emails are logged instead of sent
	Suppress bool `env:"SUPPRESS" envDefault:"true"`
}

type Uploads struct {
	Dir         string `env:"DIR" envDefault:"uploads"`
	MaxSizeMB   int    `env:"MAX_SIZE_MB" envDefault:"16"`
	ServePrefix string `env:"SERVE_PREFIX" envDefault:"/media"`
}

type Report struct {
	LowInventoryThreshold int `env:"LOW_INVENTORY_THRESHOLD" envDefault:"5"`
	TrendDays             int `env:"TREND_DAYS" envDefault:"14"`
}
