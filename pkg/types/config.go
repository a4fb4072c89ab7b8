package types

type Config struct {
	Environment     string `envconfig:"ENVIRONMENT" default:"development"`
	ServerPort      uint   `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeoutSec  uint   `envconfig:"READ_TIMEOUT_SEC" default:"10"`
	WriteTimeoutSec uint   `envconfig:"WRITE_TIMEOUT_SEC" default:"15"`

	// Trial backend
	BackendURL string `envconfig:"BACKEND_URL" default:"http://localhost:8000"`

	// Cookie encryption keys (base64 encoded)
	// openssl rand -base64 32
	// to generate values
	CookieHashKey    string `envconfig:"COOKIE_HASH_KEY"`  // 32 or 64 bytes
	CookieBlockKey   string `envconfig:"COOKIE_BLOCK_KEY"` // 16, 24, or 32 bytes
	FlashMaxAgeSec   int    `envconfig:"FLASH_MAX_AGE_SEC" default:"300"`
	VisitorMaxAgeSec int    `envconfig:"VISITOR_MAX_AGE_SEC" default:"2592000"` // 30 days
}
