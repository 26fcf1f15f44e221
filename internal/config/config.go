package config

import (
	"os"
	"strconv"
)

// MaxQRSize bounds the edge of a rendered QR code in pixels.
const MaxQRSize = 2048

type Config struct {
	Port    string
	DataDir string
	GinMode string
	QRSize  int
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// FromEnv reads PORT, DATA_DIR, GIN_MODE and QR_SIZE. Bad or missing values
// fall back to defaults.
func FromEnv() Config {
	c := Config{
		Port:    getenv("PORT", "8080"),
		DataDir: getenv("DATA_DIR", "data"),
		GinMode: os.Getenv("GIN_MODE"),
		QRSize:  256,
	}
	if v, err := strconv.Atoi(os.Getenv("QR_SIZE")); err == nil && v > 0 && v <= MaxQRSize {
		c.QRSize = v
	}
	return c
}
