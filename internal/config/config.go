package config

import (
	"os"
)

type Config struct {
	HTTPAddr    string
	CatalogURL  string
	ServiceName string
}

func Load() Config {
	return Config{
		HTTPAddr:    getenv("HTTP_ADDR", ":8080"),
		CatalogURL:  getenv("CATALOG_URL", "http://127.0.0.1:5000"),
		ServiceName: getenv("SERVICE_NAME", "storefront"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
