package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	name    = "portfolio"
	version = "1.0.0"
)

type LogLevel string

const (
	Debug  LogLevel = "debug"
	Info   LogLevel = "info"
	Notice LogLevel = "notice"
	Warn   LogLevel = "warn"
	Error  LogLevel = "error"
)

func GetVersion() string {
	return version
}

func GetName() string {
	return name
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("PORTFOLIO_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("PORTFOLIO_DEBUG") == "true"
}

func GetListen() string {
	return os.Getenv("PORTFOLIO_LISTEN")
}

func GetPort() string {
	port := os.Getenv("PORTFOLIO_PORT")
	if port == "" {
		port = "3000"
	}
	return port
}

func GetDBFolderPath() string {
	dbFolderPath := os.Getenv("PORTFOLIO_DB_FOLDER")
	if dbFolderPath == "" {
		dbFolderPath = "db"
	}
	return dbFolderPath
}

func GetDBPath() string {
	return fmt.Sprintf("%s/%s.db", GetDBFolderPath(), GetName())
}

func GetLogFolder() string {
	logFolderPath := os.Getenv("PORTFOLIO_LOG_FOLDER")
	if logFolderPath == "" {
		logFolderPath = "log"
	}
	return logFolderPath
}

// GetSessionSecret returns the key used to authenticate session cookies.
// Deployments must supply their own; the fallback exists for local runs only.
func GetSessionSecret() string {
	secret := os.Getenv("PORTFOLIO_SESSION_SECRET")
	if secret == "" {
		secret = "change_this_to_a_long_random_string"
	}
	return secret
}

func IsSecureCookie() bool {
	return os.Getenv("PORTFOLIO_SECURE_COOKIE") == "true"
}

// IsPublicListingEnabled toggles the home page between live store queries and
// empty placeholder lists.
func IsPublicListingEnabled() bool {
	return os.Getenv("PORTFOLIO_PUBLIC_LISTING") == "true"
}

// GetWebDomain returns the host the panel is restricted to, empty for any.
func GetWebDomain() string {
	return strings.TrimSpace(os.Getenv("PORTFOLIO_DOMAIN"))
}
