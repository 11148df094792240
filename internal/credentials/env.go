package credentials

import "os"

// Environment variable names. A .env file loaded via godotenv feeds
// these as well.
const (
	EnvURL      = "NEXTOOL_URL"
	EnvUsername = "NEXTOOL_USERNAME"
	EnvPassword = "NEXTOOL_PASSWORD"
)

// EnvURLValue returns the instance URL from the environment.
func EnvURLValue() string {
	return os.Getenv(EnvURL)
}

// EnvUsernameValue returns the username from the environment.
func EnvUsernameValue() string {
	return os.Getenv(EnvUsername)
}

// EnvPasswordValue returns the password from the environment.
func EnvPasswordValue() string {
	return os.Getenv(EnvPassword)
}
