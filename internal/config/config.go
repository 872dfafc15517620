package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	ProjectID                    string
	Port                         string
	AllowedOrigins               []string
	StorageBucket                string
	UseSignedURL                 bool
	SignedURLServiceAccountEmail string
	SignedURLExpirySeconds       int64
	WelcomeTopic                 string
}

func Load() Config {
	projectID := getenv("FIREBASE_PROJECT_ID", "")
	if projectID == "" {
		projectID = getenv("GOOGLE_CLOUD_PROJECT", "")
	}

	port := getenv("PORT", "8080")
	origins := getenv("ALLOWED_ORIGINS", "http://localhost:3000")
	storageBucket := getenv("FIREBASE_STORAGE_BUCKET", "")
	if storageBucket == "" && projectID != "" {
		storageBucket = projectID + ".appspot.com"
	}
	useSignedURL := getenv("USE_SIGNED_URL", "false") == "true"
	signedURLServiceAccountEmail := getenv("SIGNED_URL_SERVICE_ACCOUNT_EMAIL", "")
	signedURLExpirySeconds, err := strconv.ParseInt(getenv("SIGNED_URL_EXPIRY_SECONDS", "900"), 10, 64)
	if err != nil || signedURLExpirySeconds <= 0 {
		signedURLExpirySeconds = 900
	}
	welcomeTopic := getenv("WELCOME_TOPIC", "account-events")

	allowed := []string{}
	for _, o := range strings.Split(origins, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			allowed = append(allowed, o)
		}
	}

	return Config{
		ProjectID:                    projectID,
		Port:                         port,
		AllowedOrigins:               allowed,
		StorageBucket:                storageBucket,
		UseSignedURL:                 useSignedURL,
		SignedURLServiceAccountEmail: signedURLServiceAccountEmail,
		SignedURLExpirySeconds:       signedURLExpirySeconds,
		WelcomeTopic:                 welcomeTopic,
	}
}

// IsEmulator reports whether we run inside the local emulator suite rather
// than against production services.
func (c Config) IsEmulator() bool {
	if os.Getenv("FUNCTIONS_EMULATOR") == "true" {
		return true
	}
	return os.Getenv("FIREBASE_STORAGE_EMULATOR_HOST") != ""
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
