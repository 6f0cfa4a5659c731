package config

import "os"

// GetPort returns the HTTP listen address, e.g. ":8080".
func GetPort() string {
	if v := os.Getenv("PORT"); v != "" {
		return ":" + v
	}
	return ":8080"
}

// GetRedisAddr returns the Redis host:port for the document store.
func GetRedisAddr() string {
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		return v
	}
	return "localhost:6379"
}

// GetRedisPassword returns the Redis password, empty when unset.
func GetRedisPassword() string {
	return os.Getenv("REDIS_PASSWORD")
}

// GetFFmpegPath returns the ffmpeg binary to invoke.
func GetFFmpegPath() string {
	if v := os.Getenv("FFMPEG_PATH"); v != "" {
		return v
	}
	return "ffmpeg"
}
