package config

// Warner receives warnings found while reading the settings.
type Warner interface {
	Warnf(format string, a ...interface{})
}

// warnRenamed warns that the environment variable oldKey was renamed
// to newKey. The value of oldKey is still used when newKey is unset.
func warnRenamed(warner Warner, oldKey, newKey string) {
	warner.Warnf("environment variable %s is deprecated and was renamed to %s",
		oldKey, newKey)
}
