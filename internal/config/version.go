package config

// Version is the genenet binary version.
// Set at build time via: -ldflags "-X github.com/persistorai/genenet/internal/config.Version=<tag>"
// Defaults to "dev" when built without ldflags.
var Version = "dev"
