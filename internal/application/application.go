package application

const (
	// AppName is the application name used for identification
	AppName = "skycast"

	// AppVersion is the semantic version reported by --version
	AppVersion = "0.1.0"
)
