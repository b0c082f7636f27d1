package config

// Host timing and buffers
const (
	// StepInterval is the number of seconds between generator steps in the viewer
	StepInterval = 0.05

	// TicksPerSecond matches ebiten's default update rate
	TicksPerSecond = 60

	// ServerTickMillis is the map server step period
	ServerTickMillis = 100

	// MessageLogSize is the number of log lines kept in memory
	MessageLogSize = 100

	// AudioSampleRate is the sample rate of the viewer audio context
	AudioSampleRate = 44100

	// DefaultPort is used by the map server when APP_PORT is not set
	DefaultPort = "8080"
)
