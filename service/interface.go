package service

// Service defines the lifecycle interface for infrastructure subsystems
// Services own long-lived resources: the terminal, the audio device, texture loading
//
// Lifecycle:
//  1. Construction with configuration
//  2. Init() - acquire resources
//  3. Start() - launch background goroutines
//  4. [runtime operation]
//  5. Stop() - halt goroutines, release resources
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Dependencies returns names of services that must Init before this one
	Dependencies() []string

	Init() error

	// Start is called after every service has initialized
	Start() error

	// Stop must be idempotent
	Stop() error
}
