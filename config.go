package drive

const DEFAULT_WORKERS = 1

// Config holds the settings NewWorld builds a World from.
type Config struct {
	// Workers is the number of goroutines drives are fanned out to each step.
	Workers int
	// Debug enables debug logging.
	Debug bool
	// LogPrefix tags every log line. A world logs nothing unless LogPrefix or
	// Debug is set.
	LogPrefix string
}

func DefaultConfig() Config {
	return Config{
		Workers: DEFAULT_WORKERS,
	}
}
