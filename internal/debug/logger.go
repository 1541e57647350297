package debug

import (
	"log"
	"os"
)

var enabled = false

func init() {
	enabled = os.Getenv("DEBUG_DASHBOARD") == "true"
	if enabled {
		log.Println("🐛 Debug dashboard enabled")
	}
}

// IsEnabled reports whether the debug dashboard feed is on.
func IsEnabled() bool {
	return enabled
}

// LogInfo sends an info-level log to the dashboard.
func LogInfo(message string, metadata map[string]interface{}) {
	if !enabled {
		return
	}
	SendLog("backend", "info", message, metadata)
}

// LogWarn sends a warn-level log to the dashboard.
func LogWarn(message string, metadata map[string]interface{}) {
	if !enabled {
		return
	}
	SendLog("backend", "warn", message, metadata)
}

// LogError sends an error-level log to the dashboard.
func LogError(message string, metadata map[string]interface{}) {
	if !enabled {
		return
	}
	SendLog("backend", "error", message, metadata)
}

// Event forwards an account event to the dashboard.
func Event(event, username, outcome string) {
	if !enabled {
		return
	}
	SendEvent(event, username, outcome)
}
