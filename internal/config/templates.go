package config

import (
	"fmt"
	"os"
)

// Template returns a commented config with every key at its default.
func Template() string {
	return defaultTemplate
}

func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(defaultTemplate), 0o600)
}

const defaultTemplate = `# cbusctl configuration

[serial]
# Device path of the GridConnect adapter, e.g. /dev/ttyACM0 or COM3.
port = "/dev/ttyACM0"
baud = 115200
# A read returns empty after this long with no traffic.
read_timeout = "100ms"

[node]
# CAN ID stamped into outgoing headers (0..127).
can_id = 125
# Node number used for short accessory events.
node_number = 0
major_priority = 2

[reconnect]
initial_delay = "250ms"
max_delay = "5s"
multiplier = 2.0
jitter = true
# 0 retries forever.
max_attempts = 0

[metrics]
# Listen address for /health and /metrics. Leave empty to disable.
addr = ""
`
