package config

import (
	"fmt"
	"os"
)

// Template returns a commented sample configuration matching Default().
func Template() string {
	return configTemplate
}

// WriteTemplate writes the sample configuration to path. Refuses to
// clobber an existing file unless overwrite is set.
func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(configTemplate), 0o600)
}

const configTemplate = `# msgviewer configuration

# Text convention for str payloads: "utf-8" or "latin-1".
# The wire format does not distinguish them; they diverge on
# non-ASCII bytes.
encoding = "utf-8"

# Inputs larger than this are rejected before decoding.
max_input_bytes = 67108864

# Treat reserved (0xc1) tags as a failure.
strict = false

[output]
# "text" or "json"
format = "text"
offsets = true
`
