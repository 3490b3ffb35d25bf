package config

import (
	_ "embed"
)

//go:embed defaults/randwalk.yaml
var defaultConfigYAML []byte
