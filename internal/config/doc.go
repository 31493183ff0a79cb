// Package config loads TweetHeure runtime settings.
//
// Sources are applied in order, later ones winning:
//  1. built-in defaults (LoadDefaults)
//  2. a config file named by -c/-config; ".yaml"/".yml" is read as YAML,
//     anything else as JSON
//  3. command-line flags
//
// Malformed files or flag values panic; the program cannot start without a
// usable configuration.
package config
