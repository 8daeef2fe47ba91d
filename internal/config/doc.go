// Package config resolves scaffold settings from layered sources. From
// highest to lowest precedence these are command-line flags, GUIGEN_*
// environment variables, the project manifest (guigen.yaml), the user config
// file ($GUIGEN_HOME/config.yaml, default ~/.guigen/config.yaml), and
// built-in defaults. It also reads and writes keys in the user config file.
package config
