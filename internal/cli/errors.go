package cli

import "errors"

var (
	errNotTerminal  = errors.New("stdout is not a terminal")
	errConfigExists = errors.New("config file already exists (use --force to overwrite)")
	errInterrupted  = errors.New("interrupted")
)
