package auth

import (
	"strings"

	"github.com/estatedesk/estate/cmd/estatectl/internal/config"
	"github.com/pterm/pterm"
)

// prompt reads a value interactively. mask hides the input.
func prompt(label string, mask bool) (string, error) {
	input := pterm.DefaultInteractiveTextInput
	if mask {
		input = *input.WithMask("*")
	}
	value, err := input.Show(label)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

// fill prompts for each empty value unless prompts are disabled.
func fill(cfg *config.GlobalConfig, fields ...*field) (bool, error) {
	missing := false
	for _, f := range fields {
		if *f.value == "" {
			missing = true
		}
	}
	if !missing {
		return true, nil
	}
	if cfg.NonInteractive {
		return false, nil
	}
	for _, f := range fields {
		if *f.value != "" {
			continue
		}
		v, err := prompt(f.label, f.secret)
		if err != nil {
			return false, err
		}
		*f.value = v
	}
	return true, nil
}

type field struct {
	label  string
	value  *string
	secret bool
}
