// Package services defines the shared error vocabulary for external
// collaborators (generation provider, EPUB formatter). Callers classify
// failures with errors.Is against the exported sentinels rather than parsing
// message text.
package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrProvider marks failures returned by the generation provider.
	ErrProvider = errors.New("provider error")
	// ErrConfiguration marks failures caused by unusable local configuration.
	ErrConfiguration = errors.New("configuration error")
	// ErrFormatting marks failures while assembling an export artifact.
	ErrFormatting = errors.New("formatting error")
	// ErrTransient marks failures that a later identical invocation may not hit.
	ErrTransient = errors.New("transient failure")
)

// Wrap builds an error message that includes stage context while tagging it
// with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrTransient
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
