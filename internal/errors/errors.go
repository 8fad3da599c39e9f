package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/julianstephens/eyerest/internal/constants"
	"github.com/julianstephens/eyerest/internal/logger"
)

// ErrNotInitialized is returned by stores opened before 'eyerest init' ran.
var ErrNotInitialized = stderrors.New("storage not initialized")

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Hint returns a suggested next step for well-known errors, or an empty string.
func Hint(err error) string {
	switch {
	case err == nil:
		return ""
	case stderrors.Is(err, ErrNotInitialized):
		return fmt.Sprintf("Run '%s init' first.", constants.AppName)
	default:
		return ""
	}
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		if hint := Hint(err); hint != "" {
			fmt.Fprintf(os.Stderr, "       %s\n", hint)
		}
		os.Exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
