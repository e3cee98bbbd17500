// Package commands contains CLI command implementations for the application.
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/golang-migrate/migrate/v4"

	"github.com/allisson/tsp-registry/internal/app"
	tspDomain "github.com/allisson/tsp-registry/internal/tsp/domain"
)

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// closeContainer closes all resources in the container and logs any errors.
func closeContainer(container *app.Container, logger *slog.Logger) {
	if err := container.Shutdown(context.Background()); err != nil {
		logger.Error("failed to shutdown container", slog.Any("error", err))
	}
}

// closeMigrate closes the migration instance and logs any errors.
func closeMigrate(migrate *migrate.Migrate, logger *slog.Logger) {
	sourceError, databaseError := migrate.Close()
	if sourceError != nil || databaseError != nil {
		logger.Error(
			"failed to close the migrate",
			slog.Any("source_error", sourceError),
			slog.Any("database_error", databaseError),
		)
	}
}

// validateFormat rejects output formats other than text and json.
func validateFormat(format string) error {
	switch format {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("invalid format: %s (valid options: text, json)", format)
	}
}

// tspOutput is the machine-readable view of a record printed by the commands.
type tspOutput struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	URL             string `json:"url"`
	ValidFrom       string `json:"valid_from"`
	ValidTo         string `json:"valid_to"`
	CertificateHash string `json:"certificate_sha256"`
}

func newTspOutput(tsp *tspDomain.ApprovedTsp) tspOutput {
	return tspOutput{
		ID:              tsp.ID.String(),
		Name:            tsp.Name,
		URL:             tsp.URL,
		ValidFrom:       tsp.ValidFrom.UTC().Format("2006-01-02T15:04:05Z"),
		ValidTo:         tsp.ValidTo.UTC().Format("2006-01-02T15:04:05Z"),
		CertificateHash: tsp.CertificateHash,
	}
}

// writeJSON prints v as indented JSON.
func writeJSON(writer io.Writer, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, _ = fmt.Fprintln(writer, string(jsonBytes))
	return nil
}

// writeTspText prints a record in human-readable form under a heading.
func writeTspText(writer io.Writer, heading string, tsp *tspDomain.ApprovedTsp) {
	out := newTspOutput(tsp)
	_, _ = fmt.Fprintf(writer, "\n%s\n", heading)
	_, _ = fmt.Fprintf(writer, "ID: %s\n", out.ID)
	_, _ = fmt.Fprintf(writer, "Name: %s\n", out.Name)
	_, _ = fmt.Fprintf(writer, "URL: %s\n", out.URL)
	_, _ = fmt.Fprintf(writer, "Valid From: %s\n", out.ValidFrom)
	_, _ = fmt.Fprintf(writer, "Valid To: %s\n", out.ValidTo)
	_, _ = fmt.Fprintf(writer, "Certificate SHA-256: %s\n", out.CertificateHash)
}
