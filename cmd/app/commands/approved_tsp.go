package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/google/uuid"

	tspDomain "github.com/allisson/tsp-registry/internal/tsp/domain"
	tspUseCase "github.com/allisson/tsp-registry/internal/tsp/usecase"
)

// RunCreateTsp registers a TSP from a DER or PEM certificate file.
// Name and validity are derived from the certificate.
//
// Requirements: Database must be migrated and accessible.
func RunCreateTsp(
	ctx context.Context,
	useCase tspUseCase.ApprovedTspUseCase,
	logger *slog.Logger,
	writer io.Writer,
	certFile string,
	url string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	certificate, err := os.ReadFile(certFile)
	if err != nil {
		return fmt.Errorf("failed to read certificate file: %w", err)
	}

	logger.Info("creating approved tsp", slog.String("url", url))

	tsp, err := useCase.Create(ctx, &tspDomain.CreateApprovedTspInput{
		Certificate: certificate,
		URL:         url,
	})
	if err != nil {
		return fmt.Errorf("failed to create approved tsp: %w", err)
	}

	logger.Info("approved tsp created", slog.String("id", tsp.ID.String()), slog.String("tsp", tsp.String()))

	if format == "json" {
		return writeJSON(writer, newTspOutput(tsp))
	}
	writeTspText(writer, "Approved TSP created successfully!", tsp)
	return nil
}

// RunListTsps prints one page of the registry.
func RunListTsps(
	ctx context.Context,
	useCase tspUseCase.ApprovedTspUseCase,
	writer io.Writer,
	search, sortColumn, sortDirection string,
	limit, offset int,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	params, err := tspDomain.NewListParams(search, sortColumn, sortDirection, limit, offset)
	if err != nil {
		return fmt.Errorf("invalid list parameters: %w", err)
	}

	tsps, err := useCase.List(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to list approved tsps: %w", err)
	}

	total, err := useCase.Count(ctx, params.Search)
	if err != nil {
		return fmt.Errorf("failed to count approved tsps: %w", err)
	}

	if format == "json" {
		data := make([]tspOutput, 0, len(tsps))
		for _, tsp := range tsps {
			data = append(data, newTspOutput(tsp))
		}
		return writeJSON(writer, map[string]any{"data": data, "total": total})
	}

	tw := tabwriter.NewWriter(writer, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tNAME\tURL\tVALID FROM\tVALID TO")
	for _, tsp := range tsps {
		out := newTspOutput(tsp)
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", out.ID, out.Name, out.URL, out.ValidFrom, out.ValidTo)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	_, _ = fmt.Fprintf(writer, "\nShowing %d of %d\n", len(tsps), total)
	return nil
}

// RunUpdateTsp changes the URL of an existing record. The certificate cannot
// be replaced; when certFile is given it must hold the stored certificate.
func RunUpdateTsp(
	ctx context.Context,
	useCase tspUseCase.ApprovedTspUseCase,
	logger *slog.Logger,
	writer io.Writer,
	idStr string,
	url string,
	certFile string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return fmt.Errorf("invalid approved tsp ID format: %w", err)
	}

	input := &tspDomain.UpdateApprovedTspInput{URL: url}
	if certFile != "" {
		input.Certificate, err = os.ReadFile(certFile)
		if err != nil {
			return fmt.Errorf("failed to read certificate file: %w", err)
		}
	}

	logger.Info("updating approved tsp", slog.String("id", id.String()), slog.String("url", url))

	tsp, err := useCase.Update(ctx, id, input)
	if err != nil {
		return fmt.Errorf("failed to update approved tsp: %w", err)
	}

	logger.Info("approved tsp updated", slog.String("id", id.String()), slog.String("tsp", tsp.String()))

	if format == "json" {
		return writeJSON(writer, newTspOutput(tsp))
	}
	writeTspText(writer, "Approved TSP updated successfully!", tsp)
	return nil
}

// RunDeleteTsp removes a record from the registry.
func RunDeleteTsp(
	ctx context.Context,
	useCase tspUseCase.ApprovedTspUseCase,
	logger *slog.Logger,
	writer io.Writer,
	idStr string,
) error {
	id, err := uuid.Parse(idStr)
	if err != nil {
		return fmt.Errorf("invalid approved tsp ID format: %w", err)
	}

	if err := useCase.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete approved tsp: %w", err)
	}

	logger.Info("approved tsp deleted", slog.String("id", id.String()))
	_, _ = fmt.Fprintf(writer, "Approved TSP %s deleted\n", id)
	return nil
}
