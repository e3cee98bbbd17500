package app

import (
	"fmt"

	"github.com/allisson/tsp-registry/internal/database"
	tspHTTP "github.com/allisson/tsp-registry/internal/tsp/http"
	tspRepository "github.com/allisson/tsp-registry/internal/tsp/repository"
	tspService "github.com/allisson/tsp-registry/internal/tsp/service"
	tspUseCase "github.com/allisson/tsp-registry/internal/tsp/usecase"
)

// ApprovedTspRepository returns the repository matching the configured driver.
func (c *Container) ApprovedTspRepository() (tspUseCase.ApprovedTspRepository, error) {
	c.approvedTspRepoInit.Do(func() {
		var err error
		c.approvedTspRepo, err = c.initApprovedTspRepository()
		c.setInitError("approvedTspRepo", err)
	})
	if err := c.initError("approvedTspRepo"); err != nil {
		return nil, err
	}
	return c.approvedTspRepo, nil
}

// CertificateFieldExtractor returns the X.509 field extractor.
func (c *Container) CertificateFieldExtractor() tspService.CertificateFieldExtractor {
	c.certExtractorInit.Do(func() {
		c.certExtractor = tspService.NewCertificateFieldExtractor()
	})
	return c.certExtractor
}

// RecordValidator returns the save-time validator for approved TSP records.
func (c *Container) RecordValidator() (*tspUseCase.RecordValidator, error) {
	c.recordValidatorInit.Do(func() {
		var err error
		c.recordValidator, err = c.initRecordValidator()
		c.setInitError("recordValidator", err)
	})
	if err := c.initError("recordValidator"); err != nil {
		return nil, err
	}
	return c.recordValidator, nil
}

// ApprovedTspUseCase returns the approved TSP use case.
func (c *Container) ApprovedTspUseCase() (tspUseCase.ApprovedTspUseCase, error) {
	c.approvedTspUseCaseInit.Do(func() {
		var err error
		c.approvedTspUseCase, err = c.initApprovedTspUseCase()
		c.setInitError("approvedTspUseCase", err)
	})
	if err := c.initError("approvedTspUseCase"); err != nil {
		return nil, err
	}
	return c.approvedTspUseCase, nil
}

// ApprovedTspHandler returns the approved TSP HTTP handler.
func (c *Container) ApprovedTspHandler() (*tspHTTP.ApprovedTspHandler, error) {
	c.approvedTspHandlerInit.Do(func() {
		var err error
		c.approvedTspHandler, err = c.initApprovedTspHandler()
		c.setInitError("approvedTspHandler", err)
	})
	if err := c.initError("approvedTspHandler"); err != nil {
		return nil, err
	}
	return c.approvedTspHandler, nil
}

// initApprovedTspRepository selects the repository implementation by dialect.
func (c *Container) initApprovedTspRepository() (tspUseCase.ApprovedTspRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for approved tsp repository: %w", err)
	}

	switch c.dialect {
	case database.MySQL:
		return tspRepository.NewMySQLApprovedTspRepository(db), nil
	case database.PostgreSQL:
		return tspRepository.NewPostgreSQLApprovedTspRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initRecordValidator() (*tspUseCase.RecordValidator, error) {
	repo, err := c.ApprovedTspRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get approved tsp repository for record validator: %w", err)
	}

	return tspUseCase.NewRecordValidator(
		c.CertificateFieldExtractor(),
		repo,
		c.config.StringMaxLength,
	), nil
}

// initApprovedTspUseCase creates the use case and wraps it with metrics when enabled.
func (c *Container) initApprovedTspUseCase() (tspUseCase.ApprovedTspUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for approved tsp use case: %w", err)
	}

	repo, err := c.ApprovedTspRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get approved tsp repository for approved tsp use case: %w", err)
	}

	validator, err := c.RecordValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to get record validator for approved tsp use case: %w", err)
	}

	baseUseCase := tspUseCase.NewApprovedTspUseCase(txManager, repo, validator, c.Logger())

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for approved tsp use case: %w", err)
		}
		return tspUseCase.NewApprovedTspUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

func (c *Container) initApprovedTspHandler() (*tspHTTP.ApprovedTspHandler, error) {
	useCase, err := c.ApprovedTspUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get approved tsp use case for approved tsp handler: %w", err)
	}

	return tspHTTP.NewApprovedTspHandler(useCase, c.Logger()), nil
}
