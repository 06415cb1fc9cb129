package app

import (
	"fmt"

	batchHTTP "github.com/allisson/cardvault/internal/batch/http"
	batchService "github.com/allisson/cardvault/internal/batch/service"
	batchUseCase "github.com/allisson/cardvault/internal/batch/usecase"
)

// BatchParser returns the fixed-layout batch parser.
func (c *Container) BatchParser() batchUseCase.Parser {
	c.batchParserInit.Do(func() {
		c.batchParser = batchService.NewFixedLayoutParser(c.config.BatchRequireTrailer)
	})
	return c.batchParser
}

// IngestionUseCase returns the batch ingestion use case wrapped with business metrics.
func (c *Container) IngestionUseCase() (batchUseCase.IngestionUseCase, error) {
	var err error
	c.ingestionUseCaseInit.Do(func() {
		c.ingestionUseCase, err = c.initIngestionUseCase()
		if err != nil {
			c.setInitError("ingestionUseCase", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("ingestionUseCase"); storedErr != nil {
		return nil, storedErr
	}
	return c.ingestionUseCase, nil
}

// UploadHandler returns the batch upload HTTP handler.
func (c *Container) UploadHandler() (*batchHTTP.UploadHandler, error) {
	var err error
	c.uploadHandlerInit.Do(func() {
		c.uploadHandler, err = c.initUploadHandler()
		if err != nil {
			c.setInitError("uploadHandler", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("uploadHandler"); storedErr != nil {
		return nil, storedErr
	}
	return c.uploadHandler, nil
}

func (c *Container) initIngestionUseCase() (batchUseCase.IngestionUseCase, error) {
	cardUseCase, err := c.CardUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get card use case for ingestion use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for ingestion use case: %w", err)
	}

	useCase := batchUseCase.NewIngestionUseCase(c.BatchParser(), cardUseCase, c.Logger())
	return batchUseCase.NewIngestionUseCaseWithMetrics(useCase, businessMetrics), nil
}

func (c *Container) initUploadHandler() (*batchHTTP.UploadHandler, error) {
	useCase, err := c.IngestionUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get ingestion use case for upload handler: %w", err)
	}
	return batchHTTP.NewUploadHandler(useCase, c.config.BatchMaxUploadBytes, c.Logger()), nil
}
