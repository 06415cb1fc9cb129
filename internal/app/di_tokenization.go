package app

import (
	"crypto/rand"
	"fmt"

	"github.com/allisson/cardvault/internal/config"
	tokenizationHTTP "github.com/allisson/cardvault/internal/tokenization/http"
	tokenizationRepository "github.com/allisson/cardvault/internal/tokenization/repository"
	tokenizationMySQL "github.com/allisson/cardvault/internal/tokenization/repository/mysql"
	tokenizationService "github.com/allisson/cardvault/internal/tokenization/service"
	tokenizationUseCase "github.com/allisson/cardvault/internal/tokenization/usecase"
)

// IDGenerator returns the record ID generator.
func (c *Container) IDGenerator() tokenizationService.IDGenerator {
	c.idGeneratorInit.Do(func() {
		c.idGenerator = tokenizationService.NewIDGenerator(rand.Reader)
	})
	return c.idGenerator
}

// TokenGenerator returns the card token generator.
func (c *Container) TokenGenerator() tokenizationService.TokenGenerator {
	c.tokenGeneratorInit.Do(func() {
		c.tokenGenerator = tokenizationService.NewTokenGenerator(c.config.CardTokenPrefix, rand.Reader)
	})
	return c.tokenGenerator
}

// CardTokenRepository returns the card store for the configured driver.
func (c *Container) CardTokenRepository() (tokenizationUseCase.CardTokenRepository, error) {
	var err error
	c.cardRepositoryInit.Do(func() {
		c.cardRepository, err = c.initCardTokenRepository()
		if err != nil {
			c.setInitError("cardRepository", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("cardRepository"); storedErr != nil {
		return nil, storedErr
	}
	return c.cardRepository, nil
}

// CardUseCase returns the card use case wrapped with business metrics.
func (c *Container) CardUseCase() (tokenizationUseCase.CardUseCase, error) {
	var err error
	c.cardUseCaseInit.Do(func() {
		c.cardUseCase, err = c.initCardUseCase()
		if err != nil {
			c.setInitError("cardUseCase", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("cardUseCase"); storedErr != nil {
		return nil, storedErr
	}
	return c.cardUseCase, nil
}

// CardHandler returns the card HTTP handler.
func (c *Container) CardHandler() (*tokenizationHTTP.CardHandler, error) {
	var err error
	c.cardHandlerInit.Do(func() {
		c.cardHandler, err = c.initCardHandler()
		if err != nil {
			c.setInitError("cardHandler", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("cardHandler"); storedErr != nil {
		return nil, storedErr
	}
	return c.cardHandler, nil
}

func (c *Container) initCardTokenRepository() (tokenizationUseCase.CardTokenRepository, error) {
	if c.config.DBDriver == config.DriverMemory {
		return tokenizationRepository.NewMemoryCardTokenRepository(), nil
	}

	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for card repository: %w", err)
	}

	switch c.config.DBDriver {
	case config.DriverPostgres:
		return tokenizationRepository.NewPostgreSQLCardTokenRepository(db), nil
	case config.DriverMySQL:
		return tokenizationMySQL.NewMySQLCardTokenRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initCardUseCase() (tokenizationUseCase.CardUseCase, error) {
	repo, err := c.CardTokenRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get card repository for card use case: %w", err)
	}

	cardCipher, err := c.CardCipher()
	if err != nil {
		return nil, fmt.Errorf("failed to get card cipher for card use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for card use case: %w", err)
	}

	useCase := tokenizationUseCase.NewCardUseCase(
		repo,
		cardCipher,
		c.IDGenerator(),
		c.TokenGenerator(),
		c.config.CardRequireLuhn,
	)
	return tokenizationUseCase.NewCardUseCaseWithMetrics(useCase, businessMetrics), nil
}

func (c *Container) initCardHandler() (*tokenizationHTTP.CardHandler, error) {
	useCase, err := c.CardUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get card use case for card handler: %w", err)
	}
	return tokenizationHTTP.NewCardHandler(useCase, c.Logger()), nil
}
