package app

import (
	"crypto/rand"
	"fmt"

	cryptoDomain "github.com/allisson/cardvault/internal/crypto/domain"
	cryptoService "github.com/allisson/cardvault/internal/crypto/service"
)

// KMSService returns the KMS service used to unwrap card keys.
func (c *Container) KMSService() cryptoService.KMSService {
	c.kmsServiceInit.Do(func() {
		c.kmsService = cryptoService.NewKMSService()
	})
	return c.kmsService
}

// AEADManager returns the AEAD manager service.
func (c *Container) AEADManager() cryptoService.AEADManager {
	c.aeadManagerInit.Do(func() {
		c.aeadManager = cryptoService.NewAEADManager(rand.Reader)
	})
	return c.aeadManager
}

// CardKeys returns the decoded card key material. Loading fails fast on
// malformed or undersized keys.
func (c *Container) CardKeys() (*cryptoDomain.CardKeys, error) {
	var err error
	c.cardKeysInit.Do(func() {
		c.cardKeys, err = c.initCardKeys()
		if err != nil {
			c.setInitError("cardKeys", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("cardKeys"); storedErr != nil {
		return nil, storedErr
	}
	return c.cardKeys, nil
}

// CardCipher returns the fingerprint and PAN encryption engine.
func (c *Container) CardCipher() (cryptoService.CardCipher, error) {
	var err error
	c.cardCipherInit.Do(func() {
		c.cardCipher, err = c.initCardCipher()
		if err != nil {
			c.setInitError("cardCipher", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("cardCipher"); storedErr != nil {
		return nil, storedErr
	}
	return c.cardCipher, nil
}

func (c *Container) initCardKeys() (*cryptoDomain.CardKeys, error) {
	loader := cryptoService.NewKeyLoader(c.KMSService())

	keys, err := loader.Load(c.ctx, cryptoService.KeySource{
		MACKey:    c.config.CardMACKey,
		AEADKey:   c.config.CardAEADKey,
		Algorithm: c.config.CardAEADAlgorithm,
		KMSKeyURI: c.config.KMSKeyURI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load card keys: %w", err)
	}
	return keys, nil
}

func (c *Container) initCardCipher() (cryptoService.CardCipher, error) {
	keys, err := c.CardKeys()
	if err != nil {
		return nil, err
	}

	cardCipher, err := cryptoService.NewCardCipher(keys, c.AEADManager())
	if err != nil {
		return nil, fmt.Errorf("failed to create card cipher: %w", err)
	}
	return cardCipher, nil
}
