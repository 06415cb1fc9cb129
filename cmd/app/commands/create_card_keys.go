package commands

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"

	cryptoDomain "github.com/allisson/cardvault/internal/crypto/domain"
	cryptoService "github.com/allisson/cardvault/internal/crypto/service"
)

// RunCreateCardKeys generates a fingerprint key and a PAN encryption key and
// prints them as environment variables.
//
// Without kmsKeyURI both keys are printed as hex. With kmsKeyURI each key is
// encrypted by the KMS keeper and printed as base64 ciphertext, and the KMS
// variables are printed too. Plaintext key material is zeroed before returning.
func RunCreateCardKeys(
	ctx context.Context,
	kmsService cryptoService.KMSService,
	logger *slog.Logger,
	writer io.Writer,
	algorithm string,
	kmsProvider string,
	kmsKeyURI string,
) error {
	alg := cryptoDomain.Algorithm(algorithm)
	if alg != cryptoDomain.AESGCM && alg != cryptoDomain.ChaCha20 {
		return fmt.Errorf("invalid algorithm: %s (valid options: aes-gcm, chacha20-poly1305)", algorithm)
	}
	if (kmsProvider == "") != (kmsKeyURI == "") {
		return fmt.Errorf("--kms-provider and --kms-key-uri must be used together")
	}

	macKey := make([]byte, cryptoDomain.DefaultMACKeySize)
	defer cryptoDomain.Zero(macKey)
	aeadKey := make([]byte, cryptoDomain.AEADKeySize)
	defer cryptoDomain.Zero(aeadKey)

	if _, err := rand.Read(macKey); err != nil {
		return fmt.Errorf("failed to generate mac key: %w", err)
	}
	if _, err := rand.Read(aeadKey); err != nil {
		return fmt.Errorf("failed to generate aead key: %w", err)
	}

	if kmsKeyURI == "" {
		logger.Warn("card keys generated without KMS, store them in a secrets manager")

		_, _ = fmt.Fprintln(writer, "# Card Key Configuration")
		_, _ = fmt.Fprintln(writer, "# Copy these environment variables to your .env file or secrets manager")
		_, _ = fmt.Fprintln(writer)
		_, _ = fmt.Fprintf(writer, "CARD_MAC_KEY=\"%s\"\n", hex.EncodeToString(macKey))
		_, _ = fmt.Fprintf(writer, "CARD_AEAD_KEY=\"%s\"\n", hex.EncodeToString(aeadKey))
		_, _ = fmt.Fprintf(writer, "CARD_AEAD_ALGORITHM=\"%s\"\n", algorithm)
		return nil
	}

	keeper, err := kmsService.OpenKeeper(ctx, kmsKeyURI)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := keeper.Close(); closeErr != nil {
			logger.Warn("failed to close KMS keeper", slog.Any("error", closeErr))
		}
	}()

	wrappedMACKey, err := keeper.Encrypt(ctx, macKey)
	if err != nil {
		return fmt.Errorf("failed to encrypt mac key with KMS: %w", err)
	}
	wrappedAEADKey, err := keeper.Encrypt(ctx, aeadKey)
	if err != nil {
		return fmt.Errorf("failed to encrypt aead key with KMS: %w", err)
	}

	logger.Info("card keys generated", slog.String("kms_provider", kmsProvider))

	_, _ = fmt.Fprintln(writer, "# Card Key Configuration (KMS Mode)")
	_, _ = fmt.Fprintln(writer, "# Copy these environment variables to your .env file or secrets manager")
	_, _ = fmt.Fprintln(writer)
	_, _ = fmt.Fprintf(writer, "KMS_PROVIDER=\"%s\"\n", kmsProvider)
	_, _ = fmt.Fprintf(writer, "KMS_KEY_URI=\"%s\"\n", kmsKeyURI)
	_, _ = fmt.Fprintf(writer, "CARD_MAC_KEY=\"%s\"\n", base64.StdEncoding.EncodeToString(wrappedMACKey))
	_, _ = fmt.Fprintf(writer, "CARD_AEAD_KEY=\"%s\"\n", base64.StdEncoding.EncodeToString(wrappedAEADKey))
	_, _ = fmt.Fprintf(writer, "CARD_AEAD_ALGORITHM=\"%s\"\n", algorithm)
	return nil
}
