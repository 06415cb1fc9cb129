/*
Package tokenization replaces primary account numbers (PANs) with opaque tokens.

Every distinct card is stored exactly once. A record holds a keyed HMAC fingerprint
of the normalized PAN (the equality key), the PAN encrypted with an AEAD cipher, and
display fields that are safe to show (BIN, last four digits, brand, expiry).

# Architecture

  - domain: CardToken, PAN normalization, result types and errors
  - service: record id and token generation
  - usecase: create-or-get, lookup and reveal orchestration
  - repository: PostgreSQL, MySQL and in-memory stores
  - http: HTTP handlers and DTOs

# Idempotency

CreateOrGet first looks the fingerprint up. On a miss it inserts with an
insert-if-absent primitive; a concurrent writer that won the race is detected
through the store's uniqueness constraint and its record is returned instead:

	result, err := cardUseCase.CreateOrGet(ctx, domain.CardInput{
	    Pan:         "4111 1111 1111 1111",
	    Brand:       "VISA",
	    ExpiryMonth: 12,
	    ExpiryYear:  2030,
	})
	// result.Duplicate reports whether the card already existed

Lookup never creates:

	ref, found, err := cardUseCase.Lookup(ctx, "4111111111111111")
*/
package tokenization
