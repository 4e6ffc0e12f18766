package app

import (
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/freelancehub/pkg/cryptox"
	"github.com/aussiebroadwan/freelancehub/pkg/jwtx"
)

// TokenKeys holds everything derived from the signing secret.
type TokenKeys struct {
	Signer          *jwtx.HS256Signer
	SessionVerifier *jwtx.HS256Verifier
	ResetVerifier   *jwtx.HS256Verifier
}

// InitTokenKeys loads the HMAC secret from cfg.SecretFile, generating it on
// first start. Sessions and reset tokens share the secret; the typ claim
// keeps one from being accepted as the other.
//
// Replacing the secret file invalidates every session and reset link.
func InitTokenKeys(cfg Config, logger *slog.Logger) (*TokenKeys, error) {
	secret, err := cryptox.LoadOrCreateSecret(cfg.SecretFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load signing secret: %w", err)
	}

	signer, err := jwtx.NewSignerHS256(secret)
	if err != nil {
		return nil, err
	}
	sessions, err := jwtx.NewVerifierHS256(secret, cfg.Issuer, jwtx.TypeSession)
	if err != nil {
		return nil, err
	}
	resets, err := jwtx.NewVerifierHS256(secret, cfg.Issuer, jwtx.TypePasswordReset)
	if err != nil {
		return nil, err
	}

	logger.Info("signing secret loaded", "alg", signer.Alg(), "issuer", cfg.Issuer)
	return &TokenKeys{
		Signer:          signer,
		SessionVerifier: sessions,
		ResetVerifier:   resets,
	}, nil
}
