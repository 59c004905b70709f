// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package coprocessor

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/confidential-vault/internal/config"
	"github.com/MKhiriev/confidential-vault/internal/logger"
	"github.com/MKhiriev/confidential-vault/internal/utils"
	"github.com/MKhiriev/confidential-vault/models"
)

// InvokePath is the coprocessor endpoint every request is posted to.
const InvokePath = "/v1/invoke"

// Request headers.
const (
	SignerHeader  = "X-Signer"
	TraceIDHeader = "X-Trace-ID"
)

const defaultTokenDuration = time.Minute

type httpTransport struct {
	client *utils.HTTPClient

	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewHTTPTransport posts raw requests to the coprocessor at cfg.HTTPAddress.
// When cfg.TokenSignKey is set every call carries a short-lived HS256 bearer
// token whose subject is the signer.
func NewHTTPTransport(cfg config.Adapter, logger *logger.Logger) (Transport, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid coprocessor address: %w", err)
	}

	duration := cfg.TokenDuration
	if duration == 0 {
		duration = defaultTokenDuration
	}

	logger.Info().Str("base_url", baseURL).Msg("coprocessor http transport created")
	return &httpTransport{
		client:        utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: duration,
		logger:        logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Invoke implements [Transport].
func (t *httpTransport) Invoke(ctx context.Context, signer models.AccountID, request []byte) ([]byte, error) {
	req := t.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/octet-stream").
		SetHeader(SignerHeader, signer.String()).
		SetBody(request)

	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(TraceIDHeader, traceID)
	}

	if t.tokenSignKey != "" {
		token, err := utils.GenerateJWTToken(t.tokenIssuer, signer.String(), t.tokenDuration, t.tokenSignKey)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
		}
		req.SetAuthToken(token)
	}

	resp, err := req.Post(InvokePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}
