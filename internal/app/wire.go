package app

import (
	"errors"
	"net/http"

	"timecapsule/internal/domain"
	"timecapsule/internal/relay"
	custodysvc "timecapsule/internal/services/custody"
	lettersvc "timecapsule/internal/services/letter"
	proofsvc "timecapsule/internal/services/proof"
	sharingsvc "timecapsule/internal/services/sharing"
	"timecapsule/internal/store"
)

// ErrPassphraseRequired is returned when local custody has no passphrase.
var ErrPassphraseRequired = errors.New("passphrase required for local custody (-p or CAPSULE_PASSPHRASE)")

// Wire bundles all stores, services, and clients for the CLI.
type Wire struct {
	Config    Config
	Shares    *sharingsvc.Service
	Proofs    domain.ProofGenerator
	Custodian domain.ShareCustodian
	Letters   domain.LetterService
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	// Ensure an HTTP client is available for outbound calls
	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}

	// Custodian: remote key server when configured, local share store otherwise
	var custodian domain.ShareCustodian
	if cfg.LocalCustody() {
		custodian = custodysvc.New(store.NewShareFileStore(cfg.Home), cfg.Passphrase, nil)
	} else {
		custodian = relay.NewHTTP(cfg.KeyServer, httpClient)
	}

	// Core services
	shareSvc := sharingsvc.New(nil)
	proofSvc := proofsvc.New(nil)
	letterSvc := lettersvc.New(store.NewLetterFileStore(cfg.Home), custodian, shareSvc, proofSvc, nil)

	return &Wire{
		Config:    cfg,
		Shares:    shareSvc,
		Proofs:    proofSvc,
		Custodian: custodian,
		Letters:   letterSvc,
	}, nil
}

// RequireCustody reports whether the custodian can be used with cfg.
func (w *Wire) RequireCustody() error {
	if w.Config.LocalCustody() && w.Config.Passphrase == "" {
		return ErrPassphraseRequired
	}
	return nil
}
