package app

import (
	"fmt"
	"sort"

	"principal-passwd/internal/adapters/in/cli"
	"principal-passwd/internal/adapters/out/metrics"
	"principal-passwd/internal/adapters/out/security"
	"principal-passwd/internal/app/config"
	"principal-passwd/internal/app/ports"
)

// BuildRegistry constructs the scheme registry in its canonical order,
// honoring the enabled-schemes configuration. Construction is the only
// place where availability and tunable validation happen; afterwards the
// registry is immutable.
func BuildRegistry(cfg config.RegistryConfig) (*Registry, error) {
	enabled := make(map[string]bool, len(cfg.EnabledSchemes))
	for _, name := range cfg.EnabledSchemes {
		enabled[name] = true
	}

	var entries []ports.RegistryEntry
	add := func(name string, m ports.PasswordManager) {
		if enabled[name] {
			entries = append(entries, ports.RegistryEntry{Name: name, Manager: m})
			delete(enabled, name)
		}
	}

	add(ports.SchemePlainText, security.NewPlainTextManager())
	add(ports.SchemeMD5, security.NewMD5Manager())
	add(ports.SchemeSMD5, security.NewSMD5Manager())
	add(ports.SchemeSHA1, security.NewSHA1Manager())
	add(ports.SchemeSSHA, security.NewSSHAManager())
	add(ports.SchemeMySQL, security.NewMySQLManager())
	add(ports.SchemeCrypt, security.NewCryptManager())
	if enabled[ports.SchemeBCrypt] {
		m, err := security.NewBCryptManager(cfg.BCrypt.Cost)
		if err != nil {
			return nil, fmt.Errorf("cannot create BCRYPT manager: %w", err)
		}
		add(ports.SchemeBCrypt, m)
	}
	if enabled[ports.SchemeBCryptKDF] {
		m, err := security.NewBCryptKDFManager(cfg.BCryptKDF.Rounds, cfg.BCryptKDF.KeyLen)
		if err != nil {
			return nil, fmt.Errorf("cannot create BCRYPTKDF manager: %w", err)
		}
		add(ports.SchemeBCryptKDF, m)
	}

	if len(enabled) != 0 {
		unknown := make([]string, 0, len(enabled))
		for name := range enabled {
			unknown = append(unknown, name)
		}
		sort.Strings(unknown)
		return nil, fmt.Errorf("%w: unknown scheme(s) in configuration: %v", ports.ErrUnsupportedScheme, unknown)
	}
	return NewRegistry(entries)
}

// BuildInstrumentedRegistry is BuildRegistry with every manager reporting
// operation outcomes to opMetrics; meant for services that embed the
// registry and scrape metrics.
func BuildInstrumentedRegistry(cfg config.RegistryConfig, opMetrics ports.OpMetrics) (*Registry, error) {
	registry, err := BuildRegistry(cfg)
	if err != nil {
		return nil, err
	}
	wrapped := make([]ports.RegistryEntry, 0, len(registry.Entries()))
	for _, e := range registry.Entries() {
		wrapped = append(wrapped, ports.RegistryEntry{
			Name:    e.Name,
			Manager: metrics.NewInstrumentedManager(e.Name, e.Manager, opMetrics),
		})
	}
	return NewRegistry(wrapped)
}

// BuildPrincipalTool wires the interactive principal application.
func BuildPrincipalTool(cfg *config.ProgramConfig) (*cli.Application, error) {
	registry, err := BuildRegistry(cfg.Registry)
	if err != nil {
		return nil, fmt.Errorf("cannot build scheme registry: %w", err)
	}
	return cli.NewApplication(cfg.Tool, registry), nil
}
