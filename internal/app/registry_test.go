package app_test

import (
	"principal-passwd/internal/adapters/out/metrics"
	"principal-passwd/internal/app"
	"principal-passwd/internal/app/config"
	"principal-passwd/internal/app/ports"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func testRegistryConfig() config.RegistryConfig {
	cfg, err := config.DefaultConfig()
	Expect(err).ToNot(HaveOccurred())
	cfg.Registry.BCrypt.Cost = 4
	cfg.Registry.BCryptKDF.Rounds = 51
	return cfg.Registry
}

var _ = Describe("BuildRegistry", func() {

	It("registers all schemes in the canonical order", func() {
		registry, err := app.BuildRegistry(testRegistryConfig())
		Expect(err).ToNot(HaveOccurred())

		var names []string
		for _, e := range registry.Entries() {
			names = append(names, e.Name)
		}
		Expect(names).To(Equal([]string{
			ports.SchemePlainText, ports.SchemeMD5, ports.SchemeSMD5,
			ports.SchemeSHA1, ports.SchemeSSHA, ports.SchemeMySQL,
			ports.SchemeCrypt, ports.SchemeBCrypt, ports.SchemeBCryptKDF,
		}))
	})

	It("keeps the canonical order regardless of configuration order", func() {
		cfg := testRegistryConfig()
		cfg.EnabledSchemes = []string{ports.SchemeBCrypt, ports.SchemeMD5, ports.SchemeSSHA}
		registry, err := app.BuildRegistry(cfg)
		Expect(err).ToNot(HaveOccurred())

		var names []string
		for _, e := range registry.Entries() {
			names = append(names, e.Name)
		}
		Expect(names).To(Equal([]string{ports.SchemeMD5, ports.SchemeSSHA, ports.SchemeBCrypt}))
	})

	It("fails on an unknown scheme name", func() {
		cfg := testRegistryConfig()
		cfg.EnabledSchemes = append(cfg.EnabledSchemes, "ROT13")
		_, err := app.BuildRegistry(cfg)
		Expect(err).To(MatchError(ports.ErrUnsupportedScheme))
	})

	It("fails on invalid tunables", func() {
		cfg := testRegistryConfig()
		cfg.BCrypt.Cost = 99
		_, err := app.BuildRegistry(cfg)
		Expect(err).To(HaveOccurred())

		cfg = testRegistryConfig()
		cfg.BCryptKDF.Rounds = 10
		_, err = app.BuildRegistry(cfg)
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Registry", func() {
	var registry *app.Registry

	BeforeEach(func() {
		var err error
		registry, err = app.BuildRegistry(testRegistryConfig())
		Expect(err).ToNot(HaveOccurred())
	})

	It("looks up a manager by exact name", func() {
		manager, ok := registry.Lookup(ports.SchemeSSHA)
		Expect(ok).To(BeTrue())
		Expect(manager).ToNot(BeNil())

		_, ok = registry.Lookup("ssha")
		Expect(ok).To(BeFalse())
	})

	It("finds the owning scheme of a tagged credential", func() {
		manager, _ := registry.Lookup(ports.SchemeSSHA)
		encoded, err := manager.Encode("secret", nil)
		Expect(err).ToNot(HaveOccurred())

		name, found, ok := registry.Find(encoded)
		Expect(ok).To(BeTrue())
		Expect(name).To(Equal(ports.SchemeSSHA))
		Expect(found.Check(encoded, "secret")).To(BeTrue())
	})

	It("finds BCRYPT for a bare native-format hash", func() {
		manager, _ := registry.Lookup(ports.SchemeBCrypt)
		encoded, err := manager.Encode("secret", nil)
		Expect(err).ToNot(HaveOccurred())
		bare := encoded[len("{BCRYPT}"):]

		name, _, ok := registry.Find(bare)
		Expect(ok).To(BeTrue())
		Expect(name).To(Equal(ports.SchemeBCrypt))
	})

	It("never resolves a plain-text value", func() {
		_, _, ok := registry.Find("secret")
		Expect(ok).To(BeFalse())
	})

	It("is not affected by mutation of the Entries result", func() {
		entries := registry.Entries()
		entries[0], entries[len(entries)-1] = entries[len(entries)-1], entries[0]
		entries[1] = ports.RegistryEntry{Name: "bogus", Manager: nil}

		fresh := registry.Entries()
		Expect(fresh[0].Name).To(Equal(ports.SchemePlainText))
		Expect(fresh[1].Name).To(Equal(ports.SchemeMD5))
		Expect(fresh[len(fresh)-1].Name).To(Equal(ports.SchemeBCryptKDF))
	})
})

var _ = Describe("BuildInstrumentedRegistry", func() {
	It("wraps managers while preserving behavior", func() {
		registry, err := app.BuildInstrumentedRegistry(testRegistryConfig(), &metrics.FakeOpMetrics{})
		Expect(err).ToNot(HaveOccurred())

		manager, ok := registry.Lookup(ports.SchemeMD5)
		Expect(ok).To(BeTrue())
		encoded, err := manager.Encode("secret", nil)
		Expect(err).ToNot(HaveOccurred())
		Expect(encoded).To(Equal("{MD5}Xr4ilOzQ4PCOq3aQ0qbuaQ=="))
		Expect(manager.Check(encoded, "secret")).To(BeTrue())
		Expect(manager.Check(encoded, "wrong")).To(BeFalse())
	})
})
