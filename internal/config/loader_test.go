package config_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-labs/gitremotes/internal/config"
	"github.com/smykla-labs/gitremotes/internal/provider"
)

var _ = Describe("Loader", func() {
	var (
		homeDir string
		repoDir string
		loader  *config.Loader
	)

	writeConfig := func(dir, content string) {
		configDir := filepath.Join(dir, ".gitremotes")
		Expect(os.MkdirAll(configDir, 0o755)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(content), 0o600)).To(Succeed())
	}

	BeforeEach(func() {
		var err error

		homeDir, err = os.MkdirTemp("", "config-home-*")
		Expect(err).NotTo(HaveOccurred())

		repoDir, err = os.MkdirTemp("", "config-repo-*")
		Expect(err).NotTo(HaveOccurred())

		loader = config.NewLoaderWithHome(homeDir)
	})

	AfterEach(func() {
		Expect(os.RemoveAll(homeDir)).To(Succeed())
		Expect(os.RemoveAll(repoDir)).To(Succeed())
	})

	It("loads defaults when no config files exist", func() {
		cfg, err := loader.Load(repoDir)

		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Providers.Disabled).To(BeEmpty())
		Expect(cfg.Providers.Custom).To(BeEmpty())
	})

	It("reads the global config", func() {
		writeConfig(homeDir, `
[providers]
disabled = ["bitbucket"]
`)

		cfg, err := loader.Load(repoDir)

		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Providers.Disabled).To(Equal([]string{"bitbucket"}))
	})

	It("lets the repository config override the global config", func() {
		writeConfig(homeDir, `
[providers]
disabled = ["bitbucket"]
`)
		writeConfig(repoDir, `
[providers]
disabled = ["gitea"]
`)

		cfg, err := loader.Load(repoDir)

		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Providers.Disabled).To(Equal([]string{"gitea"}))
	})

	It("parses custom signatures", func() {
		writeConfig(repoDir, `
[[providers.custom]]
name = "Corp GitLab"
kind = "gitlab"
host = "git.corp.example.com"
`)

		cfg, err := loader.Load(repoDir)

		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Providers.Custom).To(HaveLen(1))
		Expect(cfg.Providers.Custom[0].Host).To(Equal("git.corp.example.com"))

		signatures := cfg.Signatures()
		Expect(signatures[0].Name).To(Equal("Corp GitLab"))
		Expect(signatures[0].Kind).To(Equal(provider.KindGitLab))
	})

	It("skips the repository layer for an empty repo path", func() {
		writeConfig(homeDir, `
[providers]
disabled = ["azure"]
`)

		cfg, err := loader.Load("")

		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Providers.Disabled).To(Equal([]string{"azure"}))
	})

	It("rejects invalid TOML", func() {
		writeConfig(repoDir, "providers = [not toml")

		_, err := loader.Load(repoDir)

		Expect(err).To(MatchError(config.ErrInvalidTOML))
	})
})

var _ = Describe("Config signatures", func() {
	It("skips custom signatures without a host", func() {
		cfg := &config.Config{
			Providers: config.ProvidersConfig{
				Custom: []config.CustomSignature{{Name: "broken", Kind: "github"}},
			},
		}

		for _, sig := range cfg.Signatures() {
			Expect(sig.Name).NotTo(Equal("broken"))
		}
	})

	It("feeds integrations into the signature set", func() {
		cfg := &config.Config{
			Providers:    config.ProvidersConfig{Disabled: []string{"github"}},
			Integrations: config.IntegrationsConfig{Enabled: []string{"github"}},
		}

		kinds := make([]provider.Kind, 0)
		for _, sig := range cfg.Signatures() {
			kinds = append(kinds, sig.Kind)
		}

		Expect(kinds).To(ContainElement(provider.KindGitHub))
	})
})
