// Package provider classifies remote URLs against known hosting-provider signatures.
package provider

// Kind identifies a known hosting provider.
type Kind string

const (
	// KindGitHub identifies GitHub and GitHub Enterprise hosts.
	KindGitHub Kind = "github"

	// KindGitLab identifies GitLab hosts.
	KindGitLab Kind = "gitlab"

	// KindBitbucket identifies Bitbucket hosts.
	KindBitbucket Kind = "bitbucket"

	// KindGitea identifies Gitea hosts.
	KindGitea Kind = "gitea"

	// KindAzure identifies Azure DevOps hosts.
	KindAzure Kind = "azure"
)

// Signature is a matching rule classifying a remote URL host as a provider.
// Host is matched as an exact host or a dot-separated suffix, so "github.com"
// matches both "github.com" and "gist.github.com".
type Signature struct {
	Name string
	Kind Kind
	Host string
}

// builtinSignatures lists the well-known hosting providers, scanned in order.
var builtinSignatures = []Signature{
	{Name: "GitHub", Kind: KindGitHub, Host: "github.com"},
	{Name: "GitLab", Kind: KindGitLab, Host: "gitlab.com"},
	{Name: "Bitbucket", Kind: KindBitbucket, Host: "bitbucket.org"},
	{Name: "Gitea", Kind: KindGitea, Host: "gitea.com"},
	{Name: "Azure DevOps", Kind: KindAzure, Host: "dev.azure.com"},
}

// Load builds the signature list for one repository fetch.
// Custom signatures take precedence over built-ins. A built-in whose kind
// appears in disabled is skipped unless a configured integration re-enables it.
// The result is rebuilt on every call so configuration edits apply on the
// next fetch; it is never cached here.
func Load(custom []Signature, disabled []string, integrations []string) []Signature {
	enabled := make(map[string]bool, len(integrations))
	for _, id := range integrations {
		enabled[id] = true
	}

	masked := make(map[string]bool, len(disabled))

	for _, kind := range disabled {
		if !enabled[kind] {
			masked[kind] = true
		}
	}

	signatures := make([]Signature, 0, len(custom)+len(builtinSignatures))
	signatures = append(signatures, custom...)

	for _, sig := range builtinSignatures {
		if masked[string(sig.Kind)] {
			continue
		}

		signatures = append(signatures, sig)
	}

	return signatures
}
