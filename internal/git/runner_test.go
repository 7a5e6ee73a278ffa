package git_test

import (
	"context"
	"os"
	osexec "os/exec"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	gogit "github.com/go-git/go-git/v6"
	gogitconfig "github.com/go-git/go-git/v6/config"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-labs/gitremotes/internal/exec"
	"github.com/smykla-labs/gitremotes/internal/git"
)

// fakeExecRunner records invocations and replays canned output.
type fakeExecRunner struct {
	mu     sync.Mutex
	dirs   []string
	calls  [][]string
	stdout string
	err    error
}

func (f *fakeExecRunner) Run(_ context.Context, workingDir, name string, args ...string) (*exec.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.dirs = append(f.dirs, workingDir)
	f.calls = append(f.calls, append([]string{name}, args...))

	return &exec.Result{Stdout: f.stdout}, f.err
}

var _ = Describe("CLIRunner", func() {
	var (
		fake   *fakeExecRunner
		runner *git.CLIRunner
		ctx    context.Context
	)

	BeforeEach(func() {
		fake = &fakeExecRunner{}
		runner = git.NewCLIRunner(fake)
		ctx = context.Background()
	})

	It("lists remotes via `git remote -v` in the repository directory", func() {
		fake.stdout = "origin\thttps://a (fetch)\n"

		output, err := runner.ListRemotes(ctx, "/repo")

		Expect(err).NotTo(HaveOccurred())
		Expect(output).To(Equal("origin\thttps://a (fetch)\n"))
		Expect(fake.dirs).To(Equal([]string{"/repo"}))
		Expect(fake.calls).To(Equal([][]string{{"git", "remote", "-v"}}))
	})

	It("adds a remote with -f when fetch is requested", func() {
		Expect(runner.AddRemote(ctx, "/repo", "origin", "https://x", true)).To(Succeed())

		Expect(fake.calls).To(Equal([][]string{
			{"git", "remote", "add", "-f", "origin", "https://x"},
		}))
	})

	It("adds a remote without -f by default", func() {
		Expect(runner.AddRemote(ctx, "/repo", "origin", "https://x", false)).To(Succeed())

		Expect(fake.calls).To(Equal([][]string{
			{"git", "remote", "add", "origin", "https://x"},
		}))
	})

	It("prunes and removes remotes with the expected argv", func() {
		Expect(runner.PruneRemote(ctx, "/repo", "origin")).To(Succeed())
		Expect(runner.RemoveRemote(ctx, "/repo", "origin")).To(Succeed())

		Expect(fake.calls).To(Equal([][]string{
			{"git", "remote", "prune", "origin"},
			{"git", "remote", "remove", "origin"},
		}))
	})

	Context("against a real repository", func() {
		var tempDir string

		BeforeEach(func() {
			if _, err := osexec.LookPath("git"); err != nil {
				Skip("git binary not available")
			}

			var err error

			tempDir, err = os.MkdirTemp("", "cli-runner-test-*")
			Expect(err).NotTo(HaveOccurred())

			repo, err := gogit.PlainInit(tempDir, false)
			Expect(err).NotTo(HaveOccurred())

			_, err = repo.CreateRemote(&gogitconfig.RemoteConfig{
				Name: "origin",
				URLs: []string{"https://github.com/user/repo.git"},
			})
			Expect(err).NotTo(HaveOccurred())
		})

		AfterEach(func() {
			if tempDir != "" {
				Expect(os.RemoveAll(tempDir)).To(Succeed())
			}
		})

		It("round-trips the remote through the git binary", func() {
			real := git.NewCLIRunner(exec.NewRunner())

			output, err := real.ListRemotes(context.Background(), tempDir)

			Expect(err).NotTo(HaveOccurred())
			Expect(output).To(ContainSubstring("origin"))
			Expect(output).To(ContainSubstring("https://github.com/user/repo.git"))
			Expect(output).To(ContainSubstring("(fetch)"))
		})

		It("surfaces a ProcessError outside a repository", func() {
			outside, err := os.MkdirTemp("", "not-a-repo-*")
			Expect(err).NotTo(HaveOccurred())

			defer func() { _ = os.RemoveAll(outside) }()

			real := git.NewCLIRunner(exec.NewRunner())

			_, err = real.ListRemotes(context.Background(), outside)

			var processErr *exec.ProcessError
			Expect(errors.As(err, &processErr)).To(BeTrue())
			Expect(processErr.ExitCode).NotTo(BeZero())
		})

		It("adds and removes a remote for real", func() {
			real := git.NewCLIRunner(exec.NewRunner())
			ctx := context.Background()

			Expect(real.AddRemote(ctx, tempDir, "mirror", "https://gitlab.com/user/repo.git", false)).To(Succeed())

			output, err := real.ListRemotes(ctx, tempDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(output).To(ContainSubstring("mirror"))

			Expect(real.RemoveRemote(ctx, tempDir, "mirror")).To(Succeed())

			output, err = real.ListRemotes(ctx, tempDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(strings.Contains(output, "mirror")).To(BeFalse())
		})
	})
})
