package exec_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-labs/gitremotes/internal/exec"
)

var _ = Describe("Runner", func() {
	var (
		runner exec.Runner
		ctx    context.Context
	)

	BeforeEach(func() {
		runner = exec.NewRunner()
		ctx = context.Background()
	})

	Describe("Run", func() {
		It("captures stdout", func() {
			result, err := runner.Run(ctx, "", "echo", "hello")

			Expect(err).NotTo(HaveOccurred())
			Expect(result.Stdout).To(Equal("hello\n"))
		})

		It("captures stderr", func() {
			result, err := runner.Run(ctx, "", "sh", "-c", "echo oops >&2")

			Expect(err).NotTo(HaveOccurred())
			Expect(result.Stderr).To(Equal("oops\n"))
		})

		It("runs in the given working directory", func() {
			tempDir, err := os.MkdirTemp("", "exec-test-*")
			Expect(err).NotTo(HaveOccurred())

			defer func() { _ = os.RemoveAll(tempDir) }()

			// Resolve symlinks (macOS /var -> /private/var)
			tempDir, err = filepath.EvalSymlinks(tempDir)
			Expect(err).NotTo(HaveOccurred())

			result, err := runner.Run(ctx, tempDir, "pwd")
			Expect(err).NotTo(HaveOccurred())
			Expect(strings.TrimSpace(result.Stdout)).To(Equal(tempDir))
		})

		It("returns a ProcessError with the exit code and stderr", func() {
			result, err := runner.Run(ctx, "", "sh", "-c", "echo broken >&2; exit 42")

			var processErr *exec.ProcessError
			Expect(errors.As(err, &processErr)).To(BeTrue())
			Expect(processErr.ExitCode).To(Equal(42))
			Expect(processErr.Stderr).To(Equal("broken\n"))
			Expect(result.Stderr).To(Equal("broken\n"))
		})

		It("returns a ToolNotFoundError for a missing binary", func() {
			_, err := runner.Run(ctx, "", "definitely-not-a-real-tool-xyz")

			var notFound *exec.ToolNotFoundError
			Expect(errors.As(err, &notFound)).To(BeTrue())
			Expect(notFound.Tool).To(Equal("definitely-not-a-real-tool-xyz"))
		})
	})
})

var _ = Describe("ToolChecker", func() {
	checker := exec.NewToolChecker()

	It("finds tools on PATH", func() {
		Expect(checker.IsAvailable("sh")).To(BeTrue())
		Expect(checker.RequireTool("sh")).To(Succeed())
	})

	It("reports missing tools", func() {
		Expect(checker.IsAvailable("definitely-not-a-real-tool-xyz")).To(BeFalse())

		err := checker.RequireTool("definitely-not-a-real-tool-xyz")

		var notFound *exec.ToolNotFoundError
		Expect(errors.As(err, &notFound)).To(BeTrue())
	})
})

var _ = Describe("ProcessError", func() {
	It("includes command, exit code, and stderr in the message", func() {
		err := &exec.ProcessError{
			Name:     "git",
			Args:     []string{"remote", "-v"},
			ExitCode: 128,
			Stderr:   "fatal: not a git repository\n",
		}

		Expect(err.Error()).To(Equal("git remote -v exited with code 128: fatal: not a git repository"))
	})

	It("omits the stderr suffix when empty", func() {
		err := &exec.ProcessError{Name: "git", Args: []string{"remote", "-v"}, ExitCode: 1}

		Expect(err.Error()).To(Equal("git remote -v exited with code 1"))
	})
})
