package errorhandler_test

import (
	"errors"
	"testing"

	"github.com/hugoinit/hugoinit/pkg/cli/ui/errorhandler"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestExecuteNilCommand(t *testing.T) {
	t.Parallel()

	executor := errorhandler.NewExecutor()

	require.NoError(t, executor.Execute(nil))
}

func TestExecuteSuccessfulCommand(t *testing.T) {
	t.Parallel()

	cmd := &cobra.Command{
		Use:  "ok",
		RunE: func(*cobra.Command, []string) error { return nil },
	}

	executor := errorhandler.NewExecutor()

	require.NoError(t, executor.Execute(cmd))
}

func TestExecutePreservesErrorChain(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")

	cmd := &cobra.Command{
		Use:           "fail",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          func(*cobra.Command, []string) error { return errBoom },
	}

	executor := errorhandler.NewExecutor()

	err := executor.Execute(cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errBoom)

	var commandErr *errorhandler.CommandError

	require.ErrorAs(t, err, &commandErr)
}

func TestNormalizeStripsErrorPrefix(t *testing.T) {
	t.Parallel()

	normalizer := errorhandler.DefaultNormalizer{}

	require.Equal(t, "boom", normalizer.Normalize("Error: boom\n"))
	require.Equal(t, "", normalizer.Normalize("   \n"))
	require.Equal(t, "boom\nusage: fail", normalizer.Normalize("Error: boom\nusage: fail"))
}
