package git_test

import (
	"context"
	"errors"
	"testing"

	"github.com/hugoinit/hugoinit/pkg/svc/git"
	"github.com/hugoinit/hugoinit/pkg/svc/runner"
	"github.com/stretchr/testify/require"
)

func TestClientRendersDocumentedSubcommands(t *testing.T) {
	t.Parallel()

	fake := runner.NewFakeRunner()
	client := git.NewClient(fake)
	ctx := context.Background()

	require.NoError(t, client.Init(ctx))
	require.NoError(t, client.AddAll(ctx))
	require.NoError(t, client.Commit(ctx, "Initial commit"))
	require.NoError(t, client.SubmoduleAdd(
		ctx,
		"https://github.com/adityatelange/hugo-PaperMod.git",
		"themes/PaperMod",
	))
	require.NoError(t, client.SubmoduleUpdateInitRecursive(ctx))

	require.Equal(t, []string{
		"git init",
		"git add .",
		"git commit -m Initial commit",
		"git submodule add --depth=1 https://github.com/adityatelange/hugo-PaperMod.git themes/PaperMod",
		"git submodule update --init --recursive",
	}, fake.Strings())
}

func TestClientWrapsRunnerFailure(t *testing.T) {
	t.Parallel()

	fake := runner.NewFakeRunner()

	errInit := errors.New("not a git repository")
	fake.FailOn("git init", errInit)

	client := git.NewClient(fake)

	err := client.Init(context.Background())

	require.Error(t, err)
	require.ErrorIs(t, err, errInit)
	require.Contains(t, err.Error(), "'git init' failed")
}
