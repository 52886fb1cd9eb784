package site_test

import (
	"os"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/hugoinit/hugoinit/pkg/io/marshaller"
	"github.com/hugoinit/hugoinit/pkg/site"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	exitCode := m.Run()

	_, err := snaps.Clean(m, snaps.CleanOpts{Sort: true})
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to clean snapshots: " + err.Error() + "\n")

		os.Exit(1)
	}

	os.Exit(exitCode)
}

func TestBaseURL(t *testing.T) {
	t.Parallel()

	require.Equal(
		t,
		"https://octocat.github.io/MyFreshWebsite/",
		site.BaseURL("octocat", "MyFreshWebsite"),
	)
}

func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := site.NewConfig("MyFreshWebsite", "octocat", "PaperMod")

	require.Equal(t, "https://octocat.github.io/MyFreshWebsite/", cfg.BaseURL)
	require.Equal(t, "MyFreshWebsite", cfg.Title)
	require.Equal(t, "PaperMod", cfg.Theme)
	require.True(t, cfg.EnableRobotsTXT)
	require.True(t, cfg.Minify.DisableXML)
	require.True(t, cfg.Minify.MinifyOutput)
}

func TestNewConfigMenuEntries(t *testing.T) {
	t.Parallel()

	cfg := site.NewConfig("MyFreshWebsite", "octocat", "PaperMod")

	require.Len(t, cfg.Menu.Main, 3)

	tests := []struct {
		identifier string
		name       string
		url        string
		weight     int
	}{
		{identifier: "home", name: "Home", url: "/", weight: 10},
		{identifier: "archive", name: "Archive", url: "/archives/", weight: 12},
		{identifier: "search", name: "Search", url: "/search/", weight: 15},
	}

	for index, expected := range tests {
		entry := cfg.Menu.Main[index]

		require.Equal(t, expected.identifier, entry.Identifier)
		require.Equal(t, expected.name, entry.Name)
		require.Equal(t, expected.url, entry.URL)
		require.Equal(t, expected.weight, entry.Weight)
	}
}

func TestConfigMarshalsWithExpectedKeys(t *testing.T) {
	t.Parallel()

	cfg := site.NewConfig("MyFreshWebsite", "octocat", "PaperMod")

	out, err := marshaller.NewYAMLMarshaller[site.Config]().Marshal(cfg)

	require.NoError(t, err)
	require.Contains(t, out, "baseURL: https://octocat.github.io/MyFreshWebsite/")
	require.Contains(t, out, "title: MyFreshWebsite")
	snaps.MatchSnapshot(t, out)
}

func TestFrontMatterPages(t *testing.T) {
	t.Parallel()

	archives := site.NewArchivesPage()

	require.Equal(t, "archives", archives.Layout)
	require.Equal(t, "/archives/", archives.URL)
	require.Empty(t, archives.Placeholder)
	require.Empty(t, archives.Description)

	search := site.NewSearchPage()

	require.Equal(t, "search", search.Layout)
	require.Equal(t, "/search/", search.URL)
	require.Equal(t, "Search...", search.Placeholder)
	require.NotEmpty(t, search.Description)
}

func TestNewDeployWorkflow(t *testing.T) {
	t.Parallel()

	workflow := site.NewDeployWorkflow("main")

	require.Equal(t, []string{"main"}, workflow.On.Push.Branches)

	job, ok := workflow.Jobs["deploy"]
	require.True(t, ok)
	require.Equal(t, "ubuntu-latest", job.RunsOn)
	require.Len(t, job.Steps, 4)

	checkout := job.Steps[0]
	require.Equal(t, "actions/checkout@v4", checkout.Uses)
	require.Equal(t, true, checkout.With["submodules"])
	require.Equal(t, 0, checkout.With["fetch-depth"])

	build := job.Steps[2]
	require.Equal(t, "hugo --minify", build.Run)

	deploy := job.Steps[3]
	require.Equal(t, "${{ secrets.GITHUB_TOKEN }}", deploy.With["github_token"])
	require.Equal(t, "./public", deploy.With["publish_dir"])
	require.Equal(t, "github.ref == 'refs/heads/main'", deploy.If)
}
