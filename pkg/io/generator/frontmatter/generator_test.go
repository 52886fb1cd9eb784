package frontmattergenerator_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	frontmattergenerator "github.com/hugoinit/hugoinit/pkg/io/generator/frontmatter"
	yamlgenerator "github.com/hugoinit/hugoinit/pkg/io/generator/yaml"
	"github.com/hugoinit/hugoinit/pkg/site"
	"github.com/stretchr/testify/require"
)

func TestGenerateDelimitsFrontMatter(t *testing.T) {
	t.Parallel()

	gen := frontmattergenerator.NewGenerator[site.FrontMatter]()

	out, err := gen.Generate(site.NewArchivesPage(), yamlgenerator.Options{})

	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "---\n"))
	require.True(t, strings.HasSuffix(out, "---\n"))
	require.Contains(t, out, "title: Archive\n")
	require.Contains(t, out, "layout: archives\n")
	require.Contains(t, out, "url: /archives/\n")
	require.NotContains(t, out, "placeholder")
}

func TestGenerateSearchPageIncludesOptionalFields(t *testing.T) {
	t.Parallel()

	gen := frontmattergenerator.NewGenerator[site.FrontMatter]()

	out, err := gen.Generate(site.NewSearchPage(), yamlgenerator.Options{})

	require.NoError(t, err)
	require.Contains(t, out, "placeholder: Search...\n")
	require.Contains(t, out, "description: Search the site\n")
}

func TestGenerateWritesDocument(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	output := filepath.Join(tempDir, "content", "archives.md")

	gen := frontmattergenerator.NewGenerator[site.FrontMatter]()

	out, err := gen.Generate(site.NewArchivesPage(), yamlgenerator.Options{Output: output})
	require.NoError(t, err)

	written, err := os.ReadFile(output)
	require.NoError(t, err)
	require.Equal(t, out, string(written))
}
