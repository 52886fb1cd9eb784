// Package scaffolder materializes the fixed set of files a provisioned site
// is seeded with: configuration, content stubs, footer partial, and deploy
// workflow.
package scaffolder

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hugoinit/hugoinit/pkg/fsutil"
	"github.com/hugoinit/hugoinit/pkg/io/generator"
	frontmattergenerator "github.com/hugoinit/hugoinit/pkg/io/generator/frontmatter"
	yamlgenerator "github.com/hugoinit/hugoinit/pkg/io/generator/yaml"
	"github.com/hugoinit/hugoinit/pkg/site"
	"github.com/hugoinit/hugoinit/pkg/utils/notify"
)

// Relative paths of the scaffolded files inside the site directory. These
// are fixed: the theme and the deploy pipeline expect them exactly here.
const (
	// ConfigFile is the site configuration written over the generator default.
	ConfigFile = "hugo.yaml"

	// ArchivesFile is the archive listing content stub.
	ArchivesFile = "content/archives.md"

	// SearchFile is the search page content stub.
	SearchFile = "content/search.md"

	// FooterFile is the footer partial overriding the theme's default.
	FooterFile = "layouts/partials/footer.html"

	// WorkflowFile is the continuous-deployment workflow definition.
	WorkflowFile = ".github/workflows/deploy.yml"
)

// Scaffolder is responsible for generating the provisioned site's files.
type Scaffolder struct {
	ConfigGenerator   generator.Generator[site.Config, yamlgenerator.Options]
	PageGenerator     generator.Generator[site.FrontMatter, yamlgenerator.Options]
	WorkflowGenerator generator.Generator[site.Workflow, yamlgenerator.Options]
	Writer            io.Writer
}

// NewScaffolder creates a new Scaffolder writing notifications to writer.
func NewScaffolder(writer io.Writer) *Scaffolder {
	return &Scaffolder{
		ConfigGenerator:   yamlgenerator.NewGenerator[site.Config](),
		PageGenerator:     frontmattergenerator.NewGenerator[site.FrontMatter](),
		WorkflowGenerator: yamlgenerator.NewGenerator[site.Workflow](),
		Writer:            writer,
	}
}

// ScaffoldConfig writes hugo.yaml, replacing the site generator's default
// configuration at the same path.
func (s *Scaffolder) ScaffoldConfig(cfg site.Config, siteDir string) error {
	output := filepath.Join(siteDir, ConfigFile)
	existed := fileExists(output)

	_, err := s.ConfigGenerator.Generate(cfg, yamlgenerator.Options{Output: output, Force: true})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfigGeneration, err)
	}

	s.notifyFileAction(ConfigFile, existed)

	return nil
}

// ScaffoldContent writes the archive and search content stubs.
func (s *Scaffolder) ScaffoldContent(siteDir string) error {
	pages := []struct {
		frontMatter site.FrontMatter
		path        string
	}{
		{frontMatter: site.NewArchivesPage(), path: ArchivesFile},
		{frontMatter: site.NewSearchPage(), path: SearchFile},
	}

	for _, page := range pages {
		output := filepath.Join(siteDir, page.path)
		existed := fileExists(output)

		_, err := s.PageGenerator.Generate(
			page.frontMatter,
			yamlgenerator.Options{Output: output, Force: true},
		)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrContentGeneration, page.path, err)
		}

		s.notifyFileAction(page.path, existed)
	}

	return nil
}

// ScaffoldFooter writes the footer partial.
func (s *Scaffolder) ScaffoldFooter(siteDir string) error {
	output := filepath.Join(siteDir, FooterFile)
	existed := fileExists(output)

	_, err := fsutil.TryWriteFile(site.FooterPartial, output, true)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFooterGeneration, err)
	}

	s.notifyFileAction(FooterFile, existed)

	return nil
}

// ScaffoldWorkflow writes the continuous-deployment workflow definition.
func (s *Scaffolder) ScaffoldWorkflow(workflow site.Workflow, siteDir string) error {
	output := filepath.Join(siteDir, WorkflowFile)
	existed := fileExists(output)

	_, err := s.WorkflowGenerator.Generate(
		workflow,
		yamlgenerator.Options{Output: output, Force: true},
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWorkflowGeneration, err)
	}

	s.notifyFileAction(WorkflowFile, existed)

	return nil
}

func (s *Scaffolder) notifyFileAction(displayName string, overwritten bool) {
	action := "created"
	if overwritten {
		action = "overwrote"
	}

	notify.WriteMessage(notify.Message{
		Type:    notify.GenerateType,
		Content: "%s '%s'",
		Args:    []any{action, displayName},
		Writer:  s.Writer,
	})
}

func fileExists(path string) bool {
	_, err := os.Stat(path)

	return !errors.Is(err, os.ErrNotExist) && err == nil
}
