package site

// Workflow models a GitHub Actions workflow definition.
type Workflow struct {
	Name string         `yaml:"name"`
	On   Trigger        `yaml:"on"`
	Jobs map[string]Job `yaml:"jobs"`
}

// Trigger holds the workflow trigger configuration.
type Trigger struct {
	Push PushTrigger `yaml:"push"`
}

// PushTrigger restricts a push trigger to specific branches.
type PushTrigger struct {
	Branches []string `yaml:"branches"`
}

// Job is a single workflow job.
type Job struct {
	RunsOn string `yaml:"runs-on"`
	Steps  []Step `yaml:"steps"`
}

// Step is a single job step. Exactly one of Uses or Run is set.
type Step struct {
	Name string         `yaml:"name,omitempty"`
	Uses string         `yaml:"uses,omitempty"`
	If   string         `yaml:"if,omitempty"`
	With map[string]any `yaml:"with,omitempty"`
	Run  string         `yaml:"run,omitempty"`
}

// NewDeployWorkflow returns the continuous-deployment workflow for the
// provisioned site: on push to the default branch, check out with submodules
// and full history, install the Hugo toolchain, build with minification, and
// publish ./public to the pages-hosting branch using the repository-scoped
// GITHUB_TOKEN secret.
func NewDeployWorkflow(defaultBranch string) Workflow {
	return Workflow{
		Name: "Deploy Hugo site to Pages",
		On: Trigger{
			Push: PushTrigger{Branches: []string{defaultBranch}},
		},
		Jobs: map[string]Job{
			"deploy": {
				RunsOn: "ubuntu-latest",
				Steps: []Step{
					{
						Name: "Checkout",
						Uses: "actions/checkout@v4",
						With: map[string]any{
							// Full history is required for Hugo's .GitInfo and
							// the theme submodule must be materialized.
							"submodules":  true,
							"fetch-depth": 0,
						},
					},
					{
						Name: "Setup Hugo",
						Uses: "peaceiris/actions-hugo@v3",
						With: map[string]any{
							"hugo-version": "latest",
							"extended":     true,
						},
					},
					{
						Name: "Build",
						Run:  "hugo --minify",
					},
					{
						Name: "Deploy",
						Uses: "peaceiris/actions-gh-pages@v4",
						If:   "github.ref == 'refs/heads/" + defaultBranch + "'",
						With: map[string]any{
							"github_token": "${{ secrets.GITHUB_TOKEN }}",
							"publish_dir":  "./public",
						},
					},
				},
			},
		},
	}
}
