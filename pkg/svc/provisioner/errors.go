package provisioner

import "errors"

var (
	// ErrElevationRequired is returned when the process lacks the
	// privileges needed to install software.
	ErrElevationRequired = errors.New(
		"elevated privileges are required to install software, rerun as root/Administrator",
	)

	// ErrToolUnavailable is returned when a tool is still missing after an
	// installation attempt.
	ErrToolUnavailable = errors.New("required tool is still missing after installation")

	// ErrDirectoryExists is returned when the target site directory already
	// exists. Existing directories are never overwritten.
	ErrDirectoryExists = errors.New("a directory with that name already exists")

	// ErrSiteNotCreated is returned when the site generator exits
	// successfully but the expected directory is missing.
	ErrSiteNotCreated = errors.New("site generator did not create the site directory")
)
