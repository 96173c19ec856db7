// Package version exposes build identity for the CLI binaries.
package version

var (
	//nolint:gochecknoglobals // set via ldflags at build time
	name = "meristem"
	//nolint:gochecknoglobals // set via ldflags at build time
	version = "dev"
	//nolint:gochecknoglobals // set via ldflags at build time
	commit = "unknown"
)

func Name() string {
	return name
}

func Version() string {
	return version
}

func Commit() string {
	return commit
}
