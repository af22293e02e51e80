package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"time"
)

// Repository is the public home of the project.
const Repository = "https://github.com/codegod100/libby"

// Set during build via -ldflags "-X github.com/codegod100/libby/internal/version.Version=X.Y.Z"
var (
	Version    = "dev"
	Commit     = ""
	CommitDate = ""
)

// Info describes the running binary.
type Info struct {
	Version    string
	Commit     string
	CommitDate string
}

// Get returns build metadata. Values injected through ldflags win over the
// VCS stamps recorded by the Go toolchain.
func Get() Info {
	info := Info{Version: Version, Commit: Commit, CommitDate: CommitDate}
	if info.Commit != "" && info.CommitDate != "" {
		return info
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info.withDefaults()
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "" {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.CommitDate == "" {
				info.CommitDate = formatCommitDate(s.Value)
			}
		}
	}
	return info.withDefaults()
}

func (i Info) withDefaults() Info {
	if i.Version == "" {
		i.Version = "dev"
	}
	if i.Commit == "" {
		i.Commit = "unknown"
	}
	if i.CommitDate == "" {
		i.CommitDate = "unknown"
	}
	return i
}

// ShortCommit returns the first 7 characters of the commit hash.
func (i Info) ShortCommit() string {
	if len(i.Commit) > 7 {
		return i.Commit[:7]
	}
	return i.Commit
}

// CommitURL links to the commit in the repository, or to the repository
// itself when the commit is unknown.
func (i Info) CommitURL() string {
	if i.Commit == "" || i.Commit == "unknown" {
		return Repository
	}
	return fmt.Sprintf("%s/commits/%s", Repository, i.Commit)
}

// String returns a formatted version string
func (i Info) String() string {
	return fmt.Sprintf("%s-%s", i.Version, i.ShortCommit())
}

// Detailed returns detailed version information
func (i Info) Detailed() string {
	return fmt.Sprintf(`Libby
Version:    %s
Commit:     %s
Date:       %s
Go version: %s
OS/Arch:    %s/%s`,
		i.Version, i.Commit, i.CommitDate,
		runtime.Version(),
		runtime.GOOS, runtime.GOARCH)
}

func formatCommitDate(raw string) string {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return raw
	}
	return t.UTC().Format("2006-01-02")
}
