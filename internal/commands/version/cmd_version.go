package version

import (
	"fmt"
	"io"

	"github.com/k0kubun/go-ansi"
	"github.com/kriswebdev/basexml/internal/version"
)

const (
	Bold           = "\x1b[1m"
	Reset          = "\x1b[0m"
	LightGray      = "\x1b[37m"
	DarkGray       = "\x1b[90m"
	White          = "\x1b[97m"
	BackgroundBlue = "\x1b[44m"
)

// Command prints the build information of the executable.
type Command struct {
	// Out is where the banner goes. Defaults to the ANSI-aware stdout.
	Out io.Writer `no-flag:"true"`
}

func (c *Command) String() string {
	return "Version details"
}

//goland:noinspection GoUnhandledErrorResult
func (c *Command) Execute(args []string) error {
	out := c.Out
	if out == nil {
		out = ansi.NewAnsiStdout()
	}

	info := version.Get()
	PrintVersion(out, info)
	line(out, "Git tag", info.GitTag)
	line(out, "Git branch", info.GitBranch)
	line(out, "Git state", info.GitState)
	line(out, "Go version", info.GoVersion)
	return nil
}

//goland:noinspection GoUnhandledErrorResult
func line(out io.Writer, name, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(out, DarkGray+" %-12s"+White+"%+v"+Reset+"\n", name, value)
}

// PrintVersion writes the banner with the version, build date and commit.
//
//goland:noinspection GoUnhandledErrorResult
func PrintVersion(out io.Writer, info version.Info) {
	fmt.Fprintf(out, Bold+BackgroundBlue+
		LightGray+" BASEXML - XML-safe binary encoding "+White+"%s"+LightGray+" "+Reset+"\n"+
		DarkGray+" Built on    "+White+"%+v\n"+
		DarkGray+" Git version "+White+"%+v"+Reset+"\n",
		info.Version, info.BuildDate, info.GitCommit)
}
