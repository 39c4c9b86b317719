package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_AppVersion(t *testing.T) {
	defer func(tag, v string) { GitTag, Version = tag, v }(GitTag, Version)

	GitTag, Version = "", ""
	require.Equal(t, UnknownVersion, AppVersion())

	Version = "1.2.0"
	require.Equal(t, "1.2.0", AppVersion())

	GitTag = "v1.2.1"
	require.Equal(t, "v1.2.1", AppVersion())
}

func Test_Get(t *testing.T) {
	defer func(v, gv string) { GitCommit, GoVersion = v, gv }(GitCommit, GoVersion)

	GitCommit, GoVersion = "0b5ed7a", ""
	info := Get()
	require.Equal(t, "0b5ed7a", info.GitCommit)
	require.Equal(t, runtime.Version(), info.GoVersion)
}
