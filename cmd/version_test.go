package cmd

import (
	"bytes"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionCmd_PrintsNameAndRuntime(t *testing.T) {
	old := version
	version = "v1.2.3"
	t.Cleanup(func() {
		version = old
		versionCmd.SetOut(nil)
	})

	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	versionCmd.Run(versionCmd, nil)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "kanacards v1.2.3 ("), out)
	assert.Contains(t, out, runtime.Version())
}
