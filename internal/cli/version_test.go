package cli

import (
	"bytes"
	"testing"

	"github.com/eleven-am/crudgen/pkg/crudgen"
	"github.com/stretchr/testify/assert"
)

func TestVersionCommand(t *testing.T) {
	t.Run("command structure", func(t *testing.T) {
		cmd := newVersionCmd()
		assert.Equal(t, "version", cmd.Use)
		assert.Equal(t, "Show version information", cmd.Short)
		assert.NotNil(t, cmd.Run)
	})

	t.Run("version output", func(t *testing.T) {
		var buf bytes.Buffer
		cmd := newVersionCmd()
		cmd.SetOut(&buf)

		cmd.Run(cmd, []string{})

		assert.Equal(t, crudgen.FullVersionInfo(), buf.String())
	})
}
