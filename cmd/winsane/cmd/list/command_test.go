package list

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/winsane/winsane/pkg/catalogs"
)

func TestFilter(t *testing.T) {
	records := catalogs.TestCatalog(t).Tweaks()
	records[0].Enabled = true

	assert.Len(t, Filter(records, &Flags{}), len(records))
	assert.Len(t, Filter(records, &Flags{Feature: "optimizer"}), 2)
	assert.Len(t, Filter(records, &Flags{Feature: "Optimizer", Category: "cleanup"}), 0)
	assert.Len(t, Filter(records, &Flags{Enabled: true}), 1)
	assert.Empty(t, Filter(records, &Flags{User: true}))
	assert.NotNil(t, Filter(nil, &Flags{}))
}

func TestRegister(t *testing.T) {
	fs := pflag.NewFlagSet("list", pflag.ContinueOnError)
	flags := &Flags{}
	flags.Register(fs)
	require.NoError(t, fs.Parse([]string{"-s", "bloat", "--feature", "Display", "--user"}))
	assert.Equal(t, &Flags{Search: "bloat", Feature: "Display", User: true}, flags)
}
