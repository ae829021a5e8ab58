package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-pong/internal/session"
)

type stubBackend struct{ name string }

func (b stubBackend) Name() string        { return b.name }
func (b stubBackend) Description() string { return "stub " + b.name }
func (b stubBackend) Run(context.Context, *session.Session, Options) error {
	return nil
}

func TestRegisterCreateList(t *testing.T) {
	Register("zz-stub", func() Backend { return stubBackend{name: "zz-stub"} })
	Register("aa-stub", func() Backend { return stubBackend{name: "aa-stub"} })

	assert.True(t, Exists("zz-stub"))
	assert.False(t, Exists("missing"))

	b, err := Create("aa-stub")
	require.NoError(t, err)
	assert.Equal(t, "aa-stub", b.Name())

	_, err = Create("missing")
	assert.Error(t, err)

	list := List()
	require.GreaterOrEqual(t, len(list), 2)
	for i := 1; i < len(list); i++ {
		assert.Less(t, list[i-1].Name, list[i].Name, "List must be sorted")
	}
	assert.Contains(t, list, BackendInfo{Name: "aa-stub", Description: "stub aa-stub"})
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup-stub", func() Backend { return stubBackend{name: "dup-stub"} })
	assert.Panics(t, func() {
		Register("dup-stub", func() Backend { return stubBackend{name: "dup-stub"} })
	})
}
