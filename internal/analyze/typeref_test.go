package analyze

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"optics-generator/internal/model"
)

func TestTypeRef_UnexportedTypes(t *testing.T) {
	dir := writeModule(t, map[string]string{
		"badge.go": "package stale\n\ntype level int\n\n" +
			"type Badge struct {\n" +
			"\tLevel  level\n" +
			"\tHook   func(level) error\n" +
			"\tMeta   struct{ note string }\n" +
			"\tCh     chan Badge\n" +
			"\tPublic func(string) error\n" +
			"}\n",
	})

	config := DefaultConfig()
	config.Dir = dir
	analyzer := NewAnalyzer(config)

	_, err := analyzer.LoadPackages(context.Background(), ".")
	require.NoError(t, err)

	desc, err := analyzer.Describe(context.Background(), model.TypeID{PkgPath: "example.com/stale", Name: "Badge"})
	require.NoError(t, err)

	const (
		own   = "example.com/stale"
		other = "example.com/other"
	)

	level := memberByName(t, desc, "Level").Type
	assert.Equal(t, model.RefNamed, level.Kind)
	assert.True(t, level.NameableFrom(own))
	assert.False(t, level.NameableFrom(other))

	hook := memberByName(t, desc, "Hook").Type
	assert.Equal(t, model.RefOther, hook.Kind)
	assert.Equal(t, own, hook.DeclPkg)
	assert.True(t, hook.Local)
	assert.Equal(t, []model.TypeID{{PkgPath: own, Name: "level"}}, hook.Hidden)
	assert.True(t, hook.NameableFrom(own))
	assert.False(t, hook.NameableFrom(other))

	meta := memberByName(t, desc, "Meta").Type
	assert.Equal(t, []model.TypeID{{PkgPath: own, Name: "note"}}, meta.Hidden)
	assert.False(t, meta.NameableFrom(other))

	ch := memberByName(t, desc, "Ch").Type
	assert.True(t, ch.Local)
	assert.Empty(t, ch.Hidden)
	assert.False(t, ch.NameableFrom(other))

	public := memberByName(t, desc, "Public").Type
	assert.False(t, public.Local)
	assert.Empty(t, public.Hidden)
	assert.True(t, public.NameableFrom(other))
}
