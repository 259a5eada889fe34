package prefabs

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func useEmbedded(t *testing.T) {
	t.Helper()
	prev := DiskDir()
	SetDiskDir("")
	t.Cleanup(func() { SetDiskDir(prev) })
}

func TestLoadArenaSpec(t *testing.T) {
	useEmbedded(t)

	arena, err := LoadArenaSpec("arena.yaml")
	require.NoError(t, err)
	assert.Equal(t, "training_yard", arena.Name)
	assert.Equal(t, 0.5, arena.CellSize)
	assert.Len(t, arena.Enemies, 2)
	assert.Equal(t, "player.yaml", arena.Player.Prefab)
	assert.NotEmpty(t, arena.Targets.Points)
	assert.Equal(t, 100, arena.Match.TargetScore)
	assert.Equal(t, color.NRGBA{R: 0x6b, G: 0x6b, B: 0x6b, A: 0xff}, arena.Obstacles[0].Color.Color)
}

func TestArenaSpecValidateJoinsProblems(t *testing.T) {
	err := ArenaSpec{
		Obstacles: []ObstacleSpec{{HalfX: 1}},
		Enemies:   []SpawnSpec{{}},
	}.Validate()
	require.Error(t, err)
	assert.Equal(t,
		"bounds must have positive extent; obstacles[0]: half extents must be > 0; player.prefab is required; enemies[0]: prefab is required",
		err.Error())
}

func TestEntityPrefabsDecode(t *testing.T) {
	useEmbedded(t)

	for _, name := range []string{"player.yaml", "soldier.yaml", "target.yaml"} {
		t.Run(name, func(t *testing.T) {
			spec, err := LoadEntityBuildSpec(name)
			require.NoError(t, err)
			assert.NotEmpty(t, spec.Components)
			_, ok := spec.Components["transform"]
			assert.True(t, ok)
		})
	}

	soldier, err := LoadEntityBuildSpec("soldier.yaml")
	require.NoError(t, err)
	hitboxes, err := DecodeComponentSpec[[]HitboxComponentSpec](soldier.Components["hitboxes"])
	require.NoError(t, err)
	require.Len(t, hitboxes, 3)
	assert.Equal(t, "head", hitboxes[0].Region)
	assert.Equal(t, 0.2, hitboxes[0].Radius)
	assert.Equal(t, 1.5, hitboxes[0].OffsetY)

	weapon, err := DecodeComponentSpec[WeaponComponentSpec](soldier.Components["weapon"])
	require.NoError(t, err)
	require.NotNil(t, weapon.AutoReload)
	assert.False(t, *weapon.AutoReload)
	assert.Equal(t, "enemy", weapon.Team)
}

func TestDecodeComponentSpecNil(t *testing.T) {
	spec, err := DecodeComponentSpec[TargetComponentSpec](nil)
	require.NoError(t, err)
	assert.Zero(t, spec)
}

func TestYAMLColor(t *testing.T) {
	var c struct {
		Fill YAMLColor `yaml:"fill"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(`fill: "#ff000080"`), &c))
	assert.Equal(t, color.NRGBA{R: 255, A: 128}, c.Fill.Color)

	assert.Error(t, yaml.Unmarshal([]byte(`fill: "#fff"`), &c))
	assert.Equal(t, color.White, YAMLColor{}.Or(color.White))
}

func TestCleanScriptPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"sentry.tengo", "scripts/sentry.tengo"},
		{"scripts/sentry.tengo", "scripts/sentry.tengo"},
		{"prefabs/scripts/sentry.tengo", "scripts/sentry.tengo"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanScriptPath(tt.in))
		})
	}
}

func TestDiskOverride(t *testing.T) {
	dir := t.TempDir()
	prev := DiskDir()
	SetDiskDir(dir)
	t.Cleanup(func() { SetDiskDir(prev) })

	require.NoError(t, os.WriteFile(filepath.Join(dir, "target.yaml"), []byte("name: override\n"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "scripts"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scripts", "sentry.tengo"), []byte("x := 1\n"), 0o644))

	spec, err := LoadEntityBuildSpec("target.yaml")
	require.NoError(t, err)
	assert.Equal(t, "override", spec.Name)

	src, err := LoadScript("sentry.tengo")
	require.NoError(t, err)
	assert.Equal(t, "x := 1\n", string(src))

	_, ok := ModTime("target.yaml")
	assert.True(t, ok)

	// Files missing on disk still come from the embedded copy.
	soldier, err := LoadEntityBuildSpec("soldier.yaml")
	require.NoError(t, err)
	assert.Equal(t, "soldier", soldier.Name)
}

func TestLoadSpecMissingFile(t *testing.T) {
	useEmbedded(t)
	_, err := LoadArenaSpec("nope.yaml")
	assert.ErrorContains(t, err, "prefabs: load nope.yaml")
}
