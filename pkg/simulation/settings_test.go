package simulation

import (
	"errors"
	"image/color"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lao-tseu-is-alive/go-boids/pkg/flock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	golog "github.com/tochemey/goakt/v3/log"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	require.NoError(t, s.Validate())
	assert.Equal(t, 72, s.Frames())
	assert.Equal(t, 50, s.TotalBoids())
	assert.Equal(t, flock.ColorScheme{Kind: flock.GreenPurple}, s.Species[0].Color)
}

func TestParseJSON_FillsDefaults(t *testing.T) {
	doc := `{
		"fps": 30,
		"background": "navy",
		"species": [
			{"sources": 2, "color": "const 1 2 3"},
			{"name": "fast", "maxSpeed": 9, "edgeMargin": 40}
		]
	}`
	got, err := ParseJSON([]byte(doc))
	require.NoError(t, err)

	want := DefaultSettings()
	want.FPS = 30
	want.Background = "navy"
	first := DefaultSpecies()
	first.Sources = 2
	first.Color = flock.ConstantScheme(1, 2, 3)
	second := DefaultSpecies()
	second.Name = "fast"
	second.MaxSpeed = 9
	second.EdgeMargin = 40
	want.Species = []SpeciesSettings{first, second}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseJSON mismatch (-want +got):\n%s", diff)
	}
}

func TestParseYAML(t *testing.T) {
	doc := `
fps: 12
lengthSeconds: 2
seed: 99
species:
  - sources: 1
    boidsPerSource: 4
    color: black&white
`
	got, err := ParseYAML([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, 24, got.Frames())
	assert.Equal(t, uint64(99), got.Seed)
	require.Len(t, got.Species, 1)
	assert.Equal(t, 4, got.Species[0].Boids())
	assert.Equal(t, flock.BlackAndWhite, got.Species[0].Color.Kind)
	assert.Equal(t, DefaultSpecies().SeparationDistance, got.Species[0].SeparationDistance)
}

func TestParseYAML_EmptyDocumentIsDefault(t *testing.T) {
	got, err := ParseYAML(nil)
	require.NoError(t, err)
	if diff := cmp.Diff(DefaultSettings(), got); diff != "" {
		t.Errorf("empty document (-want +got):\n%s", diff)
	}
}

func TestParseJSON_Rejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"zero fps", `{"fps": 0}`},
		{"fractional length", `{"lengthSeconds": 1.5}`},
		{"tiny canvas", `{"width": 50}`},
		{"unknown field", `{"fullscreen": true}`},
		{"no species", `{"species": []}`},
		{"factor of one", `{"species": [{"cohesionFactor": 1}]}`},
		{"small boid", `{"species": [{"boidSize": 5}]}`},
		{"unknown color", `{"species": [{"color": "rainbow"}]}`},
		{"min above max", `{"species": [{"minSpeed": 8, "maxSpeed": 4}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseJSON([]byte(tt.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidSettings)
		})
	}
}

func TestParseJSON_SpeedOrderWrapsFlockError(t *testing.T) {
	_, err := ParseJSON([]byte(`{"species": [{"minSpeed": 8, "maxSpeed": 4}]}`))
	assert.ErrorIs(t, err, flock.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "species 1")
}

func TestParseJSON_Malformed(t *testing.T) {
	_, err := ParseJSON([]byte(`{"fps": `))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalidSettings))
}

func TestLoadSettings(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "flock.json")
	yamlPath := filepath.Join(dir, "flock.YML")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"width": 640, "height": 480}`), 0o644))
	require.NoError(t, os.WriteFile(yamlPath, []byte("width: 640\nheight: 480\n"), 0o644))

	for _, path := range []string{jsonPath, yamlPath} {
		s, err := LoadSettings(path)
		require.NoError(t, err, path)
		assert.Equal(t, 640.0, s.Boundary().Right, path)
		assert.Equal(t, 480.0, s.Boundary().Bottom, path)
	}

	_, err := LoadSettings(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSettings_YAMLReloads(t *testing.T) {
	s := DefaultSettings()
	s.Seed = 7
	s.Species = append(s.Species, SpeciesSettings{
		Name: "red", Sources: 3, BoidsPerSource: 20, BoidSize: 30,
		MinSpeed: 2, MaxSpeed: 6,
		SeparationFactor: 0.01, SeparationDistance: 40,
		AlignmentFactor: 0.05, AlignmentDistance: 80,
		CohesionFactor: 0.002, EdgeFactor: 0.01, EdgeMargin: 60,
		Color: flock.ConstantScheme(200, 30, 30),
	})

	b, err := s.YAML()
	require.NoError(t, err)
	back, err := ParseYAML(b)
	require.NoError(t, err)
	if diff := cmp.Diff(s, back); diff != "" {
		t.Errorf("printed settings do not load back (-want +got):\n%s", diff)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"black", color.RGBA{A: 255}},
		{" Navy ", color.RGBA{B: 128, A: 255}},
		{"#ff8000", color.RGBA{R: 255, G: 128, A: 255}},
		{"10 20 30", color.RGBA{R: 10, G: 20, B: 30, A: 255}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"", "blurple", "#12345", "1 2 300", "1 2"} {
		_, err := ParseColor(bad)
		assert.ErrorIs(t, err, ErrUnknownColor, bad)
	}
}

func TestBackgroundColor_FallsBackToBlack(t *testing.T) {
	s := DefaultSettings()
	s.Background = "not a color"
	assert.Equal(t, color.RGBA{A: 255}, s.BackgroundColor(golog.DiscardLogger))
}

func TestBuild(t *testing.T) {
	s := DefaultSettings()
	second := DefaultSpecies()
	second.Name = "second"
	second.Sources = 2
	second.BoidsPerSource = 7
	second.BoidSize = 40
	s.Species = append(s.Species, second)

	sim, err := s.Build(rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)

	species := sim.Species()
	require.Len(t, species, 2)
	assert.Equal(t, "species-1", species[0].Name)
	assert.Equal(t, "second", species[1].Name)
	assert.Equal(t, 50, species[0].Count())
	assert.Equal(t, 14, species[1].Count())
	assert.Equal(t, s.Boundary(), species[1].Config().Boundary)

	inner := s.Boundary().Inset(second.EdgeMargin)
	st := species[1].Store()
	for i, p := range st.Positions() {
		assert.True(t, inner.Contains(p), "agent %d spawned at %v", i, p)
		assert.Equal(t, uint16(40), st.Sizes()[i])
	}
}

func TestBuild_SameSeedSameFlock(t *testing.T) {
	s := DefaultSettings()
	s.Seed = 1234

	a, err := s.Build(s.NewRand())
	require.NoError(t, err)
	b, err := s.Build(s.NewRand())
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		require.NoError(t, a.Step())
		require.NoError(t, b.Step())
	}
	if diff := cmp.Diff(a.Agents(), b.Agents()); diff != "" {
		t.Errorf("same seed diverged (-a +b):\n%s", diff)
	}
}

func TestBuild_RejectsInvalidSettings(t *testing.T) {
	s := DefaultSettings()
	s.Species[0].MinSpeed = 10
	_, err := s.Build(rand.New(rand.NewPCG(1, 1)))
	assert.ErrorIs(t, err, ErrInvalidSettings)
}
