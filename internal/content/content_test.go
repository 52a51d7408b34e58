package content_test

import (
	"os"
	"path/filepath"
	"testing"

	"go-portfolio-api/internal/content"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPayload(t *testing.T) {
	p := content.Default()

	assert.NotEmpty(t, p.Name)
	assert.NotEmpty(t, p.About)
	assert.Len(t, p.Photos, 3)
	assert.Len(t, p.Projects, 4)
	assert.Len(t, p.Hobbies, 4)

	hero := p.Hero()
	assert.Equal(t, p.Name, hero.Name)
	assert.Equal(t, p.About, hero.About)
	assert.Equal(t, p.Photos, hero.Photos)
}

func TestLoadWithoutPathReturnsDefault(t *testing.T) {
	p, err := content.Load("")
	require.NoError(t, err)
	assert.Equal(t, content.Default().Name, p.Name)
}

func TestLoadOverridesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"Someone Else","photos":["a.jpg"]}`), 0o644))

	p, err := content.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Someone Else", p.Name)
	assert.Equal(t, []string{"a.jpg"}, p.Photos)
	// Fields absent from the file keep their defaults
	assert.Len(t, p.Projects, 4)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := content.Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
