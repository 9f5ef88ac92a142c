package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tomcat-42/graph-searcher/search"
)

func TestGraphOpts_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("no source", func(t *testing.T) {
		o := graphOpts{}
		_, err := o.load(ctx)
		require.ErrorIs(t, err, ErrNoGraphSource)
	})

	t.Run("two sources", func(t *testing.T) {
		o := graphOpts{file: "g.json", random: 10}
		_, err := o.load(ctx)
		require.ErrorIs(t, err, ErrTwoGraphSources)
	})

	t.Run("from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "g.json")
		doc := `{"nodes": {"a": {"utm": [0, 0]}, "b": {"utm": [1, 0]}},
			"edges": [{"start": "a", "end": "b", "distance": 1}]}`
		require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

		o := graphOpts{file: path}
		g, err := o.load(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, g.VertexCount())
	})

	t.Run("random", func(t *testing.T) {
		o := graphOpts{random: 12, radius: 30, seed: 1}
		g, err := o.load(ctx)
		require.NoError(t, err)
		assert.Equal(t, 12, g.VertexCount())
	})
}

func TestEngineOpts_Config(t *testing.T) {
	o := engineOpts{algorithm: "sma", bound: 16}
	cfg, err := o.config()
	require.NoError(t, err)
	assert.Equal(t, search.SMAStar, cfg.Algorithm)
	assert.Equal(t, 16, cfg.Bound)

	o = engineOpts{algorithm: "dfs"}
	_, err = o.config()
	require.ErrorIs(t, err, search.ErrUnknownAlgorithm)
}
