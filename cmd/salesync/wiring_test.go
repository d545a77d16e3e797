package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orangepax/outlet-sales-sync/infrastructure/publisher"
	"github.com/orangepax/outlet-sales-sync/infrastructure/publisher/git"
	"github.com/orangepax/outlet-sales-sync/internal/config"
)

func TestNewPublisher(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		p, cleanup, err := newPublisher(context.Background(), &config.Config{Publisher: config.Publisher{Kind: "none"}})
		require.NoError(t, err)
		defer cleanup()

		result, err := p.Publish(context.Background(), "data.json")
		require.NoError(t, err)
		assert.Equal(t, publisher.Skipped, result.Status)
	})

	t.Run("git", func(t *testing.T) {
		p, cleanup, err := newPublisher(context.Background(), &config.Config{Publisher: config.Publisher{Kind: "git"}})
		require.NoError(t, err)
		defer cleanup()

		assert.IsType(t, &git.Publisher{}, p)
	})

	t.Run("gcs without bucket", func(t *testing.T) {
		_, _, err := newPublisher(context.Background(), &config.Config{Publisher: config.Publisher{Kind: "gcs"}})
		assert.Error(t, err)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, _, err := newPublisher(context.Background(), &config.Config{Publisher: config.Publisher{Kind: "ftp"}})
		assert.ErrorContains(t, err, "ftp")
	})
}

func TestVersionCmd(t *testing.T) {
	var out bytes.Buffer

	cmd := versionCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "salesync dev (none)\n", out.String())
}
