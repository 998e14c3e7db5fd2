package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grez-lucas/bo-ui/internal/ui/bo/data"
	"github.com/grez-lucas/bo-ui/internal/ui/locator"
	"github.com/grez-lucas/bo-ui/internal/ui/testutil/botest"
	"github.com/grez-lucas/bo-ui/internal/ui/testutil/fakebo"
)

func TestRegistry(t *testing.T) {
	tests := []struct {
		name      string
		srv       *fakebo.Server
		wantShops int
	}{
		{"single store", fakebo.New(), 0},
		{"multistore", fakebo.New(fakebo.WithMultistore()), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := Registry().Check(botest.Render(t, tt.srv, NewPath))
			require.NoError(t, err)
			assert.Empty(t, locator.Broken(results))

			for _, res := range results {
				if res.Name == "shop association" {
					assert.Equal(t, tt.wantShops, res.Matches)
				}
			}
		})
	}
}

func TestCreateEditFeature_Translated(t *testing.T) {
	env := botest.Start(t, fakebo.WithLanguages("en", "fr"))
	ctx := t.Context()

	p := New(env.Base, env.BaseURL)
	require.NoError(t, p.Goto(ctx))

	feature := data.FeatureData{Names: map[int]string{1: "Material", 2: "Matière"}}
	require.NoError(t, feature.Validate())

	msg, err := p.CreateEditFeature(ctx, feature)
	require.NoError(t, err)
	assert.Equal(t, fakebo.MsgCreated, msg)
	assert.Equal(t, []string{"Material"}, env.Server.FeatureNames())

	require.NoError(t, p.GotoEdit(ctx, 1))
	msg, err = p.CreateEditFeature(ctx, data.NewFeatureData("Fabric"))
	require.NoError(t, err)
	assert.Equal(t, fakebo.MsgUpdated, msg)
	assert.Equal(t, []string{"Fabric"}, env.Server.FeatureNames())
}

func TestCreateEditFeature_Multistore(t *testing.T) {
	env := botest.Start(t, fakebo.WithMultistore())
	ctx := t.Context()

	p := New(env.Base, env.BaseURL)
	require.NoError(t, p.Goto(ctx))

	msg, err := p.CreateEditFeature(ctx, data.NewFeatureData("Color", 2))
	require.NoError(t, err)
	assert.Equal(t, fakebo.MsgCreated, msg)
	assert.Equal(t, []int{2}, env.Server.FeatureShops("Color"))
}

func TestCreateEditFeature_RejectedName(t *testing.T) {
	env := botest.Start(t)
	ctx := t.Context()

	p := New(env.Base, env.BaseURL)
	require.NoError(t, p.Goto(ctx))

	invalid := data.NewFeatureData("<b>Color</b>")
	require.ErrorIs(t, invalid.Validate(), data.ErrInvalidName)

	// The form re-renders without a success banner.
	_, err := p.CreateEditFeature(ctx, invalid)
	require.Error(t, err)

	danger, err := p.AlertDangerContent(ctx)
	require.NoError(t, err)
	assert.Contains(t, danger, "is invalid")
	assert.Empty(t, env.Server.FeatureNames())
}
