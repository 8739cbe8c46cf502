package soak

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunGolden(t *testing.T) {
	load, err := LoadWorkload("testdata/basic.yaml")
	require.NoError(t, err)

	var out bytes.Buffer
	sum, err := Run(context.Background(), load, &out, nil)
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "basic", out.Bytes())

	assert.Equal(t, sum.Created-sum.Freed, sum.Live)
	assert.Equal(t, sum.Freed, sum.Dropped)
	assert.Len(t, sum.Rounds, 3)
}

func TestRunIsStorageIndependent(t *testing.T) {
	kinds := []string{"dense", "sparse", "column"}
	var want string
	for _, kind := range kinds {
		t.Run(kind, func(t *testing.T) {
			load := &Workload{
				Rounds:        6,
				Entities:      50,
				MaxTTL:        4,
				VelocityEvery: 3,
				Workers:       4,
				Storage: map[string]string{
					"position": kind,
					"velocity": kind,
					"lifetime": kind,
				},
			}
			require.NoError(t, load.Validate())

			var out bytes.Buffer
			_, err := Run(context.Background(), load, &out, nil)
			require.NoError(t, err)
			if want == "" {
				want = out.String()
				return
			}
			assert.Equal(t, want, out.String())
		})
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	load := &Workload{Rounds: 2, Entities: 1, MaxTTL: 1, VelocityEvery: 1}

	sum, err := Run(ctx, load, &bytes.Buffer{}, nil)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, sum.Rounds)
}

func TestDecodeWorkload(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name:  "minimal",
			input: "rounds: 1\nentities: 1\nmax_ttl: 1\nvelocity_every: 1\n",
		},
		{
			name:    "unknown field",
			input:   "rounds: 1\nentities: 1\nmax_ttl: 1\nvelocity_every: 1\nspeed: 2\n",
			wantErr: "failed to parse YAML",
		},
		{
			name:    "missing bounds",
			input:   "rounds: 1\n",
			wantErr: "entities must be positive",
		},
		{
			name:    "bad storage kind",
			input:   "rounds: 1\nentities: 1\nmax_ttl: 1\nvelocity_every: 1\nstorage:\n  position: tree\n",
			wantErr: `unknown storage kind "tree"`,
		},
		{
			name:    "bad component",
			input:   "rounds: 1\nentities: 1\nmax_ttl: 1\nvelocity_every: 1\nstorage:\n  mass: dense\n",
			wantErr: `unknown component "mass"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := DecodeWorkload(strings.NewReader(tt.input))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, w.Rounds)
		})
	}
}
