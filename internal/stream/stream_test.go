package stream

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/mersenne/mt64"
)

func TestJobRunMatchesGenerator(t *testing.T) {
	res, err := Job{Name: "ref", Seed: 5489, Count: 2}.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ref", res.Name)
	assert.Equal(t, []uint64{14514284786278117030, 4620546740167642908}, res.Values)
}

func TestJobSkip(t *testing.T) {
	full, err := Job{Seed: 1, Count: 700}.Run(context.Background())
	require.NoError(t, err)
	skipped, err := Job{Seed: 1, Skip: 650, Count: 50}.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, full.Values[650:], skipped.Values)
}

func TestJobKey(t *testing.T) {
	res, err := Job{Key: []uint64{0x12345, 0x23456, 0x34567, 0x45678}, Seed: 99, Count: 1}.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(7266447313870364031), res.Values[0])
}

func TestJobRejectsNegative(t *testing.T) {
	_, err := Job{Name: "bad", Count: -1}.Run(context.Background())
	assert.Error(t, err)
	_, err = Job{Name: "bad", Skip: -1}.Run(context.Background())
	assert.Error(t, err)
}

func TestGenerateOrderAndIndependence(t *testing.T) {
	var jobs []Job
	for i := range 16 {
		jobs = append(jobs, Job{Name: fmt.Sprintf("s%d", i), Seed: uint64(i), Count: 1000})
	}

	results, err := Generate(context.Background(), jobs, 4)
	require.NoError(t, err)
	require.Len(t, results, len(jobs))

	for i, res := range results {
		assert.Equal(t, jobs[i].Name, res.Name)

		g := mt64.NewSeeded(uint64(i))
		for k, v := range res.Values {
			want, err := g.Next()
			require.NoError(t, err)
			require.Equal(t, want, v, "stream %d value %d", i, k)
		}
	}
}

func TestGenerateDefaultWorkers(t *testing.T) {
	results, err := Generate(context.Background(), []Job{{Seed: 5, Count: 3}}, 0)
	require.NoError(t, err)
	assert.Len(t, results[0].Values, 3)
}

func TestGenerateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Generate(ctx, []Job{{Seed: 1, Count: 10}}, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGeneratePropagatesJobError(t *testing.T) {
	jobs := []Job{{Name: "ok", Count: 10}, {Name: "bad", Count: -5}}
	_, err := Generate(context.Background(), jobs, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"bad"`)
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"dec", "hex", "bin"} {
		f, err := ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, Format(name), f)
	}

	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatDec, f)

	_, err = ParseFormat("base64")
	assert.Error(t, err)
}

func TestWrite(t *testing.T) {
	values := []uint64{0, 255, 14514284786278117030}

	var dec bytes.Buffer
	require.NoError(t, Write(&dec, values, FormatDec))
	assert.Equal(t, "0\n255\n14514284786278117030\n", dec.String())

	var hex bytes.Buffer
	require.NoError(t, Write(&hex, values, FormatHex))
	lines := strings.Split(strings.TrimSpace(hex.String()), "\n")
	assert.Equal(t, []string{"0x0000000000000000", "0x00000000000000ff", "0xc96d191cf6f6aea6"}, lines)

	var bin bytes.Buffer
	require.NoError(t, Write(&bin, values, FormatBin))
	require.Equal(t, 24, bin.Len())
	assert.Equal(t, values[2], binary.BigEndian.Uint64(bin.Bytes()[16:]))

	assert.Error(t, Write(&bytes.Buffer{}, values, Format("oct")))
}
