package asciijson

import (
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func formatRaw(t *testing.T, emit func(w *RawWriter) error) string {
	t.Helper()
	sink := NewBufferSink()
	require.NoError(t, emit(NewRawWriter(sink)))
	return sink.String()
}

func TestIntFormatting(t *testing.T) {
	t.Run("boundaries", func(t *testing.T) {
		for _, v := range []int64{
			0, 1, -1, 9, 10, -10, 99, 100,
			math.MaxInt32, math.MinInt32,
			math.MaxInt64, math.MinInt64,
		} {
			got := formatRaw(t, func(w *RawWriter) error { return w.Int(v) })
			require.Equal(t, strconv.FormatInt(v, 10), got)
		}
	})

	t.Run("randomized", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))
		for i := 0; i < 1000; i++ {
			v := rng.Uint64()
			got := formatRaw(t, func(w *RawWriter) error { return w.Int(int64(v)) })
			require.Equal(t, strconv.FormatInt(int64(v), 10), got)
		}
	})
}

func TestUintFormatting(t *testing.T) {
	t.Run("boundaries", func(t *testing.T) {
		for _, v := range []uint64{
			0, 1, 9, 10, 99, 100, 1<<32 - 1, 1 << 32, math.MaxUint64,
		} {
			got := formatRaw(t, func(w *RawWriter) error { return w.Uint(v) })
			require.Equal(t, strconv.FormatUint(v, 10), got)
		}
	})

	t.Run("randomized", func(t *testing.T) {
		rng := rand.New(rand.NewSource(2))
		for i := 0; i < 1000; i++ {
			v := rng.Uint64()
			got := formatRaw(t, func(w *RawWriter) error { return w.Uint(v) })
			require.Equal(t, strconv.FormatUint(v, 10), got)
		}
	})
}

func TestFloatFormatting(t *testing.T) {
	t.Run("canonical text", func(t *testing.T) {
		for want, v := range map[string]float64{
			"0":     0,
			"1.5":   1.5,
			"-2.25": -2.25,
			"0.1":   0.1,
			"1e+21": 1e21,
		} {
			got := formatRaw(t, func(w *RawWriter) error { return w.Float64(v) })
			require.Equal(t, want, got)
		}
	})

	t.Run("float64 round trip", func(t *testing.T) {
		values := []float64{
			0, math.Copysign(0, -1), 1, -1, 0.1, 1.0 / 3.0,
			math.MaxFloat64, math.SmallestNonzeroFloat64,
			math.Pi, 1e-300, -123456.789,
		}
		rng := rand.New(rand.NewSource(3))
		for i := 0; i < 500; i++ {
			v := math.Float64frombits(rng.Uint64())
			if !isFinite(v) {
				continue
			}
			values = append(values, v)
		}
		for _, v := range values {
			text := formatRaw(t, func(w *RawWriter) error { return w.Float64(v) })
			back, err := strconv.ParseFloat(text, 64)
			require.NoError(t, err)
			again := formatRaw(t, func(w *RawWriter) error { return w.Float64(back) })
			require.Equal(t, text, again)
			require.NotContains(t, text, ",")
		}
	})

	t.Run("float32 round trip", func(t *testing.T) {
		values := []float32{0, 1, -1, 0.1, math.MaxFloat32, math.SmallestNonzeroFloat32, 1.0 / 3.0}
		rng := rand.New(rand.NewSource(4))
		for i := 0; i < 500; i++ {
			v := math.Float32frombits(rng.Uint32())
			if !isFinite(float64(v)) {
				continue
			}
			values = append(values, v)
		}
		for _, v := range values {
			text := formatRaw(t, func(w *RawWriter) error { return w.Float32(v) })
			back, err := strconv.ParseFloat(text, 32)
			require.NoError(t, err)
			require.Equal(t, v, float32(back))
		}
	})

	t.Run("non-finite rejected", func(t *testing.T) {
		sink := NewBufferSink()
		w := NewRawWriter(sink)
		require.ErrorIs(t, w.Float64(math.NaN()), ErrNonFinite)
		require.ErrorIs(t, w.Float64(math.Inf(1)), ErrNonFinite)
		require.ErrorIs(t, w.Float64(math.Inf(-1)), ErrNonFinite)
		require.ErrorIs(t, w.Float32(float32(math.Inf(1))), ErrNonFinite)
		require.Equal(t, 0, len(sink.Bytes()))
	})
}

func TestNumber(t *testing.T) {
	t.Run("kinds and accessors", func(t *testing.T) {
		require.Equal(t, IntKind, Int(-5).Kind())
		require.Equal(t, int64(-5), Int(-5).Int64())
		require.Equal(t, UintKind, Uint(5).Kind())
		require.Equal(t, uint64(5), Uint(5).Uint64())
		require.Equal(t, Float32Kind, Float32(1.5).Kind())
		require.Equal(t, float32(1.5), Float32(1.5).Float32())
		require.Equal(t, Float64Kind, Float64(2.5).Kind())
		require.Equal(t, 2.5, Float64(2.5).Float64())
	})

	t.Run("zero value is integer zero", func(t *testing.T) {
		var n Number
		require.Equal(t, IntKind, n.Kind())
		require.Equal(t, int64(0), n.Int64())
		got := formatRaw(t, func(w *RawWriter) error { return w.Number(n) })
		require.Equal(t, "0", got)
	})

	t.Run("dispatch", func(t *testing.T) {
		for want, n := range map[string]Number{
			"-42":                  Int(-42),
			"18446744073709551615": Uint(math.MaxUint64),
			"1.5":                  Float32(1.5),
			"0.25":                 Float64(0.25),
		} {
			got := formatRaw(t, func(w *RawWriter) error { return w.Number(n) })
			require.Equal(t, want, got)
		}
	})

	t.Run("finite check", func(t *testing.T) {
		require.True(t, Int(1).IsFinite())
		require.True(t, Uint(1).IsFinite())
		require.True(t, Float64(1).IsFinite())
		require.False(t, Float64(math.NaN()).IsFinite())
		require.False(t, Float32(float32(math.Inf(-1))).IsFinite())
	})
}
