package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModeMappingIsBijective(t *testing.T) {
	seen := make(map[int]bool)
	for _, mode := range []Mode{ModeShort, ModeMiddle, ModeLong} {
		am := mode.analyzerMode()
		assert.False(t, seen[int(am)], "mode %s maps to an already-used analyzer mode", mode)
		seen[int(am)] = true
		assert.Equal(t, mode, modeFromAnalyzer(am), "round trip through the analyzer mode")
	}
	assert.Len(t, seen, 3)
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "A", ModeShort.String())
	assert.Equal(t, "B", ModeMiddle.String())
	assert.Equal(t, "C", ModeLong.String())
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{in: "A", want: ModeShort},
		{in: "a", want: ModeShort},
		{in: "short", want: ModeShort},
		{in: "B", want: ModeMiddle},
		{in: "middle", want: ModeMiddle},
		{in: "C", want: ModeLong},
		{in: "Long", want: ModeLong},
		{in: "D", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, ErrInvalidArgument, KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
