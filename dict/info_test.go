package dict

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownloadURLLatest(t *testing.T) {
	url := DownloadURL(Core, "")
	assert.Equal(t, "https://d2ej7fkh96fzlu.cloudfront.net/sudachidict/sudachi-dictionary-latest-core.zip", url)
}

func TestDownloadURLVersioned(t *testing.T) {
	url := DownloadURL(Full, "20241021")
	assert.Equal(t, "https://d2ej7fkh96fzlu.cloudfront.net/sudachidict/sudachi-dictionary-20241021-full.zip", url)
}

func TestDownloadURLPattern(t *testing.T) {
	for _, size := range []Size{Small, Core, Full} {
		for _, version := range []string{"", "20241021"} {
			want := version
			if want == "" {
				want = "latest"
			}
			url := DownloadURL(size, version)
			assert.Equal(t, fmt.Sprintf("%s/sudachi-dictionary-%s-%s.zip", BaseURL, want, size), url)
		}
	}
}

func TestGetInfo(t *testing.T) {
	info := GetInfo(Core, "")
	assert.Equal(t, "core", info.Name)
	assert.Equal(t, 70, info.SizeMB)
	assert.Equal(t, "Basic vocabulary dictionary (recommended)", info.Description)
	assert.Equal(t, "system_core.dic", info.DicFilename)
	assert.Equal(t, "https://d2ej7fkh96fzlu.cloudfront.net/sudachidict/sudachi-dictionary-latest-core.zip", info.DownloadURL)
}

func TestGetInfoDicFilename(t *testing.T) {
	for _, size := range []Size{Small, Core, Full} {
		info := GetInfo(size, "")
		assert.Equal(t, fmt.Sprintf("system_%s.dic", size), info.DicFilename)
	}
}

func TestAllInfo(t *testing.T) {
	infos := AllInfo("")
	require.Len(t, infos, 3)
	assert.Equal(t, "small", infos[0].Name)
	assert.Equal(t, "core", infos[1].Name)
	assert.Equal(t, "full", infos[2].Name)

	for i, size := range []Size{Small, Core, Full} {
		assert.Equal(t, GetInfo(size, ""), infos[i])
	}
}

func TestAllInfoVersioned(t *testing.T) {
	infos := AllInfo("20241021")
	require.Len(t, infos, 3)
	for _, info := range infos {
		assert.Contains(t, info.DownloadURL, "sudachi-dictionary-20241021-")
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		in      string
		want    Size
		wantErr bool
	}{
		{in: "small", want: Small},
		{in: "core", want: Core},
		{in: "full", want: Full},
		{in: "huge", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSize(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
