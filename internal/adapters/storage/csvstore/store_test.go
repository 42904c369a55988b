package csvstore

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/mental-detox/internal/domain"
)

const datasetPath = "/data/mental_detox_dataset.csv"

const validCSV = `issue,quote,reference,video_title,video_link,tip
anxiety,"This too shall pass.",Persian adage,Box breathing,https://youtu.be/abc123,Breathe in for four counts.
Anxiety,Feelings are visitors.,Unknown,,,
Stress,,,Desk stretches,https://www.youtube.com/watch?v=xyz789,Stand up every hour.
  ,orphan quote,,,,
`

// newTestStore writes content to an in-memory filesystem and returns a store over it.
func newTestStore(t *testing.T, content string) *Store {
	t.Helper()

	fs := afero.NewMemMapFs()
	if content != "" {
		require.NoError(t, afero.WriteFile(fs, datasetPath, []byte(content), 0o644))
	}

	return New(Config{
		Path:   datasetPath,
		Fs:     fs,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestStore_NotLoadedBeforeLoad(t *testing.T) {
	store := newTestStore(t, validCSV)

	snap := store.Snapshot()
	assert.False(t, snap.Loaded())
	require.Error(t, snap.LoadError())
	assert.Empty(t, snap.Records())
	assert.Equal(t, 0, snap.Index().Len())
	require.Error(t, store.Check(context.Background()))
}

func TestStore_Load_Success(t *testing.T) {
	store := newTestStore(t, validCSV)

	require.NoError(t, store.Load(context.Background()))

	snap := store.Current()
	assert.True(t, snap.Loaded())
	require.NoError(t, snap.LoadError())
	require.NoError(t, store.Check(context.Background()))

	assert.Len(t, snap.Records(), 3)
	assert.Equal(t, 1, snap.Skipped())
	assert.Equal(t, datasetPath, snap.Path())
	assert.False(t, snap.LoadedAt().IsZero())
	assert.Equal(t, []string{"anxiety", "Stress"}, snap.Index().Sorted())

	first := snap.Records()[0]
	assert.Equal(t, domain.Record{
		Issue:      "anxiety",
		Quote:      "This too shall pass.",
		Reference:  "Persian adage",
		VideoTitle: "Box breathing",
		VideoLink:  "https://youtu.be/abc123",
		Tip:        "Breathe in for four counts.",
	}, first)

	second := snap.Records()[1]
	assert.Empty(t, second.VideoTitle)
	assert.Empty(t, second.VideoLink)
	assert.Empty(t, second.Tip)
}

func TestStore_Load_FileMissing(t *testing.T) {
	store := newTestStore(t, "")

	err := store.Load(context.Background())

	require.Error(t, err)
	assert.True(t, domain.IsUnavailable(err))
	assert.Contains(t, err.Error(), "not found")
	assert.False(t, store.Snapshot().Loaded())
	assert.Equal(t, "dataset", store.Name())
}

func TestStore_Load_MissingColumns(t *testing.T) {
	store := newTestStore(t, "issue,quote,reference\nanxiety,q,r\n")

	err := store.Load(context.Background())

	require.Error(t, err)
	assert.True(t, domain.IsUnavailable(err))
	assert.Contains(t, err.Error(), "video_title, video_link, tip")

	snap := store.Snapshot()
	assert.False(t, snap.Loaded())
	assert.Empty(t, snap.Records())
	assert.Equal(t, 0, snap.Index().Len())
}

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantErr     error
		wantRecords int
		wantSkipped int
	}{
		{
			name:    "empty input",
			input:   "",
			wantErr: ErrEmptyFile,
		},
		{
			name:    "missing tip column",
			input:   "issue,quote,reference,video_title,video_link\n",
			wantErr: ErrMissingColumns,
		},
		{
			name:        "header only",
			input:       "issue,quote,reference,video_title,video_link,tip\n",
			wantRecords: 0,
		},
		{
			name:        "byte order mark and padded header",
			input:       "\ufeff issue , quote,reference,video_title,video_link,tip\nGrief,q,r,t,l,tip\n",
			wantRecords: 1,
		},
		{
			name:        "reordered and extra columns",
			input:       "tip,extra,issue,quote,reference,video_title,video_link\nrest,x,Burnout,q,r,t,l\n",
			wantRecords: 1,
		},
		{
			name:        "short rows are tolerated",
			input:       "issue,quote,reference,video_title,video_link,tip\nLoneliness,Call a friend\n",
			wantRecords: 1,
		},
		{
			name:        "blank and NA issues are skipped",
			input:       "issue,quote,reference,video_title,video_link,tip\n,a,,,,\nNaN,b,,,,\nAnger,c,,,,\n",
			wantRecords: 1,
			wantSkipped: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, skipped, err := Parse(strings.NewReader(tt.input))

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Len(t, records, tt.wantRecords)
			assert.Equal(t, tt.wantSkipped, skipped)
		})
	}
}

func TestParse_ReorderedColumnsMapByName(t *testing.T) {
	input := "tip,issue,quote,reference,video_title,video_link\nRest well,Burnout,Slow down,Anon,Title,https://youtu.be/x\n"

	records, _, err := Parse(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Burnout", records[0].Issue)
	assert.Equal(t, "Rest well", records[0].Tip)
	assert.Equal(t, "https://youtu.be/x", records[0].VideoLink)
}

func TestParse_MissingMarkersBecomeAbsent(t *testing.T) {
	input := "issue,quote,reference,video_title,video_link,tip\nFear,NaN,null,N/A,,None\n"

	records, _, err := Parse(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, domain.Record{Issue: "Fear"}, records[0])
}

func TestParse_PaddedMarkersAreText(t *testing.T) {
	input := "issue,quote,reference,video_title,video_link,tip\nFear, NA ,NA, None,,null\n"

	records, _, err := Parse(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, domain.Record{Issue: "Fear", Quote: "NA", VideoTitle: "None"}, records[0])
}

func TestParse_BareQuoteInUnquotedField(t *testing.T) {
	input := "issue,quote,reference,video_title,video_link,tip\n" +
		"Anxiety,He said \"breathe\" slowly,Anon,,,Count to four.\n" +
		"Stress,Pause.,,,,\n"

	records, skipped, err := Parse(strings.NewReader(input))

	require.NoError(t, err)
	assert.Zero(t, skipped)
	require.Len(t, records, 2)
	assert.Equal(t, `He said "breathe" slowly`, records[0].Quote)
	assert.Equal(t, "Count to four.", records[0].Tip)
	assert.Equal(t, "Stress", records[1].Issue)
}

func TestStore_Load_HeaderOnly(t *testing.T) {
	store := newTestStore(t, "issue,quote,reference,video_title,video_link,tip\n,,,,,\n")

	require.NoError(t, store.Load(context.Background()))

	snap := store.Current()
	assert.True(t, snap.Loaded())
	assert.Empty(t, snap.Records())
	assert.Equal(t, 1, snap.Skipped())
	assert.Equal(t, 0, snap.Index().Len())
}
