package dotenv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Pair
	}{
		{
			name: "plain pairs",
			text: "DB_URL=postgres://x\nKEY=y",
			want: []Pair{{"DB_URL", "postgres://x"}, {"KEY", "y"}},
		},
		{
			name: "skips comments and blanks",
			text: "# comment\n\nAPI_KEY=abc\n   \n# another",
			want: []Pair{{"API_KEY", "abc"}},
		},
		{
			name: "splits on first equals only",
			text: "URL=https://example.com?a=1&b=2",
			want: []Pair{{"URL", "https://example.com?a=1&b=2"}},
		},
		{
			name: "strips one level of quotes",
			text: `A="quoted value"` + "\n" + `B='single'` + "\n" + `C="inner 'kept'"`,
			want: []Pair{{"A", "quoted value"}, {"B", "single"}, {"C", "inner 'kept'"}},
		},
		{
			name: "windows line endings",
			text: "A=1\r\nB=2",
			want: []Pair{{"A", "1"}, {"B", "2"}},
		},
		{
			name: "ignores lines without key",
			text: "=value\nnoequals\nOK=1",
			want: []Pair{{"OK", "1"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.text))
		})
	}
}

func TestRender(t *testing.T) {
	pairs := []Pair{{"DB_URL", "x"}, {"KEY", "y"}}
	assert.Equal(t, "DB_URL=x\nKEY=y\n", Render(pairs))
	assert.Equal(t, "", Render(nil))
}
