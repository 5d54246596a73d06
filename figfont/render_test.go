package figfont_test

import (
	"strings"
	"testing"

	"github.com/bjaus/profilecard/figfont"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pairFont(t *testing.T, hdr string, x, y []string) *figfont.Font {
	t.Helper()
	height := len(x)
	f, err := figfont.Parse("pair", fontData(hdr, nil, height, 'Y', map[rune][]string{
		'X': x,
		'Y': y,
	}))
	require.NoError(t, err)
	return f
}

func TestRenderLayouts(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		hdr  string
		x, y []string
		want string
	}{
		{
			name: "full width",
			hdr:  "flf2a$ 2 2 4 -1 0",
			x:    []string{"x  ", "x  "},
			y:    []string{"  y", " yy"},
			want: "x    y\nx   yy",
		},
		{
			name: "fitting",
			hdr:  "flf2a$ 2 2 4 0 0",
			x:    []string{"x  ", "x  "},
			y:    []string{"  y", " yy"},
			want: "x y\nxyy",
		},
		{
			name: "fitting keeps touching ink",
			hdr:  "flf2a$ 2 2 4 0 0",
			x:    []string{"x|", "x|"},
			y:    []string{"|y", "|y"},
			want: "x||y\nx||y",
		},
		{
			name: "equal rule",
			hdr:  "flf2a$ 2 2 4 1 0",
			x:    []string{"x|", "x|"},
			y:    []string{"|y", "|y"},
			want: "x|y\nx|y",
		},
		{
			name: "underscore rule",
			hdr:  "flf2a$ 1 1 4 2 0",
			x:    []string{"x_"},
			y:    []string{"|y"},
			want: "x|y",
		},
		{
			name: "hierarchy rule",
			hdr:  "flf2a$ 1 1 4 4 0",
			x:    []string{"x/"},
			y:    []string{"|y"},
			want: "x/y",
		},
		{
			name: "opposite pair rule",
			hdr:  "flf2a$ 1 1 4 8 0",
			x:    []string{"x["},
			y:    []string{"]y"},
			want: "x|y",
		},
		{
			name: "big x rule",
			hdr:  "flf2a$ 1 1 4 16 0",
			x:    []string{"x>"},
			y:    []string{"<y"},
			want: "xXy",
		},
		{
			name: "big x slashes",
			hdr:  "flf2a$ 1 1 4 16 0",
			x:    []string{"x/"},
			y:    []string{"\\y"},
			want: "x|y",
		},
		{
			name: "hardblank rule",
			hdr:  "flf2a$ 1 1 4 32 0",
			x:    []string{"x$"},
			y:    []string{"$y"},
			want: "x y",
		},
		{
			name: "hardblanks block other rules",
			hdr:  "flf2a$ 1 1 4 1 0",
			x:    []string{"x$"},
			y:    []string{"$y"},
			want: "x  y",
		},
		{
			name: "universal",
			hdr:  "flf2a$ 1 1 4 -1 0 0 128",
			x:    []string{"xa"},
			y:    []string{"by"},
			want: "xby",
		},
		{
			name: "narrow glyphs never smush",
			hdr:  "flf2a$ 1 1 4 -1 0 0 128",
			x:    []string{"x"},
			y:    []string{"y"},
			want: "xy",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := pairFont(t, tt.hdr, tt.x, tt.y)
			assert.Equal(t, tt.want, f.Render("XY"))
		})
	}
}

func TestRenderSkipsMissingGlyphs(t *testing.T) {
	t.Parallel()
	f := pairFont(t, "flf2a$ 2 2 4 -1 0", []string{"x  ", "x  "}, []string{"  y", " yy"})
	assert.Equal(t, "x    y\nx   yy", f.Render("XZ?~Y"))
}

func TestRenderNewlineStartsBlock(t *testing.T) {
	t.Parallel()
	f := pairFont(t, "flf2a$ 2 2 4 -1 0", []string{"x  ", "x  "}, []string{"  y", " yy"})
	assert.Equal(t, "x\nx\n  y\n yy", f.Render("X\nY"))
}

func TestRenderEmpty(t *testing.T) {
	t.Parallel()
	f := pairFont(t, "flf2a$ 2 2 4 -1 0", []string{"x", "x"}, []string{"y", "y"})
	assert.Equal(t, "\n", f.Render(""))
}

func TestRenderBundledBlock(t *testing.T) {
	t.Parallel()
	f, err := figfont.NewRegistry().Lookup("Block")
	require.NoError(t, err)

	rows := strings.Split(f.Render("HI"), "\n")
	require.Len(t, rows, 5)
	assert.Equal(t, "█   █ ███", rows[0])
	assert.Equal(t, "█   █  █", rows[1])
	assert.Equal(t, "█████  █", rows[2])

	assert.Equal(t, f.Render("HI"), f.Render("hi"))
}
