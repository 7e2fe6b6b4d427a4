package formatxx_test

import (
	"os"
	"testing"

	"github.com/marcinwie/formatxx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// corpusArg is one declaratively typed argument; exactly one field is set.
type corpusArg struct {
	Int   *int64   `yaml:"int"`
	Uint  *uint64  `yaml:"uint"`
	Float *float64 `yaml:"float"`
	Bool  *bool    `yaml:"bool"`
	Str   *string  `yaml:"str"`
	Rune  *string  `yaml:"rune"`
}

func (a corpusArg) bind(t *testing.T) formatxx.Arg {
	t.Helper()
	switch {
	case a.Int != nil:
		return formatxx.Int(*a.Int)
	case a.Uint != nil:
		return formatxx.Uint(*a.Uint)
	case a.Float != nil:
		return formatxx.Float(*a.Float)
	case a.Bool != nil:
		return formatxx.Bool(*a.Bool)
	case a.Str != nil:
		return formatxx.String(*a.Str)
	case a.Rune != nil:
		return formatxx.Rune([]rune(*a.Rune)[0])
	}
	t.Fatal("corpus argument with no value")
	return formatxx.Arg{}
}

type corpusCase struct {
	Name     string      `yaml:"name"`
	Engine   string      `yaml:"engine"` // "format" or "printf"
	Template string      `yaml:"template"`
	Args     []corpusArg `yaml:"args"`
	Want     string      `yaml:"want"`
	WantErr  string      `yaml:"wantErr"`
}

var corpusErrors = map[string]error{
	"invalid template": formatxx.ErrInvalidTemplate,
	"index range":      formatxx.ErrIndexRange,
	"too few args":     formatxx.ErrTooFewArgs,
}

func TestCorpus(t *testing.T) {
	t.Parallel()
	data, err := os.ReadFile("testdata/cases.yaml")
	require.NoError(t, err)

	var cases []corpusCase
	require.NoError(t, yaml.Unmarshal(data, &cases))
	require.NotEmpty(t, cases)

	for _, tc := range cases {
		tc := tc
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()
			args := make([]formatxx.Arg, len(tc.Args))
			for i, a := range tc.Args {
				args[i] = a.bind(t)
			}
			var got string
			var ferr error
			switch tc.Engine {
			case "printf":
				got, ferr = formatxx.PrintfString(tc.Template, args...)
			case "format", "":
				got, ferr = formatxx.FormatString(tc.Template, args...)
			default:
				t.Fatalf("unknown engine %q", tc.Engine)
			}
			if tc.WantErr != "" {
				want, ok := corpusErrors[tc.WantErr]
				require.True(t, ok, "unknown sentinel %q", tc.WantErr)
				assert.ErrorIs(t, ferr, want)
				return
			}
			require.NoError(t, ferr)
			assert.Equal(t, tc.Want, got)
		})
	}
}
