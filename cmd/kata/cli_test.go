package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rl1809/kata/internal/config"
	"github.com/rl1809/kata/internal/core/domain"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	err := execute(cmd, append([]string{"--log-level=error"}, args...))
	return out.String(), err
}

func TestCLI_Exercises(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"format default", []string{"format", "Hello One"}, "HELLO ONE\n"},
		{"format upper", []string{"format", "Hello One", "--to-upper=true"}, "HELLO ONE\n"},
		{"format lower", []string{"format", "Hello One", "--to-upper=false"}, "hello one\n"},
		{"filter", []string{"filter", `[{"title":"A","rating":3},{"title":"B","rating":4},{"title":"C","rating":5}]`},
			`[{"title":"B","rating":4},{"title":"C","rating":5}]` + "\n"},
		{"concat", []string{"concat", "[1,2]", "[3]", "[]", "[4,5]"}, "[1,2,3,4,5]\n"},
		{"concat nothing", []string{"concat"}, "[]\n"},
		{"vehicle", []string{"vehicle", "--make", "Toyota", "--year", "2020"}, "Make: Toyota, Year: 2020\n"},
		{"car", []string{"vehicle", "--make", "Toyota", "--year", "2020", "--model", "Corolla"},
			"Make: Toyota, Year: 2020\nModel: Corolla\n"},
		{"process text", []string{"process", "hello"}, "5\n"},
		{"process number", []string{"process", "10"}, "20\n"},
		{"process numeric text", []string{"process", "--text", "10"}, "2\n"},
		{"expensive", []string{"expensive", `[{"name":"a","price":5},{"name":"b","price":9},{"name":"c","price":9}]`},
			`{"name":"b","price":9}` + "\n"},
		{"expensive empty", []string{"expensive", "[]"}, "null\n"},
		{"weekend", []string{"day-type", "Saturday"}, "Weekend\n"},
		{"weekday", []string{"day-type", "Wednesday"}, "Weekday\n"},
		{"square", []string{"square", "5", "--delay", "10ms"}, "25\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out, err := run(t, c.args...)
			require.NoError(t, err)
			assert.Equal(t, c.want, out)
		})
	}
}

func TestCLI_SquareRejects(t *testing.T) {
	start := time.Now()
	_, err := run(t, "square", "--delay", "1h", "--", "-1")

	assert.ErrorIs(t, err, domain.ErrNegativeInput)
	assert.Less(t, time.Since(start), time.Second)
}

func TestCLI_NegativeNumbers(t *testing.T) {
	t.Run("square rejects a bare negative", func(t *testing.T) {
		_, err := run(t, "square", "-1", "--delay", "1h")
		assert.ErrorIs(t, err, domain.ErrNegativeInput)
	})

	t.Run("square rejects after flags", func(t *testing.T) {
		_, err := run(t, "square", "--delay", "1h", "-2.5")
		assert.ErrorIs(t, err, domain.ErrNegativeInput)
	})

	t.Run("process doubles a negative", func(t *testing.T) {
		out, err := run(t, "process", "-5")
		require.NoError(t, err)
		assert.Equal(t, "-10\n", out)
	})

	t.Run("negative flag value stays with its flag", func(t *testing.T) {
		out, err := run(t, "vehicle", "--make", "Ford", "--year", "-5")
		require.NoError(t, err)
		assert.Equal(t, "Make: Ford, Year: -5\n", out)
	})
}

func TestCLI_ProcessNonFiniteIsText(t *testing.T) {
	cases := []struct {
		arg  string
		want string
	}{
		{"Infinity", "8\n"},
		{"NaN", "3\n"},
		{"-Inf", "4\n"},
		{"Inf", "3\n"},
	}
	for _, c := range cases {
		t.Run(c.arg, func(t *testing.T) {
			out, err := run(t, "process", c.arg)
			require.NoError(t, err)
			assert.Equal(t, c.want, out)
		})
	}
}

func TestCLI_LogLevelFlagIsValidated(t *testing.T) {
	for _, level := range []string{"dpanic", "panic", "fatal"} {
		_, err := run(t, "--log-level="+level, "format", "x")
		assert.ErrorIs(t, err, config.ErrInvalidConfig, "level %s", level)
	}
}

func TestNegativeArgs(t *testing.T) {
	root := newRootCmd()

	assert.Equal(t, []string{"square", "--", "-1"}, negativeArgs(root, []string{"square", "-1"}))
	assert.Equal(t, []string{"square", "5"}, negativeArgs(root, []string{"square", "5"}))
	assert.Equal(t, []string{"square", "--delay", "1h", "--", "-3"},
		negativeArgs(root, []string{"square", "-3", "--delay", "1h"}))
	assert.Equal(t, []string{"square", "--", "-1"}, negativeArgs(root, []string{"square", "--", "-1"}))
}

func TestCLI_BadInput(t *testing.T) {
	_, err := run(t, "filter", "not json")
	assert.Error(t, err)

	_, err = run(t, "day-type", "Someday")
	assert.ErrorIs(t, err, domain.ErrUnknownDay)
}

func TestCLI_Demo(t *testing.T) {
	t.Setenv("KATA_SQUARE_DELAY", "5ms")

	out, err := run(t, "demo")
	require.NoError(t, err)

	for _, want := range []string{
		`"HELLO ONE"`,
		`"hello one"`,
		`[{"title":"Book A","rating":4.5},{"title":"Book C","rating":5}]`,
		`["a","b","c"]`,
		"Make: Toyota, Year: 2020\nModel: Corolla",
		`{"name":"Bag","price":50}`,
		"Weekday\nWeekend",
		"16\n",
		"Error: Negative number is not allowed",
	} {
		assert.True(t, strings.Contains(out, want), "demo output missing %q:\n%s", want, out)
	}
}

func TestCLI_BadConfig(t *testing.T) {
	t.Setenv("KATA_LOG_FORMAT", "xml")

	_, err := run(t, "format", "x")
	assert.Error(t, err)
}
