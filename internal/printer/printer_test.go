package printer

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	noColor := color.NoColor
	color.NoColor = true
	var out, errOut bytes.Buffer
	SetOutput(&out, &errOut)
	t.Cleanup(func() {
		SetOutput(nil, nil)
		color.NoColor = noColor
	})
	return &out, &errOut
}

func TestError(t *testing.T) {
	t.Run("returns error with title", func(t *testing.T) {
		_, errOut := capture(t)
		err := Error("Test Error", "This is a test error", []string{})
		require.Error(t, err)
		require.Equal(t, "Test Error", err.Error())
		assert.Equal(t, "Test Error\n\nThis is a test error\n", errOut.String())
	})

	t.Run("prints a single suggestion inline", func(t *testing.T) {
		_, errOut := capture(t)
		err := Error("Test Error", "Explanation", []string{"Try this fix"})
		require.Equal(t, "Test Error", err.Error())
		assert.Contains(t, errOut.String(), "\nTry this fix\n")
		assert.NotContains(t, errOut.String(), "Either:")
	})

	t.Run("numbers multiple suggestions", func(t *testing.T) {
		_, errOut := capture(t)
		err := Error("Test Error", "Explanation", []string{
			"First option",
			"Second option",
		})
		require.Equal(t, "Test Error", err.Error())
		assert.Contains(t, errOut.String(), "Either:\n  1. First option\n  2. Second option\n")
	})
}

func TestErrorWithContext(t *testing.T) {
	_, errOut := capture(t)
	context := map[string]string{
		"Year": "2024",
		"Day":  "7",
	}
	err := ErrorWithContext("Test Error", "Explanation", context, nil)
	require.Equal(t, "Test Error", err.Error())
	assert.Contains(t, errOut.String(), "\n  Day: 7\n  Year: 2024\n")
}

func TestFail_KeepsCause(t *testing.T) {
	capture(t)
	cause := errors.New("boom")

	err := Fail(cause, "Run failed", "", nil, nil)
	assert.Equal(t, "Run failed", err.Error())
	assert.ErrorIs(t, err, cause)

	var reported *Reported
	assert.True(t, errors.As(err, &reported))
}

func TestOutputStreams(t *testing.T) {
	out, errOut := capture(t)

	Success("cached %d inputs\n", 3)
	Info("plain\n")
	Warning("careful\n")
	Step("fetching\n")

	assert.Equal(t, "✓ cached 3 inputs\nplain\n", out.String())
	assert.Equal(t, "⚠️  careful\n→ fetching\n", errOut.String())
}
