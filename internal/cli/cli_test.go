package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/badpassword/badpassword-go/internal/model"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want model.Options
	}{
		{name: "defaults", args: nil, want: model.Options{Words: 1}},
		{name: "short flags", args: []string{"-w", "3", "-s", "2", "-c", "-n", "-e"},
			want: model.Options{Words: 3, Symbols: 2, Caps: true, Numbers: true, Exclamation: true}},
		{name: "long flags", args: []string{"--words", "4", "--symbols=1", "--caps", "--numbers", "--exclamation"},
			want: model.Options{Words: 4, Symbols: 1, Caps: true, Numbers: true, Exclamation: true}},
		{name: "mixed forms", args: []string{"--caps", "-e"},
			want: model.Options{Words: 1, Caps: true, Exclamation: true}},
		{name: "negative counts accepted", args: []string{"-w", "-2", "-s", "-7"},
			want: model.Options{Words: -2, Symbols: -7}},
		{name: "explicit false", args: []string{"-c=false", "--numbers=true"},
			want: model.Options{Words: 1, Numbers: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			opts, exit, err := Parse(tt.args, &out)
			require.NoError(t, err)
			assert.False(t, exit)
			assert.Equal(t, tt.want, opts)
			assert.Empty(t, out.String())
		})
	}
}

func TestParse_Help(t *testing.T) {
	for _, arg := range []string{"-h", "--help"} {
		var out bytes.Buffer
		_, exit, err := Parse([]string{arg}, &out)
		require.NoError(t, err)
		assert.True(t, exit)
		assert.Contains(t, out.String(), "--exclamation")
	}
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown flag", args: []string{"--strong"}},
		{name: "non-integer count", args: []string{"-w", "many"}},
		{name: "missing value", args: []string{"--symbols"}},
		{name: "positional argument", args: []string{"hunter2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			_, exit, err := Parse(tt.args, &out)
			require.Error(t, err)
			assert.False(t, exit)

			var exitErr *ExitError
			require.True(t, errors.As(err, &exitErr))
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, out.String(), "Usage:")
		})
	}
}

func TestReport(t *testing.T) {
	var out bytes.Buffer
	err := Report(&out, model.Result{
		Password: "Password1!",
		Notices: []model.Notice{
			{Kind: model.NoticeWarning, Message: "first"},
			{Kind: model.NoticeConfirmation, Message: "second"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\nPassword1!\n", out.String())
}

func TestReport_PasswordOnly(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Report(&out, model.Result{Password: "letmein"}))
	assert.Equal(t, "letmein\n", out.String())
}
