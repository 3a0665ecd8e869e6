package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifiedErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"config", Configf("not a DX project: %s", "/tmp/x"), ErrConfig},
		{"unparseable", UnparseableNamef("couldn't parse object name from path %s", "a/b"), ErrUnparseableName},
		{"missing field", MissingFieldf("record type without full name: %s", "x"), ErrMissingField},
		{"invalid name", InvalidNamef("bad name %q", "a b"), ErrInvalidName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, Is(tt.err, tt.sentinel))
			assert.True(t, IsFatal(tt.err))

			wrapped := Wrap(tt.err, "generating")
			assert.True(t, Is(wrapped, tt.sentinel))
			assert.True(t, IsFatal(wrapped))
		})
	}
}

func TestIsFatal_Unclassified(t *testing.T) {
	assert.False(t, IsFatal(nil))
	assert.False(t, IsFatal(New("disk full")))
}

func TestConfigfKeepsMessage(t *testing.T) {
	err := Configf("only DX projects are supported: %s", "/proj")
	assert.Equal(t, "only DX projects are supported: /proj", err.Error())

	hinted := WithHint(err, "run from the project root")
	assert.Contains(t, FlattenHints(hinted), "run from the project root")
}

func TestWrapConfigf(t *testing.T) {
	err := WrapConfigf(New("unexpected EOF"), "failed to parse %s", "package.json")
	assert.True(t, Is(err, ErrConfig))
	assert.Equal(t, "failed to parse package.json: unexpected EOF", err.Error())
}
