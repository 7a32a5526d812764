package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSenderFilter(t *testing.T) {
	tests := []struct {
		name   string
		filter SenderFilter
		text   string
		want   bool
	}{
		{"Zero Value", SenderFilter{}, "anyone", true},
		{"Any", AnySender(), "anyone", true},
		{"Blank Entries", OneOf("", "  "), "anyone", true},
		{"Name Match", OneOf("Mallory"), "Mallory [#42]", true},
		{"ID Match", OneOf("Trent", "42"), "Mallory [#42]", true},
		{"No Match", OneOf("Trent"), "Mallory [#42]", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(tt.text))
		})
	}
}

func TestSenderFilter_Senders(t *testing.T) {
	f := OneOf(" a ", "b")
	assert.False(t, f.IsAny())
	assert.Equal(t, []string{"a", "b"}, f.Senders())
	assert.True(t, AnySender().IsAny())
}
