package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTag(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"SEAFOOD", "Seafood"},
		{" brunch ", "Brunch"},
		{"pIZZA", "Pizza"},
		{"", ""},
		{"   ", ""},
		{"élan", "Élan"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTag(tt.in))
		})
	}
}

func TestNormalizeTags_DropsEmptyAndDuplicates(t *testing.T) {
	got := NormalizeTags([]string{"Casual", " pizza", "", "PIZZA", "casual", "Brunch"})

	assert.Equal(t, []string{"Casual", "Pizza", "Brunch"}, got)
}

func TestSplitTags(t *testing.T) {
	assert.Nil(t, SplitTags("  "))
	assert.Equal(t, []string{"Casual", "Pizza"}, NormalizeTags(SplitTags("Casual,Pizza")))
	assert.Equal(t, []string{"Casual", "Pizza"}, NormalizeTags(SplitTags("casual , pizza,")))
}
