package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterJokes(t *testing.T) {
	cases := []struct {
		name string
		in   []string
		out  []string
	}{
		{"empty", []string{}, []string{}},
		{"all blank", []string{"", "   ", "\t\n"}, []string{}},
		{"trimmed", []string{"  a joke  ", "another"}, []string{"a joke", "another"}},
		{"mixed", []string{"", "keep", "  ", " also keep "}, []string{"keep", "also keep"}},
	}
	for _, v := range cases {
		t.Run(v.name, func(t *testing.T) {
			assert.Equal(t, v.out, FilterJokes(v.in))
		})
	}
}
