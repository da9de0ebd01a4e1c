package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrimaryImage(t *testing.T) {
	p := Product{Images: []ProductImage{
		{Image: "a.jpg"},
		{Image: "b.jpg", IsPrimary: true},
	}}
	assert.Equal(t, "b.jpg", p.PrimaryImage())

	// без флага — первая по порядку
	p.Images[1].IsPrimary = false
	assert.Equal(t, "a.jpg", p.PrimaryImage())

	// без картинок вообще — заглушка
	p.Images = nil
	assert.Equal(t, "default.jpg", p.PrimaryImage())
}
