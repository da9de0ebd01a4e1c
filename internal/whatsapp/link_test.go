package whatsapp

import (
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLink(t *testing.T) {
	link := Link("Velvet Cloak", decimal.NewFromInt(450))

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "wa.me", u.Host)
	assert.Equal(t, "/"+phoneNumber, u.Path)
	assert.Equal(t, "مرحبا، أريد طلب هذا المنتج: Velvet Cloak - السعر: 450 درهم", u.Query().Get("text"))
}

func TestLinkEncodesSpacesAsPercent20(t *testing.T) {
	link := Link("Velvet Cloak", decimal.NewFromInt(450))

	assert.Contains(t, link, "%20")
	assert.NotContains(t, link, "+")
}

func TestLinkEncodesQueryUnsafeRunes(t *testing.T) {
	link := Link("Cloak & Dagger?", decimal.RequireFromString("99.5"))

	u, err := url.Parse(link)
	require.NoError(t, err)
	text := u.Query().Get("text")
	assert.Contains(t, text, "Cloak & Dagger?")
	assert.Contains(t, text, "99.5 درهم")
}
