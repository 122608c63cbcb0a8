package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShopifyHMAC(t *testing.T) {
	body := []byte(`{"id":1}`)
	sig := SignShopifyHMAC(body, "whsec")

	assert.True(t, VerifyShopifyHMAC(body, sig, "whsec"))
	assert.False(t, VerifyShopifyHMAC(body, sig, "other"))
	assert.False(t, VerifyShopifyHMAC([]byte(`{"id":2}`), sig, "whsec"))
	assert.False(t, VerifyShopifyHMAC(body, "", "whsec"))
	assert.False(t, VerifyShopifyHMAC(body, sig, ""))
}

func TestGID(t *testing.T) {
	assert.Equal(t, "123", GIDTail("gid://shopify/Product/123"))
	assert.Equal(t, "123", GIDTail("123"))
	assert.Equal(t, "gid://shopify/ProductVariant/9", ToGID("ProductVariant", "9"))
	assert.Equal(t, "gid://shopify/Product/1", ToGID("ProductVariant", "gid://shopify/Product/1"))
}
