package utils

import (
	"fmt"
	"strings"
)

// GIDTail returns the numeric tail of a Shopify GID ("gid://shopify/Product/123" -> "123").
// Plain ids are returned unchanged.
func GIDTail(id string) string {
	if i := strings.LastIndex(id, "/"); i >= 0 {
		return id[i+1:]
	}
	return id
}

// ToGID expands a plain id into a GID of the given resource type.
func ToGID(resource, id string) string {
	if strings.HasPrefix(id, "gid://") {
		return id
	}
	return fmt.Sprintf("gid://shopify/%s/%s", resource, id)
}
