package pathutil_test

import (
	"fmt"

	"news-classify/internal/handler/http/pathutil"
)

// ExampleNormalizePath demonstrates how path normalization works
// to prevent metrics label cardinality explosion.
func ExampleNormalizePath() {
	// Before normalization: Each record ID creates a unique path label
	// This would cause cardinality explosion in Prometheus metrics

	// After normalization: All record IDs map to the same template
	fmt.Println(pathutil.NormalizePath("/news/123"))
	fmt.Println(pathutil.NormalizePath("/news/456"))
	fmt.Println(pathutil.NormalizePath("/news/789"))

	// Output:
	// /news/:id
	// /news/:id
	// /news/:id
}

// ExampleNormalizePath_static demonstrates that static endpoints remain unchanged.
func ExampleNormalizePath_static() {
	fmt.Println(pathutil.NormalizePath("/health"))
	fmt.Println(pathutil.NormalizePath("/metrics"))
	fmt.Println(pathutil.NormalizePath("/news/stats/summary"))

	// Output:
	// /health
	// /metrics
	// /news/stats/summary
}

// ExampleNormalizePath_queryParameters demonstrates that query parameters are stripped.
func ExampleNormalizePath_queryParameters() {
	fmt.Println(pathutil.NormalizePath("/news/123?page=1"))
	fmt.Println(pathutil.NormalizePath("/news/search?q=economy"))
	fmt.Println(pathutil.NormalizePath("/health?format=json"))

	// Output:
	// /news/:id
	// /news/search
	// /health
}

// ExampleNormalizePath_trailingSlash demonstrates that trailing slashes are handled.
func ExampleNormalizePath_trailingSlash() {
	fmt.Println(pathutil.NormalizePath("/news/123/"))
	fmt.Println(pathutil.NormalizePath("/news/search/"))

	// Output:
	// /news/:id
	// /news/search
}
