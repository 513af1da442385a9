// Package internalcheck holds source-policy tests for the module. The tests
// load the module's packages and fail when a structural rule is broken, so
// regressions show up in CI rather than review.
package internalcheck
