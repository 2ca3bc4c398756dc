package search

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain ensures search workers never outlive a Search call
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
