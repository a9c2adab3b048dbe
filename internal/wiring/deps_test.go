package wiring_test

import (
	"testing"

	"github.com/grindlemire/graft"
)

// TestGraftDependencies checks the node graph statically: every Dep[T] call
// in a node's Run must be declared in its DependsOn and every declared
// dependency must be used.
func TestGraftDependencies(t *testing.T) {
	if testing.Short() {
		t.Skip("loads every package under internal/")
	}
	graft.AssertDepsValid(t, "../../internal")
}
