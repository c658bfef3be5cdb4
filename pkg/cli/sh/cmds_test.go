package sh

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robomotive/diffbase.go/pkg/l1"
)

func TestResolveRefFromArgs(t *testing.T) {
	ref, err := resolveRef(nil, []string{"base", "dev0"})
	require.NoError(t, err)
	require.Equal(t, l1.ControllerRef{Type: "base", ID: "dev0"}, ref)

	ref, err = resolveRef(nil, []string{"base/dev0"})
	require.NoError(t, err)
	require.Equal(t, l1.ControllerRef{Type: "base", ID: "dev0"}, ref)
}
