package l1

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseControllerRef(t *testing.T) {
	for _, c := range []struct {
		in   string
		ref  ControllerRef
		fail bool
	}{
		{in: "base/dev0", ref: ControllerRef{Type: "base", ID: "dev0"}},
		{in: "base/dev/0", ref: ControllerRef{Type: "base", ID: "dev/0"}},
		{in: "base", fail: true},
		{in: "base/", fail: true},
		{in: "/dev0", fail: true},
		{in: "", fail: true},
	} {
		t.Run(c.in, func(t *testing.T) {
			ref, err := ParseControllerRef(c.in)
			if c.fail {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, c.ref, ref)
			require.Equal(t, c.in, ref.Name())
			require.True(t, ref.IsValid())
		})
	}
}
