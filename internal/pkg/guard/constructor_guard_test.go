package guard_test

import (
	"errors"
	"testing"

	"canteen/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("command must be created via its constructor")

	t.Run("constructed guard passes", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		require.NoError(t, g.Validate(errNotConstructed))
	})

	t.Run("zero value guard returns the supplied error", func(t *testing.T) {
		var g guard.ConstructorGuard
		require.ErrorIs(t, g.Validate(errNotConstructed), errNotConstructed)
	})

	t.Run("zero value guard falls back to the default error", func(t *testing.T) {
		var g guard.ConstructorGuard
		require.ErrorIs(t, g.Validate(nil), guard.ErrDefaultConstructorGuard)
	})

	t.Run("constructed guard ignores a nil error", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		require.NoError(t, g.Validate(nil))
	})
}

// The guard only flags bypassed constructors when it is embedded in a struct
// whose Validate delegates to it. This mirrors how commands and queries in
// this module carry the guard.
func TestConstructorGuard_Embedded(t *testing.T) {
	type createThing struct {
		name  string
		guard guard.ConstructorGuard
	}
	errThingNotConstructed := errors.New("createThing must be created via newCreateThing")

	newCreateThing := func(name string) (createThing, error) {
		if name == "" {
			return createThing{}, errors.New("name is required")
		}
		return createThing{name: name, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed command validates", func(t *testing.T) {
		cmd, err := newCreateThing("thali")
		require.NoError(t, err)
		require.NoError(t, cmd.guard.Validate(errThingNotConstructed))
		assert.Equal(t, "thali", cmd.name)
	})

	t.Run("struct literal fails validation", func(t *testing.T) {
		cmd := createThing{name: "thali"}
		require.ErrorIs(t, cmd.guard.Validate(errThingNotConstructed), errThingNotConstructed)
	})

	t.Run("copies keep the constructed mark", func(t *testing.T) {
		cmd, err := newCreateThing("thali")
		require.NoError(t, err)

		duplicate := cmd
		require.NoError(t, duplicate.guard.Validate(errThingNotConstructed))
	})
}

func TestErrDefaultConstructorGuard(t *testing.T) {
	assert.Equal(t, "object must be created via its constructor",
		guard.ErrDefaultConstructorGuard.Error())
}
