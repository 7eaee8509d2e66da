package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDataType_ArrayRoundTrip(t *testing.T) {
	require.True(t, DataTypeInt.Array().IsArray())
	require.Equal(t, DataTypeInt, DataTypeInt.Array().Elem())
	require.Equal(t, "Int[]", DataTypeInt.Array().String())
	require.False(t, DataTypeInt.IsArray())
}

func TestDataType_String(t *testing.T) {
	require.Equal(t, "QualifiedEnum", DataTypeQualifiedEnum.String())
	require.Equal(t, "Undefined", DataTypeUndefined.String())
	require.Equal(t, "Unknown", DataType(42).String())
}

func TestKnownExtensionType(t *testing.T) {
	t.Run("known", func(t *testing.T) {
		et, ok := KnownExtensionType(612)
		require.True(t, ok)
		require.Equal(t, ExtensionScript, et)
		require.Equal(t, "ScriptExtension", et.String())
	})

	t.Run("unknown", func(t *testing.T) {
		_, ok := KnownExtensionType(999)
		require.False(t, ok)
	})
}

func TestEnumStringers(t *testing.T) {
	require.Equal(t, "SecuredWrite", PermissionSecuredWrite.String())
	require.Equal(t, "UserWriteable", WriteabilityUserWriteable.String())
	require.Equal(t, "InheritedLock", LockedInheritedLock.String())
	require.Equal(t, "UserDefined", SourceUserDefined.String())
}
