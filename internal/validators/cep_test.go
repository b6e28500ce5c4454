package validators_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/PainelServices01/user-admin-GO/internal/validators"
)

func TestNormalizeCEP(t *testing.T) {
	require.Equal(t, "01310100", validators.NormalizeCEP("01310-100"))
	require.Equal(t, "01310100", validators.NormalizeCEP("01310100"))
	require.Equal(t, "01310100", validators.NormalizeCEP(" 01.310-100 "))
	require.Equal(t, "", validators.NormalizeCEP("abc"))
}

func TestIsValidCEP(t *testing.T) {
	require.True(t, validators.IsValidCEP("01310100"))

	require.False(t, validators.IsValidCEP("1234567"))   // 7 dígitos
	require.False(t, validators.IsValidCEP("123456789")) // 9 dígitos
	require.False(t, validators.IsValidCEP("0131010a"))
	require.False(t, validators.IsValidCEP(""))
}
