package api

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePhone(t *testing.T) {
	v := validator.New()
	require.NoError(t, v.RegisterValidation("phone", validatePhone))

	cases := []struct {
		phone string
		valid bool
	}{
		{phone: "+79990001122", valid: true},
		{phone: "998901234567", valid: true},
		{phone: "12345678", valid: false},
		{phone: "+7999000112233445", valid: false},
		{phone: "+7999-000-11", valid: false},
		{phone: "++79990001122", valid: false},
		{phone: "", valid: false},
	}
	for _, tc := range cases {
		t.Run(tc.phone, func(t *testing.T) {
			err := v.Var(tc.phone, "phone")
			assert.Equal(t, tc.valid, err == nil, err)
		})
	}
}

func TestValidateMaxBytes(t *testing.T) {
	v := validator.New()
	require.NoError(t, v.RegisterValidation("max_bytes", validateMaxBytes))

	assert.NoError(t, v.Var("abcd", "max_bytes=4"))
	assert.Error(t, v.Var("abcde", "max_bytes=4"))
	// 2 руны, 8 байт.
	assert.Error(t, v.Var("😁😁", "max_bytes=4"))
	assert.Error(t, v.Var("abc", "max_bytes=x"))
}
