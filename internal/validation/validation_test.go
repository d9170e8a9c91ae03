package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "first.last+tag@mail-host.org", "a_b@c.co.uk"}
	for _, email := range valid {
		assert.True(t, ValidEmail(email), email)
	}

	invalid := []string{"", "plainaddress", "@example.com", "user@", "user@example", "user name@example.com", "<script>@x.com"}
	for _, email := range invalid {
		assert.False(t, ValidEmail(email), email)
	}
}

func TestValidPassword(t *testing.T) {
	tests := []struct {
		password string
		valid    bool
	}{
		{"TestPassword123!", true},
		{"Aa1_aaaa", true},
		{"Aa1!", false},
		{"testpassword123!", false},
		{"TESTPASSWORD123!", false},
		{"TestPassword!!!", false},
		{"TestPassword123", false},
		{"Test Password123!", false},
		{"Ñandú123!x", false},
		{"Ñandú123!X", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, ValidPassword(tt.password), tt.password)
	}
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"987-654-3210", "9876543210", true},
		{"(312) 555-0100", "3125550100", true},
		{"+1 312.555.0100", "3125550100", true},
		{"13125550100", "3125550100", true},
		{"555-0100", "", false},
		{"312-555-01ab", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := NormalizePhone(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestValidZipCode(t *testing.T) {
	assert.True(t, ValidZipCode("60601"))
	assert.True(t, ValidZipCode("60601-1234"))
	assert.False(t, ValidZipCode("6060"))
	assert.False(t, ValidZipCode("60601-12"))
}

func TestNormalizeClock(t *testing.T) {
	got, err := NormalizeClock("9:05")
	require.NoError(t, err)
	assert.Equal(t, "09:05", got)

	got, err = NormalizeClock(" 17:30 ")
	require.NoError(t, err)
	assert.Equal(t, "17:30", got)

	_, err = NormalizeClock("25:00")
	assert.Error(t, err)

	_, err = NormalizeClock("5pm")
	assert.Error(t, err)
}

func TestNewRegistersTags(t *testing.T) {
	v := New()

	type form struct {
		Email    string `validate:"email_syntax"`
		Password string `validate:"strong_password"`
		Phone    string `validate:"phone"`
		Zip      string `validate:"zipcode"`
		Open     string `validate:"clock"`
		Day      int    `validate:"weekday"`
	}

	ok := form{
		Email:    "test@example.com",
		Password: "TestPassword123!",
		Phone:    "312-555-0100",
		Zip:      "60601",
		Open:     "09:00",
		Day:      1,
	}
	assert.NoError(t, v.Struct(ok))

	bad := ok
	bad.Day = 8
	bad.Open = "noon"
	assert.Error(t, v.Struct(bad))
}
