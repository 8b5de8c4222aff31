package auth

import (
	"testing"

	"loginapi/config"
	domainerrors "loginapi/internal/domain/errors"

	"github.com/stretchr/testify/assert"
)

func policyWith(cfg *config.PasswordPolicyConfig) *passwordPolicy {
	return &passwordPolicy{cfg: cfg}
}

func TestPasswordPolicy_NoConfigAcceptsEverything(t *testing.T) {
	policy := NewPasswordPolicy(nil)

	assert.NoError(t, policy.Validate(""))
	assert.NoError(t, policy.Validate("x"))
	assert.NoError(t, policy.Validate("anything goes here"))
}

func TestPasswordPolicy_Length(t *testing.T) {
	policy := policyWith(&config.PasswordPolicyConfig{MinLength: 8, MaxLength: 12})

	assert.ErrorIs(t, policy.Validate("short"), domainerrors.ErrValidationFailed)
	assert.ErrorIs(t, policy.Validate("waytoolongforthepolicy"), domainerrors.ErrValidationFailed)
	assert.NoError(t, policy.Validate("justright1"))
}

func TestPasswordPolicy_LengthCountsRunes(t *testing.T) {
	policy := policyWith(&config.PasswordPolicyConfig{MinLength: 4})

	// Four runes pass even though multibyte characters inflate the byte count.
	assert.NoError(t, policy.Validate("日本語字"))
	assert.ErrorIs(t, policy.Validate("日本語"), domainerrors.ErrValidationFailed)
}

func TestPasswordPolicy_CharacterClasses(t *testing.T) {
	policy := policyWith(&config.PasswordPolicyConfig{
		RequireUppercase: true,
		RequireLowercase: true,
		RequireNumbers:   true,
		RequireSpecial:   true,
	})

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"all classes present", "Passw0rd!", false},
		{"missing uppercase", "passw0rd!", true},
		{"missing lowercase", "PASSW0RD!", true},
		{"missing number", "Password!", true},
		{"missing special", "Passw0rd1", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := policy.Validate(tt.password)
			if tt.wantErr {
				assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPasswordPolicy_OnlyConfiguredRulesApply(t *testing.T) {
	policy := policyWith(&config.PasswordPolicyConfig{RequireNumbers: true})

	assert.NoError(t, policy.Validate("no uppercase needed 1"))
	assert.Error(t, policy.Validate("but a number is"))
}
