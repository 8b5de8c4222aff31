package auth

import (
	"unicode"

	"loginapi/config"
	domainerrors "loginapi/internal/domain/errors"
	"loginapi/internal/domain/service"
)

// passwordPolicy applies the configured strength requirements.
// With no configuration every password is accepted; complexity rules are a
// deployment choice, not a core guarantee.
type passwordPolicy struct {
	cfg *config.PasswordPolicyConfig
}

// NewPasswordPolicy builds the password validation hook from configuration.
func NewPasswordPolicy(cfg *config.Config) service.PasswordPolicy {
	var policyCfg *config.PasswordPolicyConfig
	if cfg != nil {
		policyCfg = cfg.PasswordPolicy
	}

	return &passwordPolicy{cfg: policyCfg}
}

func (p *passwordPolicy) Validate(password string) error {
	if p.cfg == nil {
		return nil
	}

	runes := []rune(password)
	if p.cfg.MinLength > 0 && len(runes) < p.cfg.MinLength {
		return domainerrors.ErrValidationFailed.WrapMessage("password is too short")
	}
	if p.cfg.MaxLength > 0 && len(runes) > p.cfg.MaxLength {
		return domainerrors.ErrValidationFailed.WrapMessage("password is too long")
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, r := range runes {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasNumber = true
		default:
			hasSpecial = true
		}
	}

	if p.cfg.RequireUppercase && !hasUpper {
		return domainerrors.ErrValidationFailed.WrapMessage("password must contain an uppercase letter")
	}
	if p.cfg.RequireLowercase && !hasLower {
		return domainerrors.ErrValidationFailed.WrapMessage("password must contain a lowercase letter")
	}
	if p.cfg.RequireNumbers && !hasNumber {
		return domainerrors.ErrValidationFailed.WrapMessage("password must contain a number")
	}
	if p.cfg.RequireSpecial && !hasSpecial {
		return domainerrors.ErrValidationFailed.WrapMessage("password must contain a special character")
	}

	return nil
}
