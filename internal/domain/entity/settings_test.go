package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSystemSettingsSecrets(t *testing.T) {
	stored := SystemSettings{GatewaySecretKey: "sk_live", SMTPPassword: "hunter2", SMTPHost: "smtp", SMTPPort: 587, AdminEmail: "ops@x.io"}

	masked := stored.Masked()
	assert.Equal(t, "********", masked.GatewaySecretKey)
	assert.Equal(t, "********", masked.SMTPPassword)
	assert.Equal(t, "sk_live", stored.GatewaySecretKey)

	update := masked
	update.WalletName = "USDT"
	merged := update.MergeSecrets(stored)
	assert.Equal(t, "sk_live", merged.GatewaySecretKey)
	assert.Equal(t, "hunter2", merged.SMTPPassword)
	assert.Equal(t, "USDT", merged.WalletName)

	assert.True(t, stored.MailConfigured())
	assert.False(t, SystemSettings{}.MailConfigured())
	assert.Equal(t, "", SystemSettings{}.Masked().SMTPPassword)
}
