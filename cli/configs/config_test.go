package configs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("should read every key", func(t *testing.T) {
		cfg, err := Parse([]byte(`
payer_arn: arn:aws:iam::999999999999:role/OrgReader
assume_role: GuardDutyAccept
region:
  - us-east-1
  - eu-west-1
topic_arn: arn:aws:sns:us-east-1:999999999999:enable
output: yaml
`))
		require.Nil(t, err)
		assert.Equal(t, &Config{
			PayerArn:   "arn:aws:iam::999999999999:role/OrgReader",
			AssumeRole: "GuardDutyAccept",
			Regions:    []string{"us-east-1", "eu-west-1"},
			TopicArn:   "arn:aws:sns:us-east-1:999999999999:enable",
			Output:     "yaml",
		}, cfg)
	})

	t.Run("should reject unknown keys", func(t *testing.T) {
		_, err := Parse([]byte("regions: [us-east-1]\n"))
		assert.NotNil(t, err)
	})

	t.Run("should accept an empty file", func(t *testing.T) {
		cfg, err := Parse([]byte(""))
		require.Nil(t, err)
		assert.Equal(t, &Config{}, cfg)
	})
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "enable-guardduty.yaml")
	require.Nil(t, os.WriteFile(path, []byte("assume_role: GuardDutyAccept\n"), 0600))

	cfg, err := Load(path)
	require.Nil(t, err)
	assert.Equal(t, "GuardDutyAccept", cfg.AssumeRole)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.NotNil(t, err)
}
