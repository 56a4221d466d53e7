package mask_test

import (
	"testing"

	"github.com/rise-and-shine/qingstor/mask"
	"github.com/stretchr/testify/assert"
)

type secretKey string

type credentials struct {
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key" mask:"true"`
}

type client struct {
	Name    string
	Creds   credentials
	Backup  *credentials
	Token   secretKey `mask:"true"`
	Retries int       `mask:"true"`
	hidden  string
}

func TestString(t *testing.T) {
	assert.Equal(t, "", mask.String(""))
	assert.Equal(t, "******", mask.String("secret"))
}

func TestStruct_MasksTaggedStringKeepingLength(t *testing.T) {
	in := credentials{AccessKeyID: "access_key", SecretAccessKey: "secret"}

	out := mask.Struct(in)

	assert.Equal(t, "access_key", out.AccessKeyID)
	assert.Equal(t, "******", out.SecretAccessKey)
	assert.Equal(t, "secret", in.SecretAccessKey, "input must not be modified")
}

func TestStruct_Nested(t *testing.T) {
	in := client{
		Name:    "primary",
		Creds:   credentials{AccessKeyID: "a", SecretAccessKey: "abc"},
		Backup:  &credentials{AccessKeyID: "b", SecretAccessKey: "xy"},
		Token:   "tok",
		Retries: 5,
		hidden:  "unexported",
	}

	out := mask.Struct(in)

	assert.Equal(t, "primary", out.Name)
	assert.Equal(t, "***", out.Creds.SecretAccessKey)
	assert.Equal(t, "a", out.Creds.AccessKeyID)
	assert.Equal(t, "**", out.Backup.SecretAccessKey)
	assert.Equal(t, "xy", in.Backup.SecretAccessKey, "pointer target must not be modified")
	assert.Equal(t, secretKey("***"), out.Token)
	assert.Equal(t, 0, out.Retries)
	assert.Empty(t, out.hidden)
}

func TestStruct_NilPointerField(t *testing.T) {
	out := mask.Struct(client{Name: "primary"})

	assert.Nil(t, out.Backup)
}

func TestStruct_PointerInput(t *testing.T) {
	in := &credentials{SecretAccessKey: "secret"}

	out := mask.Struct(in)

	assert.NotSame(t, in, out)
	assert.Equal(t, "******", out.SecretAccessKey)
}

func TestStruct_NonStruct(t *testing.T) {
	assert.Equal(t, "plain", mask.Struct("plain"))
	assert.Equal(t, 42, mask.Struct(42))
}
