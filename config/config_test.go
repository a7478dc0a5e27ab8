package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoZeroFields(t *testing.T) {
	cfg := Default()

	for _, field := range visit(newVar(*cfg), "Config", false) {
		assert.Fail(t, "zero-value field", field)
	}
}

type variable struct {
	Type  reflect.Type
	Value reflect.Value
}

func newVar(a any) variable {
	return variable{reflect.TypeOf(a), reflect.ValueOf(a)}
}

func visit(a variable, name string, nullable bool) (fields []string) {
	if a.Type.Kind() == reflect.Struct {
		for field := range a.Value.NumField() {
			v1 := variable{a.Type.Field(field).Type, a.Value.Field(field)}
			fieldname := a.Type.Field(field).Name
			isNullable := a.Type.Field(field).Tag.Get("test") == "nullable"
			fields = append(fields, visit(v1, name+"."+fieldname, isNullable)...)
		}

		return fields
	}

	if a.Value.IsZero() && !nullable {
		return []string{name}
	}

	return nil
}

func TestParse(t *testing.T) {
	t.Run("overlay", func(t *testing.T) {
		cfg, err := Parse([]byte(`{
			"NET": {"ReadTimeout": "5s", "ReadBufferSize": 4096},
			"Body": {"MaxSize": 1024},
			"Static": {"Root": "/srv/www", "NotFoundPage": "/srv/404.htm"}
		}`))
		require.NoError(t, err)

		want := Default()
		want.NET.ReadTimeout = 5 * time.Second
		want.NET.ReadBufferSize = 4096
		want.Body.MaxSize = 1024
		want.Static.Root = "/srv/www"
		want.Static.NotFoundPage = "/srv/404.htm"
		require.Equal(t, want, cfg)
	})

	t.Run("empty document", func(t *testing.T) {
		cfg, err := Parse([]byte(`{}`))
		require.NoError(t, err)
		require.Equal(t, Default(), cfg)
	})

	t.Run("bad duration", func(t *testing.T) {
		_, err := Parse([]byte(`{"NET": {"ShutdownTimeout": "soon"}}`))
		require.Error(t, err)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := Parse([]byte(`{"NET": `))
		require.Error(t, err)
	})
}

func TestLoad(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"Server": {"Name": "test"}}`), 0o644))

	cfg, err := Load(file)
	require.NoError(t, err)
	require.Equal(t, "test", cfg.Server.Name)
	require.Equal(t, Default().Server.Version, cfg.Server.Version)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
