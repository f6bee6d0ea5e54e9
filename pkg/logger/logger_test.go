package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-api/pkg/logger"
)

func TestNew_NivelConfigurable(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "warn", Output: &buf})

	assert.Equal(t, zerolog.WarnLevel, l.Zerolog().GetLevel())

	l.Info().Msg("no debería aparecer")
	assert.Empty(t, buf.String())

	l.Warn().Msg("sí aparece")
	assert.Contains(t, buf.String(), "sí aparece")
}

func TestNew_NivelDesconocidoUsaInfo(t *testing.T) {
	l := logger.New(logger.Config{Env: "production", Level: "verboso", Output: &bytes.Buffer{}})
	assert.Equal(t, zerolog.InfoLevel, l.Zerolog().GetLevel())
}

func TestNew_EtiquetaServiceEnCadaLinea(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "info", Service: "almacen-api", Output: &buf})

	l.Info().Str("extra", "valor").Msg("línea de prueba")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "almacen-api", line["service"])
	assert.Equal(t, "línea de prueba", line["message"])
	assert.Equal(t, "valor", line["extra"])
	assert.Contains(t, line, "time")
}
