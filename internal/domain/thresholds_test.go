package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/stock-alerts/internal/domain"
)

func TestDefaultThresholds_TablaFija(t *testing.T) {
	defaults := domain.DefaultThresholds()

	assert.Equal(t, 50, defaults[domain.TypeElectronics])
	assert.Equal(t, 20, defaults[domain.TypeClothing])
	assert.Equal(t, 100, defaults[domain.TypeFood])
	assert.Equal(t, 10, defaults[domain.TypeOther])
	assert.Len(t, defaults, 4)
}

func TestDefaultThresholds_DevuelveCopia(t *testing.T) {
	a := domain.DefaultThresholds()
	a[domain.TypeFood] = 1

	b := domain.DefaultThresholds()
	assert.Equal(t, 100, b[domain.TypeFood], "mutar la copia no debe afectar la tabla")
}

func TestEffectiveThresholds_OverrideReemplaza(t *testing.T) {
	effective := domain.EffectiveThresholds(map[string]int{
		domain.TypeElectronics: 45,
	})

	assert.Equal(t, 45, effective[domain.TypeElectronics], "el override reemplaza, no se mezcla")
	assert.Equal(t, 20, effective[domain.TypeClothing], "tipos sin override conservan el default")
	assert.Equal(t, 100, effective[domain.TypeFood])
	assert.Equal(t, 10, effective[domain.TypeOther])
}

func TestEffectiveThresholds_EntradasInvalidasSeIgnoran(t *testing.T) {
	effective := domain.EffectiveThresholds(map[string]int{
		"perecederos":        5,  // tipo no reconocido
		domain.TypeClothing:  -1, // no positivo
		domain.TypeFood:      0,  // no positivo
	})

	assert.Equal(t, domain.DefaultThresholds(), effective)
}

func TestThresholdFor_TipoDesconocidoCaeAOther(t *testing.T) {
	effective := domain.EffectiveThresholds(nil)

	assert.Equal(t, 10, domain.ThresholdFor(effective, "gadgets"))
	assert.Equal(t, 10, domain.ThresholdFor(effective, ""))
	assert.Equal(t, 50, domain.ThresholdFor(effective, domain.TypeElectronics))
}

func TestRecognizedType(t *testing.T) {
	assert.True(t, domain.RecognizedType(domain.TypeElectronics))
	assert.True(t, domain.RecognizedType(domain.TypeOther))
	assert.False(t, domain.RecognizedType("Electronics"))
	assert.False(t, domain.RecognizedType(""))
}
