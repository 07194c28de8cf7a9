package reporting_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/reportes-taller/internal/application/reporting"
	"github.com/jhoicas/reportes-taller/internal/domain/report"
)

func TestSequencer_DescartaResultadoViejo(t *testing.T) {
	var seq reporting.Sequencer
	marzo := seq.Next()
	abril := seq.Next()
	require.Greater(t, abril, marzo)

	// abril termina primero; marzo llega tarde y no debe pisarlo
	assert.True(t, seq.Complete(abril, &report.ReportData{ID: "abril"}))
	assert.False(t, seq.Complete(marzo, &report.ReportData{ID: "marzo"}))

	latest, id := seq.Latest()
	require.NotNil(t, latest)
	assert.Equal(t, "abril", latest.ID)
	assert.Equal(t, abril, id)
}

func TestSequencer_SinResultados(t *testing.T) {
	var seq reporting.Sequencer
	latest, id := seq.Latest()
	assert.Nil(t, latest)
	assert.Zero(t, id)
}

func TestSequencer_IdsUnicosConcurrentes(t *testing.T) {
	var seq reporting.Sequencer
	var wg sync.WaitGroup
	ids := make(chan uint64, 100)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- seq.Next()
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[uint64]bool)
	for id := range ids {
		assert.False(t, seen[id])
		seen[id] = true
	}
	assert.Len(t, seen, 100)
}
