package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jupabego97/reportes-react-sub000/models"
)

func TestPriorityFor(t *testing.T) {
	t.Run("three days or less is urgent", func(t *testing.T) {
		assert.Equal(t, models.PrioridadUrgente, priorityFor(0))
		assert.Equal(t, models.PrioridadUrgente, priorityFor(3))
	})

	t.Run("a week or less is high", func(t *testing.T) {
		assert.Equal(t, models.PrioridadAlta, priorityFor(3.1))
		assert.Equal(t, models.PrioridadAlta, priorityFor(7))
	})

	t.Run("two weeks or so is medium", func(t *testing.T) {
		assert.Equal(t, models.PrioridadMedia, priorityFor(7.5))
		assert.Equal(t, models.PrioridadMedia, priorityFor(15))
	})

	t.Run("anything beyond is low", func(t *testing.T) {
		assert.Equal(t, models.PrioridadBaja, priorityFor(15.1))
		assert.Equal(t, models.PrioridadBaja, priorityFor(999))
	})
}

func TestPriorityOrder(t *testing.T) {
	// the sort relies on urgent sorting before everything else
	assert.Less(t, priorityOrder[models.PrioridadUrgente], priorityOrder[models.PrioridadAlta])
	assert.Less(t, priorityOrder[models.PrioridadAlta], priorityOrder[models.PrioridadMedia])
	assert.Less(t, priorityOrder[models.PrioridadMedia], priorityOrder[models.PrioridadBaja])
}
