package resources_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tinkergames/tinkerdeck/internal/model"
	"github.com/tinkergames/tinkerdeck/internal/services/resources"
	"github.com/tinkergames/tinkerdeck/internal/testutil"
)

func sticker(kind model.ResourceKind, value int) *model.Sticker {
	return &model.Sticker{
		ID:      "st-test",
		Effects: []model.Effect{{Kind: model.EffectResource, Resource: kind, Magnitude: value}},
	}
}

func TestAddCardAccumulates(t *testing.T) {
	svc := resources.New(testutil.NopLogger())

	soldier := model.NewCard("card-a", "INST1", "Soldier", "human", "", 2, []*model.Sticker{
		sticker(model.ResourcePower, 3),
	})
	mason := model.NewCard("card-b", "INST2", "Mason", "dwarf", "", 2, []*model.Sticker{
		sticker(model.ResourceConstruction, 2),
		sticker(model.ResourceConstruction, 2),
	})

	svc.AddCard(soldier)
	svc.AddCard(mason)

	assert.Equal(t, model.ResourceTotals{Power: 3, Construction: 4}, svc.Totals())
}

func TestResetClearsTotals(t *testing.T) {
	svc := resources.New(testutil.NopLogger())

	svc.AddCard(model.NewCard("card-a", "INST1", "Soldier", "human", "", 1, []*model.Sticker{
		sticker(model.ResourceInvention, 5),
	}))
	assert.Equal(t, model.ResourceTotals{Invention: 5}, svc.Totals())

	svc.ResetHandResources()
	assert.Equal(t, model.ResourceTotals{}, svc.Totals())

	// Resetting an already-empty tracker is a no-op
	svc.ResetHandResources()
	assert.Equal(t, model.ResourceTotals{}, svc.Totals())
}
